// Package session holds authenticated console sessions in memory. A session
// is a credential pair bound to a Fivetran client; nothing here is ever
// written to durable storage, and all sessions die with the process.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/redhat-data-and-ai/fivetran-console/pkg/fivetran"
)

// Session is one authenticated console session. The credentials themselves
// live inside the client's transport; the session only carries the handle.
type Session struct {
	Token     string
	Client    *fivetran.Client
	CreatedAt time.Time

	lastSeen time.Time
}

// Store is a mutex-guarded in-memory session table with idle expiry.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]*Session
}

// NewStore creates a store whose sessions expire after ttl of inactivity.
func NewStore(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]*Session),
	}
}

// Create registers a new session for the given client and returns it. The
// token is an opaque random identifier, never derived from the credentials.
func (s *Store) Create(client *fivetran.Client) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	sess := &Session{
		Token:     uuid.NewString(),
		Client:    client,
		CreatedAt: now,
		lastSeen:  now,
	}
	s.entries[sess.Token] = sess
	return sess
}

// Get resolves a token to its session and refreshes its idle timer. Expired
// sessions are evicted and reported as absent.
func (s *Store) Get(token string) (*Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	sess, ok := s.entries[token]
	if !ok {
		return nil, false
	}

	sess.lastSeen = now
	return sess, true
}

// Delete ends a session. Deleting an unknown token is a no-op.
func (s *Store) Delete(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, token)
}

// Len reports the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweepLocked(s.now())
	return len(s.entries)
}

func (s *Store) sweepLocked(now time.Time) {
	if s.ttl <= 0 {
		return
	}
	for token, sess := range s.entries {
		if now.Sub(sess.lastSeen) > s.ttl {
			delete(s.entries, token)
		}
	}
}

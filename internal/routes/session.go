package routes

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/fivetran-console/internal/session"
	"github.com/redhat-data-and-ai/fivetran-console/pkg/fivetran"
)

// ClientFactory builds a Fivetran client from a credential pair. Swapped out
// in tests.
type ClientFactory func(apiKey, apiSecret string) (*fivetran.Client, error)

// CredentialSource resolves a credential pair from outside the request, e.g.
// Vault for headless deployments.
type CredentialSource interface {
	Resolve(ctx context.Context) (apiKey, apiSecret string, err error)
}

type SessionRoutes struct {
	store   *session.Store
	factory ClientFactory
	source  CredentialSource
	logger  *slog.Logger
}

// NewSessionRoutes wires the session endpoints. source may be nil, in which
// case the vault-backed endpoint is not registered.
func NewSessionRoutes(store *session.Store, factory ClientFactory, source CredentialSource, logger *slog.Logger) *SessionRoutes {
	if factory == nil {
		factory = func(apiKey, apiSecret string) (*fivetran.Client, error) {
			return fivetran.NewClient(apiKey, apiSecret)
		}
	}
	return &SessionRoutes{
		store:   store,
		factory: factory,
		source:  source,
		logger:  logger,
	}
}

type CreateSessionRequestJson struct {
	ApiKey    string `json:"api_key" binding:"required"`
	ApiSecret string `json:"api_secret" binding:"required"`
}

type SessionJson struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *SessionRoutes) create(gctx *gin.Context) {
	var req CreateSessionRequestJson
	if err := gctx.ShouldBindJSON(&req); err != nil {
		writeBadRequest(gctx, "api_key and api_secret are required")
		return
	}

	r.open(gctx, req.ApiKey, req.ApiSecret)
}

func (r *SessionRoutes) createFromVault(gctx *gin.Context) {
	apiKey, apiSecret, err := r.source.Resolve(gctx.Request.Context())
	if err != nil {
		r.logger.Error("failed to resolve credentials from vault", "error", err)
		gctx.PureJSON(http.StatusBadGateway, ErrorResponse{Error: "failed to resolve credentials"})
		return
	}

	r.open(gctx, apiKey, apiSecret)
}

// open verifies a credential pair with the cheapest authenticated read and
// registers the session. The credentials never appear in any response or log.
func (r *SessionRoutes) open(gctx *gin.Context, apiKey, apiSecret string) {
	ctx := gctx.Request.Context()

	client, err := r.factory(apiKey, apiSecret)
	if err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	if _, err := client.Groups.List(ctx); err != nil {
		writeAPIError(gctx, r.logger, err)
		return
	}

	sess := r.store.Create(client)
	r.logger.Info("session opened", "token", sess.Token[:8])

	gctx.PureJSON(http.StatusCreated, SessionJson{
		Token:     sess.Token,
		CreatedAt: sess.CreatedAt,
	})
}

func (r *SessionRoutes) delete(gctx *gin.Context) {
	token := bearerToken(gctx)
	if token == "" {
		writeUnauthorized(gctx, "session token is required")
		return
	}

	r.store.Delete(token)
	gctx.Status(http.StatusNoContent)
}

func (r *SessionRoutes) Register(g gin.IRouter) {
	g.POST("/session", r.create)
	if r.source != nil {
		g.POST("/session/vault", r.createFromVault)
	}
	g.DELETE("/session", r.delete)
}

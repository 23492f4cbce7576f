package routes

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/redhat-data-and-ai/fivetran-console/internal/session"
)

const sessionContextKey = "console.session"

// RequireSession resolves the bearer token to a live session and aborts with
// 401 otherwise. Handlers behind this middleware use currentSession.
func RequireSession(store *session.Store) gin.HandlerFunc {
	return func(gctx *gin.Context) {
		token := bearerToken(gctx)
		if token == "" {
			writeUnauthorized(gctx, "session token is required")
			gctx.Abort()
			return
		}

		sess, ok := store.Get(token)
		if !ok {
			writeUnauthorized(gctx, "session is invalid or expired")
			gctx.Abort()
			return
		}

		gctx.Set(sessionContextKey, sess)
		gctx.Next()
	}
}

func currentSession(gctx *gin.Context) *session.Session {
	return gctx.MustGet(sessionContextKey).(*session.Session)
}

func bearerToken(gctx *gin.Context) string {
	header := gctx.GetHeader("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

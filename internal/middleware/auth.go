// ================== internal/middleware/auth.go ==================
package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/response"
	"github.com/minjaekim/sportsmate-web/internal/pkg/session"
	"github.com/minjaekim/sportsmate-web/internal/upstream"
)

// RequireSession guards routes that need an authenticated backend
// session. An expired JWT-shaped token is cleared on sight so the next
// login starts clean; opaque tokens pass through and the backend decides.
func RequireSession(store upstream.TokenStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := store.Get()
		if token == "" {
			response.Unauthorized(c, "login required", "AUTH_REQUIRED")
			c.Abort()
			return
		}

		if session.Expired(token) {
			store.Clear()
			response.Unauthorized(c, "session expired", "AUTH_EXPIRED")
			c.Abort()
			return
		}

		c.Next()
	}
}

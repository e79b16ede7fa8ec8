package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"confluence-assistant/internal/model"
	"confluence-assistant/pkg/response"
)

const scopeKey = "auth.scope"

// Auth validates the Bearer token and stores the caller's Scope in the
// gin context. Validated tokens are cached briefly to keep hot paths
// off the database.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if sc, ok := m.sessionCache.Get(token); ok {
			c.Set(scopeKey, sc)
			c.Next()
			return
		}

		sc, err := m.userUC.ValidateSession(c.Request.Context(), token)
		if err != nil {
			m.l.Debugf(c.Request.Context(), "Auth: invalid session: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		m.sessionCache.Add(token, sc)
		c.Set(scopeKey, sc)
		c.Next()
	}
}

// Forget drops a token from the session cache, for logout.
func (m Middleware) Forget(token string) {
	m.sessionCache.Remove(token)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}

// GetScope returns the Scope set by Auth. The boolean is false on
// unauthenticated routes.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}

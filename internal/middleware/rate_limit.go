package middleware

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"confluence-assistant/pkg/response"
)

// RateLimit enforces a per-client-IP token bucket.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiterFor(c.ClientIP()).Allow() {
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (m Middleware) limiterFor(clientIP string) *rate.Limiter {
	if limiter, ok := m.limiters.Get(clientIP); ok {
		return limiter
	}
	limiter := rate.NewLimiter(limiterRate, limiterBurst)
	m.limiters.Add(clientIP, limiter)
	return limiter
}

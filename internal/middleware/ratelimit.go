package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"reminder-ai/pkg/response"
)

// RateLimit rejects requests beyond the configured rate with 429. One shared
// limiter covers all callers: the protected resource is the upstream
// generation quota, not per-client fairness.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: rejecting %s", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many requests, please slow down",
			})
			return
		}
		c.Next()
	}
}

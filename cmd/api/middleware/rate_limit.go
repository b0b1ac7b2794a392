package middleware

import (
	"github.com/gin-gonic/gin"

	"prompt-hub/errs"
	"prompt-hub/ratelimit"
)

// RateLimit applies the limiter keyed by authenticated uid when present,
// falling back to client IP for anonymous traffic.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(ContextUID)
		if key == "" {
			key = c.ClientIP()
		}

		if err := limiter.Allow(c.Request.Context(), key); err != nil {
			httpErr := errs.MapToHTTP(err)
			c.AbortWithStatusJSON(httpErr.StatusCode, httpErr.ToErrorResponse())
			return
		}

		c.Next()
	}
}

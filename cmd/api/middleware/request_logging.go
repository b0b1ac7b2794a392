package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"prompt-hub/config"
)

const headerRequestID = "X-Request-Id"

// RequestID guarantees every request carries a request id, generating one
// when the client did not send it, and echoes it on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set("request_id", requestID)
		c.Request.Header.Set(headerRequestID, requestID)
		c.Writer.Header().Set(headerRequestID, requestID)

		c.Next()
	}
}

// RequestLogging logs method, path, status, and elapsed time for every
// request, tagged with the request id.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		durationMillis := time.Since(start).Milliseconds()

		config.InfoWithFields("completed request", config.Fields{
			"method":      method,
			"path":        path,
			"status":      status,
			"duration_ms": durationMillis,
			"request_id":  c.GetString("request_id"),
		})
	}
}

package logger

import (
	"time"

	"github.com/gin-gonic/gin"
)

// GinMiddleware logs one line per request once the handler chain has finished.
func GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		fields := Fields{
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"client_ip":  c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.String()
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			ErrorWithFields("request failed", fields)
		case status >= 400:
			WarnWithFields("request rejected", fields)
		default:
			InfoWithFields("request handled", fields)
		}
	}
}

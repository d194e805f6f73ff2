package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"itemstore-backend/pkg/logger"
)

// Logger records one line per request after the handler chain finishes.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		// Capture the path before handlers can rewrite the request.
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := map[string]interface{}{
			"request_id": GetRequestID(c),
			"method":     c.Request.Method,
			"path":       path,
			"status":     c.Writer.Status(),
			"latency":    time.Since(start).String(),
			"ip":         c.ClientIP(),
		}
		if query != "" {
			fields["query"] = query
		}

		logger.Info("request completed", fields)
	}
}

package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader carries the request id on the wire.
	RequestIDHeader = "X-Request-ID"

	// requestIDKey is the gin context key the id is stored under.
	requestIDKey = "request_id"
)

// RequestID attaches a unique id to every request, reusing the caller's
// X-Request-ID header when present.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)

		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "" when the middleware
// did not run.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

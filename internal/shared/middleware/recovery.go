package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"itemstore-backend/internal/shared/response"
	"itemstore-backend/pkg/logger"
)

// Recovery converts panics into the standard 500 envelope instead of
// killing the connection.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error(
					fmt.Sprintf("panic recovered (request_id=%s)", GetRequestID(c)),
					fmt.Errorf("%v", rec),
				)

				response.InternalServerError(c, "Internal server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}

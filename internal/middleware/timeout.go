package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

// StoreTimeout bounds the request context, and with it every store call made
// while handling the request.
func StoreTimeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

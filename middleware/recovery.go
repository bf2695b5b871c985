package middleware

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/marcvalle10/notes-api/utils"
)

// RecoveryMiddleware turns handler panics into plain 500 responses instead
// of dropped connections.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Printf("Panic recovered on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
				utils.TrackError("panic", "recovered")
				utils.InternalError(c, "Internal server error")
				c.Abort()
			}
		}()
		c.Next()
	}
}

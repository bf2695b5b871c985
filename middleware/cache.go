package middleware

import "github.com/gin-gonic/gin"

// CacheControlMiddleware marks responses uncacheable. Everything behind auth
// is per-user data; shared caches must never hold it.
func CacheControlMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}

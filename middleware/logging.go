package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/marcvalle10/notes-api/utils"
)

// RequestLoggingMiddleware logs one line per request with the client's
// browser and OS pulled from the User-Agent header.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		browser, clientOS, _ := utils.ParseUserAgent(c.Request.UserAgent())
		log.Printf("%s %s -> %d in %v [%s on %s]",
			method, path, c.Writer.Status(), time.Since(start), browser, clientOS)
	}
}

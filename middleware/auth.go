package middleware

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marcvalle10/notes-api/services"
	"github.com/marcvalle10/notes-api/utils"
)

// AuthMiddleware resolves the bearer token through the given provider and
// attaches the resolved user id to the context. Missing header and failed
// verification are both terminal 401s.
func AuthMiddleware(provider services.IdentityProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.TrackAuthAttempt("failure", "header")
			utils.Unauthorized(c, "Missing Bearer token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := provider.Verify(c.Request.Context(), tokenString)
		if err != nil {
			// Provider outages answer 401 like a bad token, but are kept
			// apart in the logs and counters.
			if !errors.Is(err, services.ErrInvalidToken) {
				log.Printf("Identity provider error: %v", err)
				utils.TrackError("provider", "verify_failed")
			}
			utils.TrackAuthAttempt("failure", "verify")
			utils.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		utils.TrackAuthAttempt("success", "verify")
		c.Set("user_id", identity.UserID)
		c.Next()
	}
}

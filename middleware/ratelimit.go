package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/marcvalle10/notes-api/utils"
)

const rateLimitWindow = time.Minute

// RateLimitMiddleware enforces a fixed-window per-user request quota in
// Redis. Redis being unreachable fails open: the request proceeds and the
// failure is counted.
func RateLimitMiddleware(client *redis.Client, perMinute int) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString("user_id")
		if key == "" {
			key = c.ClientIP()
		}

		ctx := c.Request.Context()
		now := time.Now()
		window := now.Unix() / int64(rateLimitWindow.Seconds())
		redisKey := fmt.Sprintf("ratelimit:%s:%d", key, window)

		count, err := client.Incr(ctx, redisKey).Result()
		if err != nil {
			log.Printf("Rate limiter unavailable, letting request through: %v", err)
			utils.TrackError("ratelimit", "redis_unavailable")
			c.Next()
			return
		}
		if count == 1 {
			client.Expire(ctx, redisKey, rateLimitWindow)
		}

		if count > int64(perMinute) {
			retryAfter := int64(rateLimitWindow.Seconds()) - now.Unix()%int64(rateLimitWindow.Seconds())
			utils.TooManyRequests(c, "Rate limit exceeded", retryAfter)
			c.Abort()
			return
		}

		c.Next()
	}
}

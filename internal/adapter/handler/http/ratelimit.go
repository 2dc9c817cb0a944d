package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mechshop/autoshop-api/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

// RateLimitMiddleware bounds abuse on identity-creation endpoints with a
// fixed window counter per client ip in redis. It is not a correctness
// mechanism; if redis is down the request passes through.
func RateLimitMiddleware(rdb *redis.Client, logger ports.LoggerPort, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", c.FullPath(), c.ClientIP())

		count, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			logger.Warn("Rate limiter unavailable", map[string]interface{}{
				"error": err.Error(),
			})
			c.Next()
			return
		}
		if count == 1 {
			rdb.Expire(ctx, key, window)
		}

		if count > int64(limit) {
			logger.Warn("Rate limit exceeded", map[string]interface{}{
				"ip":   c.ClientIP(),
				"path": c.FullPath(),
			})
			newErrorResponse(c, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}

		c.Next()
	}
}

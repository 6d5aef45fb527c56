package security

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RateLimiter is a fixed-window per-IP limiter backed by redis, so the limit
// holds across instances.
type RateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

type RateLimiterConfig struct {
	Redis  *redis.Client
	Limit  int
	Window time.Duration
}

func NewRateLimiter(cfg RateLimiterConfig) *RateLimiter {
	return &RateLimiter{
		redis:  cfg.Redis,
		limit:  cfg.Limit,
		window: cfg.Window,
	}
}

// Allow counts a hit for key and reports whether it is within the limit.
func (rl *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := rl.redis.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}

	// First hit in the window starts the clock.
	if count == 1 {
		if err := rl.redis.Expire(ctx, key, rl.window).Err(); err != nil {
			return false, err
		}
	}

	return count <= int64(rl.limit), nil
}

func (rl *RateLimiter) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("ratelimit:%s", c.ClientIP())

		allowed, err := rl.Allow(c.Request.Context(), key)
		if err != nil {
			// Fail open: an unreachable redis must not take the site down.
			log.Warn().Err(err).Msg("rate limiter unavailable")
			c.Next()
			return
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Too many requests from this IP, please try again later.",
			})
			return
		}

		c.Next()
	}
}

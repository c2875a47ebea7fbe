package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/digitalbuddiesspune/stylishtouches-sub000/config"
	"github.com/digitalbuddiesspune/stylishtouches-sub000/models"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rateLimitKeyPrefix = "storefront:rl:"

// windowCounter increments the hit count for key in its current window and
// reports the count and the time left before the window resets.
type windowCounter func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)

// redisCounter starts the window on the first hit with EXPIRE NX so later
// hits never extend it.
func redisCounter(client *redis.Client) windowCounter {
	return func(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
		var (
			incr *redis.IntCmd
			ttl  *redis.DurationCmd
		)
		_, err := client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			incr = pipe.Incr(ctx, key)
			pipe.ExpireNX(ctx, key, window)
			ttl = pipe.PTTL(ctx, key)
			return nil
		})
		if err != nil {
			return 0, 0, err
		}
		return incr.Val(), ttl.Val(), nil
	}
}

// RateLimiter counts requests per IP and route in fixed Redis windows.
// Requests pass through when Redis is not connected or a call fails, so a
// cache outage never takes the catalog down.
func RateLimiter(maxRequests int, window time.Duration) gin.HandlerFunc {
	return newRateLimiter(maxRequests, window, func() windowCounter {
		client := config.RedisClient
		if client == nil {
			return nil
		}
		return redisCounter(client)
	})
}

// newRateLimiter resolves the counter per request so a Redis client
// connected or closed after startup is picked up.
func newRateLimiter(maxRequests int, window time.Duration, counter func() windowCounter) gin.HandlerFunc {
	return func(c *gin.Context) {
		count := counter()
		if count == nil {
			c.Next()
			return
		}

		key := rateLimitKeyPrefix + c.ClientIP() + ":" + c.FullPath()
		hits, resetIn, err := count(c.Request.Context(), key, window)
		if err != nil {
			log.Printf("⚠️ rate limiter redis error, allowing request: %v", err)
			c.Next()
			return
		}
		if resetIn < 0 {
			resetIn = window
		}

		rate := &models.RateLimiter{
			Limit:          maxRequests,
			Remaining:      max(maxRequests-int(hits), 0),
			ResetAt:        time.Now().Add(resetIn),
			ResetInSeconds: int(resetIn.Round(time.Second).Seconds()),
		}
		c.Set("rateLimiter", rate)

		c.Header("X-RateLimit-Limit", strconv.Itoa(rate.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(rate.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(rate.ResetAt.Unix(), 10))

		if int(hits) > maxRequests {
			c.Header("Retry-After", strconv.Itoa(max(rate.ResetInSeconds, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ApiResponse{
				Message: "Too many requests",
				Error:   true,
				Rate:    rate,
			})
			return
		}

		c.Next()
	}
}

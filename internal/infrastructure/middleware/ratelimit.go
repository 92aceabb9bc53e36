package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-sanitizer/internal/infrastructure/config"
)

// RateLimiter is a sliding-window limiter keyed by client IP and backed by
// a Redis sorted set. Batches are expensive, so it guards the processing
// routes only.
type RateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
	logger *zap.Logger
	now    func() time.Time
}

func NewRateLimiter(client *redis.Client, cfg config.RateLimitConfig, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client: client,
		limit:  cfg.Requests,
		window: cfg.Window,
		prefix: "ratelimit:",
		logger: logger,
		now:    time.Now,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := rl.prefix + c.FullPath() + ":" + c.ClientIP()

		allowed, remaining, err := rl.isAllowed(c.Request.Context(), key)
		if err != nil {
			rl.logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.window.Seconds())))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, please try again later",
				"code":  "RATE_LIMITED",
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string) (bool, int, error) {
	now := rl.now().UnixMilli()
	windowStart := now - rl.window.Milliseconds()

	pipe := rl.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart))
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now),
		Member: uuid.NewString(),
	})
	countCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, rl.window)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, rl.limit, err
	}

	count := int(countCmd.Val())
	remaining := rl.limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= rl.limit, remaining, nil
}

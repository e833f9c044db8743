// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/financy/backend/internal/domain/error"
	"github.com/financy/backend/internal/integration/entrypoint/dto"
)

// RateLimiter provides IP-based fixed-window rate limiting backed by Redis,
// so limits hold across multiple API instances.
type RateLimiter struct {
	client         *redis.Client
	keyPrefix      string
	maxAttempts    int
	windowDuration time.Duration
}

// NewRateLimiter creates a new rate limiter instance.
func NewRateLimiter(client *redis.Client, keyPrefix string, maxAttempts int, windowDuration time.Duration) *RateLimiter {
	return &RateLimiter{
		client:         client,
		keyPrefix:      keyPrefix,
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
// A Redis outage fails open: throttling is protection, not a dependency the
// login path can afford to die on.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		allowed, err := rl.allow(c.Request.Context(), clientIP)
		if err != nil {
			slog.Warn("Rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// allow counts the request against the caller's current window and reports
// whether it is still under the limit.
func (rl *RateLimiter) allow(ctx context.Context, key string) (bool, error) {
	redisKey := fmt.Sprintf("%s:%s", rl.keyPrefix, key)

	attempts, err := rl.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}

	// First hit opens the window; the expiry bounds it.
	if attempts == 1 {
		if err := rl.client.Expire(ctx, redisKey, rl.windowDuration).Err(); err != nil {
			return false, err
		}
	}

	return attempts <= int64(rl.maxAttempts), nil
}

// Reset clears the rate limit state for one key (useful for testing).
func (rl *RateLimiter) Reset(ctx context.Context, key string) error {
	return rl.client.Del(ctx, fmt.Sprintf("%s:%s", rl.keyPrefix, key)).Err()
}

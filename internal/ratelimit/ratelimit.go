package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/JMURv/authcore/internal/config"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Error carries the retry-after hint surfaced to clients as a 429.
type Error struct {
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// Limiter is a fixed-window counter in Redis, applied to the public
// unauthenticated recovery endpoints.
type Limiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

func New(conf config.RedisConfig, limit int64, window time.Duration) *Limiter {
	return &Limiter{
		client: redis.NewClient(
			&redis.Options{
				Addr:     conf.Addr,
				Password: conf.Pass,
			},
		),
		limit:  limit,
		window: window,
	}
}

// Allow increments the window counter for key. A Redis outage fails open:
// rate limiting is a throttle, not an auth control.
func (l *Limiter) Allow(ctx context.Context, key string) error {
	const op = "ratelimit.Allow"

	n, err := l.client.Incr(ctx, "rl:"+key).Result()
	if err != nil {
		zap.L().Warn("rate limiter unavailable", zap.String("op", op), zap.Error(err))
		return nil
	}

	// Only the request that opens the window arms its expiry. Re-arming on
	// every hit would keep a busy client limited forever.
	if n == 1 {
		if err = l.client.Expire(ctx, "rl:"+key, l.window).Err(); err != nil {
			zap.L().Warn("failed to arm rate limit window", zap.String("op", op), zap.Error(err))
		}
	}

	if n > l.limit {
		ttl, err := l.client.TTL(ctx, "rl:"+key).Result()
		if err != nil || ttl < 0 {
			ttl = l.window
		}

		return &Error{RetryAfter: ttl}
	}

	return nil
}

func (l *Limiter) Close() error {
	return l.client.Close()
}

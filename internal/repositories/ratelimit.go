package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/passvault/internal/logger"
)

// RateLimitRepository keeps fixed-window request counters in Redis.
type RateLimitRepository struct {
	client redis.Cmdable
	prefix string
}

// NewRateLimitRepository creates a counter store; keys are namespaced with prefix.
func NewRateLimitRepository(client redis.Cmdable, prefix string) *RateLimitRepository {
	return &RateLimitRepository{
		client: client,
		prefix: prefix,
	}
}

// Hit increments the counter for key and returns the count within the current window.
// The window starts at the first hit and lasts for window.
func (r *RateLimitRepository) Hit(ctx context.Context, key string, window time.Duration) (int64, error) {
	fullKey := fmt.Sprintf("%s:%s", r.prefix, key)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, fullKey)
		pipe.ExpireNX(ctx, fullKey, window)
		return nil
	})

	logger.Log.Debugw("rate limit hit",
		"key", fullKey,
		"window", window,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

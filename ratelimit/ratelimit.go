// Package ratelimit bounds unauthenticated write traffic with a fixed
// window counter per client key.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"prompt-hub/config"
	"prompt-hub/errs"
)

// Limiter answers whether one more request fits in the current window.
type Limiter interface {
	// Allow returns nil when the request is admitted and ErrRateLimited
	// when the window budget is spent.
	Allow(ctx context.Context, key string) error
}

// NopLimiter admits everything. Used when the limit is configured off.
type NopLimiter struct{}

func (NopLimiter) Allow(ctx context.Context, key string) error { return nil }

// FixedWindowLimiter counts requests per key in Redis with INCR plus a
// window-sized EXPIRE on the first hit. When Redis is unreachable it
// falls back to an in-process counter so a cache outage does not take
// the write path down, at the cost of per-instance instead of global
// accounting during the outage.
type FixedWindowLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration

	mu       sync.Mutex
	local    map[string]int
	localEnd time.Time
}

// New builds a limiter from config. A nil Redis client or a non-positive
// request budget yields a NopLimiter.
func New(rdb *redis.Client, cfg config.RateLimitConfig) Limiter {
	if cfg.RequestsPerWindow <= 0 {
		return NopLimiter{}
	}
	return &FixedWindowLimiter{
		rdb:    rdb,
		limit:  cfg.RequestsPerWindow,
		window: time.Duration(cfg.WindowSeconds) * time.Second,
		local:  map[string]int{},
	}
}

func (l *FixedWindowLimiter) Allow(ctx context.Context, key string) error {
	if l.rdb != nil {
		if err := l.allowRedis(ctx, key); err == nil || errors.Is(err, errs.ErrRateLimited) {
			return err
		}
		// Redis error, fall through to the local counter.
	}
	return l.allowLocal(key)
}

func (l *FixedWindowLimiter) allowRedis(ctx context.Context, key string) error {
	redisKey := fmt.Sprintf("ratelimit:%s", key)

	n, err := l.rdb.Incr(ctx, redisKey).Result()
	if err != nil {
		return err
	}
	if n == 1 {
		// First hit in this window; the key expires when the window ends.
		if err := l.rdb.Expire(ctx, redisKey, l.window).Err(); err != nil {
			config.Log.Warnf("ratelimit expire failed for %s: %v", redisKey, err)
		}
	}
	if n > int64(l.limit) {
		return errs.ErrRateLimited
	}
	return nil
}

func (l *FixedWindowLimiter) allowLocal(key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	if now.After(l.localEnd) {
		l.local = map[string]int{}
		l.localEnd = now.Add(l.window)
	}
	l.local[key]++
	if l.local[key] > l.limit {
		return errs.ErrRateLimited
	}
	return nil
}

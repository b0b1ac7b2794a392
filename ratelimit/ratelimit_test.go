package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-hub/config"
	"prompt-hub/errs"
)

func TestFixedWindowLimiterRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	limiter := New(rdb, config.RateLimitConfig{RequestsPerWindow: 3, WindowSeconds: 60})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, limiter.Allow(ctx, "client-a"))
	}
	assert.ErrorIs(t, limiter.Allow(ctx, "client-a"), errs.ErrRateLimited)

	// A different key has its own budget.
	assert.NoError(t, limiter.Allow(ctx, "client-b"))

	// The window expiring resets the counter.
	mr.FastForward(61 * time.Second)
	assert.NoError(t, limiter.Allow(ctx, "client-a"))
}

func TestFixedWindowLimiterFallsBackWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()
	mr.Close()

	limiter := New(rdb, config.RateLimitConfig{RequestsPerWindow: 2, WindowSeconds: 60})
	ctx := context.Background()

	// The in-process counter still enforces the budget.
	require.NoError(t, limiter.Allow(ctx, "client-a"))
	require.NoError(t, limiter.Allow(ctx, "client-a"))
	assert.ErrorIs(t, limiter.Allow(ctx, "client-a"), errs.ErrRateLimited)
}

func TestNopLimiterWhenDisabled(t *testing.T) {
	limiter := New(nil, config.RateLimitConfig{RequestsPerWindow: 0, WindowSeconds: 60})
	_, ok := limiter.(NopLimiter)
	assert.True(t, ok)
	assert.NoError(t, limiter.Allow(context.Background(), "anyone"))
}

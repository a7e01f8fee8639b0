package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, limit int, window time.Duration) RateLimiter {
	t.Helper()
	mr := miniredis.RunT(t)

	limiter, err := NewRedisRateLimiter("redis://"+mr.Addr(), limit, window)
	require.NoError(t, err)
	t.Cleanup(func() { limiter.Close() })
	return limiter
}

func TestRedisLimiterAllowsUnderLimit(t *testing.T) {
	limiter := newTestLimiter(t, 5, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}
}

func TestRedisLimiterDeniesOverLimit(t *testing.T) {
	limiter := newTestLimiter(t, 3, time.Minute)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		allowed, err := limiter.Allow(ctx, "10.0.0.2")
		require.NoError(t, err)
		require.True(t, allowed)
	}

	allowed, err := limiter.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.False(t, allowed, "fourth request should be denied")
}

func TestRedisLimiterKeysAreIndependent(t *testing.T) {
	limiter := newTestLimiter(t, 1, time.Minute)
	ctx := context.Background()

	allowed, err := limiter.Allow(ctx, "10.0.0.3")
	require.NoError(t, err)
	require.True(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.3")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = limiter.Allow(ctx, "10.0.0.4")
	require.NoError(t, err)
	assert.True(t, allowed, "a different source is not affected")
}

func TestNewRedisRateLimiterBadURL(t *testing.T) {
	_, err := NewRedisRateLimiter("not-a-url", 10, time.Minute)
	assert.Error(t, err)
}

func TestNewRedisRateLimiterUnreachable(t *testing.T) {
	_, err := NewRedisRateLimiter("redis://127.0.0.1:1", 10, time.Minute)
	assert.Error(t, err)
}

func TestNoOpRateLimiter(t *testing.T) {
	limiter := &NoOpRateLimiter{}
	for i := 0; i < 100; i++ {
		allowed, err := limiter.Allow(context.Background(), "any")
		require.NoError(t, err)
		assert.True(t, allowed)
	}
	assert.NoError(t, limiter.Close())
}

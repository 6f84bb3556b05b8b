package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounter struct {
	counts    map[string]int64
	incrErr   error
	expireErr error
	expired   map[string]time.Duration
}

func newFakeCounter() *fakeCounter {
	return &fakeCounter{
		counts:  make(map[string]int64),
		expired: make(map[string]time.Duration),
	}
}

func (f *fakeCounter) Incr(_ context.Context, key string) (int64, error) {
	if f.incrErr != nil {
		return 0, f.incrErr
	}
	f.counts[key]++
	return f.counts[key], nil
}

func (f *fakeCounter) Expire(_ context.Context, key string, ttl time.Duration) error {
	if f.expireErr != nil {
		return f.expireErr
	}
	f.expired[key] = ttl
	return nil
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func TestCheckAndConsume_CountsDownAndBlocks(t *testing.T) {
	counter := newFakeCounter()
	limiter := New(counter, 5, time.Hour, nopLogger{})
	ctx := context.Background()

	for want := 4; want >= 0; want-- {
		allowed, remaining, err := limiter.CheckAndConsume(ctx, "203.0.113.7")
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, want, remaining)
	}

	allowed, remaining, err := limiter.CheckAndConsume(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestCheckAndConsume_WindowStartsOnFirstHit(t *testing.T) {
	counter := newFakeCounter()
	limiter := New(counter, 5, time.Hour, nopLogger{})
	ctx := context.Background()

	_, _, err := limiter.CheckAndConsume(ctx, "203.0.113.7")
	require.NoError(t, err)
	_, _, err = limiter.CheckAndConsume(ctx, "203.0.113.7")
	require.NoError(t, err)

	// TTL выставлен ровно один раз, первым срабатыванием
	assert.Equal(t, map[string]time.Duration{"rate-limit:203.0.113.7": time.Hour}, counter.expired)
}

func TestCheckAndConsume_KeysAreIndependent(t *testing.T) {
	counter := newFakeCounter()
	limiter := New(counter, 1, time.Hour, nopLogger{})
	ctx := context.Background()

	allowed, _, err := limiter.CheckAndConsume(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _, err = limiter.CheckAndConsume(ctx, "203.0.113.7")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, _, err = limiter.CheckAndConsume(ctx, "198.51.100.9")
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestCheckAndConsume_FailsOpenWhenCounterUnavailable(t *testing.T) {
	counter := newFakeCounter()
	counter.incrErr = errors.New("redis down")
	limiter := New(counter, 5, time.Hour, nopLogger{})

	allowed, remaining, err := limiter.CheckAndConsume(context.Background(), "203.0.113.7")

	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 5, remaining)
}

func TestCheckAndConsume_ExpireFailureDoesNotBlock(t *testing.T) {
	counter := newFakeCounter()
	counter.expireErr = errors.New("redis hiccup")
	limiter := New(counter, 5, time.Hour, nopLogger{})

	allowed, _, err := limiter.CheckAndConsume(context.Background(), "203.0.113.7")

	require.NoError(t, err)
	assert.True(t, allowed)
}

package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/JMURv/authcore/internal/config"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_Allow(t *testing.T) {
	s := miniredis.RunT(t)
	l := New(config.RedisConfig{Addr: s.Addr()}, 3, time.Minute)
	defer l.Close()

	ctx := context.Background()
	key := "magic-link:1.2.3.4"

	t.Run("UnderLimit", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			assert.NoError(t, l.Allow(ctx, key))
		}
	})

	t.Run("OverLimit", func(t *testing.T) {
		err := l.Allow(ctx, key)
		var rlErr *Error
		require.ErrorAs(t, err, &rlErr)
		assert.Greater(t, rlErr.RetryAfter, time.Duration(0))
	})

	t.Run("WindowExpires", func(t *testing.T) {
		s.FastForward(time.Minute + time.Second)
		assert.NoError(t, l.Allow(ctx, key))
	})
}

// Hits inside an open window must not extend it: the counter expires one
// window after the first request no matter how much traffic follows.
func TestLimiter_WindowNotReArmed(t *testing.T) {
	s := miniredis.RunT(t)
	l := New(config.RedisConfig{Addr: s.Addr()}, 1, time.Minute)
	defer l.Close()

	ctx := context.Background()
	key := "reset:10.0.0.1"

	require.NoError(t, l.Allow(ctx, key))
	assert.Error(t, l.Allow(ctx, key))

	s.FastForward(30 * time.Second)
	assert.Error(t, l.Allow(ctx, key))

	s.FastForward(31 * time.Second)
	assert.NoError(t, l.Allow(ctx, key))
}

func TestLimiter_FailsOpen(t *testing.T) {
	s, err := miniredis.Run()
	require.NoError(t, err)

	l := New(config.RedisConfig{Addr: s.Addr()}, 1, time.Minute)
	defer l.Close()

	s.Close()
	assert.NoError(t, l.Allow(context.Background(), "any:key"))
}

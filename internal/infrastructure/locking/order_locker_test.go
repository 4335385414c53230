package locking

import (
	"context"
	"errors"
	"testing"
	"time"

	"gestao_producao/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoopOrderLocker(t *testing.T) {
	unlock, err := NoopOrderLocker{}.Lock(context.Background(), "o-1")
	require.NoError(t, err)
	assert.NoError(t, unlock(context.Background()))
}

func TestNewOrderLockerFromEnv(t *testing.T) {
	t.Run("redis not configured", func(t *testing.T) {
		l, err := NewOrderLockerFromEnv(nil, nil)
		require.NoError(t, err)
		assert.IsType(t, NoopOrderLocker{}, l)
	})

	t.Run("redis connected", func(t *testing.T) {
		rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
		defer rdb.Close()
		t.Setenv("ORDER_LOCK_TTL", "3s")

		got, err := NewOrderLockerFromEnv(rdb, nil)
		require.NoError(t, err)
		l, ok := got.(*RedisOrderLocker)
		require.True(t, ok)
		assert.Equal(t, 3*time.Second, l.ttl)
	})

	t.Run("configured but unreachable fails", func(t *testing.T) {
		t.Setenv("ORDER_LOCK_OPTIONAL", "")
		connectErr := errors.New("dial tcp 10.0.0.5:6379: connection refused")

		l, err := NewOrderLockerFromEnv(nil, connectErr)
		require.ErrorIs(t, err, connectErr)
		assert.Nil(t, l)
	})

	t.Run("unreachable with optional locking degrades", func(t *testing.T) {
		t.Setenv("ORDER_LOCK_OPTIONAL", "true")

		l, err := NewOrderLockerFromEnv(nil, errors.New("connection refused"))
		require.NoError(t, err)
		assert.IsType(t, NoopOrderLocker{}, l)
	})
}

func TestLockTTLFromEnv(t *testing.T) {
	cases := map[string]time.Duration{
		"":      defaultLockTTL,
		"500ms": 500 * time.Millisecond,
		"abc":   defaultLockTTL,
		"-1s":   defaultLockTTL,
	}
	for raw, want := range cases {
		t.Setenv("ORDER_LOCK_TTL", raw)
		assert.Equal(t, want, lockTTLFromEnv(), raw)
	}
}

func TestRedisOrderLocker_Unreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1, DialTimeout: 200 * time.Millisecond})
	defer rdb.Close()
	l := NewRedisOrderLocker(rdb, time.Second)

	unlock, err := l.Lock(context.Background(), "o-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, interfaces.ErrLockNotObtained)
	assert.Nil(t, unlock)
}

func TestRedisOrderLocker_Defaults(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	defer rdb.Close()

	l := NewRedisOrderLocker(rdb, 0)
	assert.Equal(t, defaultLockTTL, l.ttl)
	assert.Equal(t, "order-lock:o-1", lockKey("o-1"))
	assert.NotNil(t, l.retryStrategy())
}

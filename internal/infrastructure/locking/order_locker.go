package locking

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gestao_producao/internal/infrastructure/logger"
	"gestao_producao/internal/usecase/interfaces"

	"github.com/bsm/redislock"
	"github.com/redis/go-redis/v9"
)

const (
	defaultLockTTL   = 10 * time.Second
	lockRetryBackoff = 100 * time.Millisecond
	lockKeyPrefix    = "order-lock:"
)

// RedisOrderLocker serializes appointments of one order across service instances.
// A lock is held at most ttl; callers waiting for it retry for about the same time.
type RedisOrderLocker struct {
	client *redislock.Client
	ttl    time.Duration
}

var _ interfaces.IOrderLocker = (*RedisOrderLocker)(nil)

func NewRedisOrderLocker(rdb redislock.RedisClient, ttl time.Duration) *RedisOrderLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}
	return &RedisOrderLocker{client: redislock.New(rdb), ttl: ttl}
}

func (l *RedisOrderLocker) Lock(ctx context.Context, orderID string) (interfaces.UnlockFunc, error) {
	lock, err := l.client.Obtain(ctx, lockKey(orderID), l.ttl, &redislock.Options{
		RetryStrategy: l.retryStrategy(),
	})
	if errors.Is(err, redislock.ErrNotObtained) {
		return nil, interfaces.ErrLockNotObtained
	}
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context) error {
		err := lock.Release(ctx)
		if errors.Is(err, redislock.ErrLockNotHeld) {
			// expired before release; nothing left to free
			return nil
		}
		return err
	}, nil
}

func (l *RedisOrderLocker) retryStrategy() redislock.RetryStrategy {
	return redislock.LimitRetry(redislock.LinearBackoff(lockRetryBackoff), int(l.ttl/lockRetryBackoff))
}

func lockKey(orderID string) string {
	return lockKeyPrefix + orderID
}

// NoopOrderLocker is used when no Redis is configured; a single instance relies on
// the optimistic version check alone.
type NoopOrderLocker struct{}

var _ interfaces.IOrderLocker = NoopOrderLocker{}

func (NoopOrderLocker) Lock(context.Context, string) (interfaces.UnlockFunc, error) {
	return func(context.Context) error { return nil }, nil
}

// NewOrderLockerFromEnv picks the locker from the outcome of connecting to Redis.
// rdb == nil with no connectErr means Redis is not configured and the no-op locker is
// used. A configured but unreachable Redis is an error unless ORDER_LOCK_OPTIONAL=true,
// in which case the service degrades to the no-op locker. ORDER_LOCK_TTL (a Go
// duration, default 10s) bounds how long an appointment may hold the lock.
func NewOrderLockerFromEnv(rdb *redis.Client, connectErr error) (interfaces.IOrderLocker, error) {
	if connectErr != nil {
		optional, _ := strconv.ParseBool(os.Getenv("ORDER_LOCK_OPTIONAL"))
		if !optional {
			return nil, fmt.Errorf("order locking: redis configured but unavailable: %w", connectErr)
		}
		logger.GetLogger().WithError(connectErr).Warn("[locking][config] redis unavailable; ORDER_LOCK_OPTIONAL set, order locking disabled")
		return NoopOrderLocker{}, nil
	}
	if rdb == nil {
		return NoopOrderLocker{}, nil
	}
	return NewRedisOrderLocker(rdb, lockTTLFromEnv()), nil
}

func lockTTLFromEnv() time.Duration {
	raw := os.Getenv("ORDER_LOCK_TTL")
	if raw == "" {
		return defaultLockTTL
	}
	ttl, err := time.ParseDuration(raw)
	if err != nil || ttl <= 0 {
		logger.GetLogger().WithField("value", raw).Warn("[locking][config] invalid ORDER_LOCK_TTL; using default")
		return defaultLockTTL
	}
	return ttl
}

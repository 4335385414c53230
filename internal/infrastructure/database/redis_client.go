package database

import (
	"context"
	"os"
	"time"

	"gestao_producao/internal/infrastructure/logger"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const redisConnectAttempts = 5

// ConnectRedis returns a client for REDIS_ADDRESS, or nil when the variable is unset
// (single-instance deployments run without distributed locking).
func ConnectRedis(ctx context.Context) (*redis.Client, error) {
	addr := os.Getenv("REDIS_ADDRESS")
	log := logger.GetLogger()
	if addr == "" {
		log.Info("[database][redis] REDIS_ADDRESS not set; order locking disabled")
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	var err error
	for attempt := 1; attempt <= redisConnectAttempts; attempt++ {
		if err = rdb.Ping(ctx).Err(); err == nil {
			log.WithFields(logrus.Fields{"addr": addr, "attempt": attempt}).Info("[database][redis] connected")
			return rdb, nil
		}
		sleep := time.Second * time.Duration(1<<min(attempt, 4))
		log.WithFields(logrus.Fields{"addr": addr, "attempt": attempt, "retry_in": sleep.String()}).
			WithError(err).Warn("[database][redis] ping failed")

		select {
		case <-ctx.Done():
			_ = rdb.Close()
			return nil, ctx.Err()
		case <-time.After(sleep):
		}
	}
	_ = rdb.Close()
	return nil, err
}

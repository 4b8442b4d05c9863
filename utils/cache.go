// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"finalprojectapi/config"

	"github.com/go-redis/redis/v8"
)

// LockClient is the redis client backing the reservation guard.
var LockClient *redis.Client

// InitLockClient connects to the redis DB reserved for reservation locks.
func InitLockClient(cfg config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisLockDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("failed to connect to Redis (locks): %w", err)
	}
	LockClient = client
	return nil
}

package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"finalprojectapi/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSlotLocked means another request holds the lock for the same slot.
var ErrSlotLocked = errors.New("reservation slot is locked")

// BookingGuard serializes reservation creates per table slot.
type BookingGuard interface {
	// Acquire takes the lock for key; the returned func releases it.
	Acquire(ctx context.Context, key string) (func(), error)
}

// releaseScript deletes the lock only when it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

// RedisGuard implements BookingGuard with SET NX locks that expire after TTL.
type RedisGuard struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGuard(client *redis.Client, ttl time.Duration) *RedisGuard {
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	return &RedisGuard{Client: client, TTL: ttl}
}

func (g *RedisGuard) Acquire(ctx context.Context, key string) (func(), error) {
	token := uuid.New().String()
	ok, err := g.Client.SetNX(ctx, key, token, g.TTL).Result()
	if err != nil {
		return nil, fmt.Errorf("redis lock %s: %w", key, err)
	}
	if !ok {
		return nil, ErrSlotLocked
	}
	return func() {
		// Released on a fresh context so a cancelled request still unlocks.
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := releaseScript.Run(ctx, g.Client, []string{key}, token).Err(); err != nil && err != redis.Nil {
			utils.GetLogger().Warn("Failed to release reservation lock", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

package payment

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker guards against duplicate order submissions from the same session.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) bool
	Release(ctx context.Context, key string)
}

type RedisLocker struct {
	client *redis.Client
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) bool {
	ok, err := l.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		// Redis being down must not block checkout; skip the guard.
		return true
	}
	return ok
}

func (l *RedisLocker) Release(ctx context.Context, key string) {
	l.client.Del(ctx, key)
}

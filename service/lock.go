package service

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Locker (user, video) 等键粒度的互斥,防止并发 toggle 双写
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string)
}

type RedisLocker struct {
	Redis *redis.Client
}

var _ Locker = (*RedisLocker)(nil)

func NewRedisLocker(rds *redis.Client) *RedisLocker {
	return &RedisLocker{Redis: rds}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.Redis.SetNX(ctx, key, 1, ttl).Result()
}

func (l *RedisLocker) Release(ctx context.Context, key string) {
	l.Redis.Del(ctx, key)
}

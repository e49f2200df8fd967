package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 未读通知数缓存过期时间 - 14天
const unreadExpireAt = 14 * 24 * time.Hour

// UnreadStorage 用户未读通知数的 redis 计数,DB 为真值,
// 读写不一致时调用方用 Set 重置
type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// 只对已存在的键自增:键不在时必须回源 DB 重建,
// 直接 INCRBY 会凭空造出一个错误的计数
var incrIfExists = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 1 then
  redis.call('INCRBY', KEYS[1], ARGV[1])
  redis.call('EXPIRE', KEYS[1], ARGV[2])
  return 1
end
return 0
`)

// Incr 通知投递后未读数自增
func (u *UnreadStorage) Incr(ctx context.Context, userID string, delta int64) {
	_ = incrIfExists.Run(ctx, u.redis, []string{u.name(userID)}, delta, int(unreadExpireAt.Seconds())).Err()
}

// Get 获取未读数,缓存未命中返回 -1,由调用方回源 DB
func (u *UnreadStorage) Get(ctx context.Context, userID string) int64 {
	v, err := u.redis.Get(ctx, u.name(userID)).Int64()
	if err != nil {
		return -1
	}
	return v
}

// Set 以 DB 真值重置
func (u *UnreadStorage) Set(ctx context.Context, userID string, count int64) {
	u.redis.Set(ctx, u.name(userID), count, unreadExpireAt)
}

// Del 既读/未读切换后失效,下次读取回源
func (u *UnreadStorage) Del(ctx context.Context, userID string) {
	u.redis.Del(ctx, u.name(userID))
}

func (u *UnreadStorage) name(userID string) string {
	return fmt.Sprintf("notify:unread:%s", userID)
}

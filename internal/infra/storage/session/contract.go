package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient команды Redis, которые использует хранилище (*redis.Client подходит)
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	SetArgs(ctx context.Context, key string, value interface{}, a redis.SetArgs) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

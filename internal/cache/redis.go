package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisCache 多实例部署时共享的缓存，过期交给 Redis 的 EX
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *logrus.Logger
}

// NewRedisCache client 由调用方创建和关闭
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{
		client: client,
		ttl:    ttl,
		prefix: "matchodds:",
		logger: logger,
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WithError(err).WithField("key", key).Warn("读取Redis缓存失败，按未命中处理")
		}
		return nil, false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, r.prefix+key, value, r.ttl).Err(); err != nil {
		r.logger.WithError(err).WithField("key", key).Warn("写入Redis缓存失败")
	}
}

package cache

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// Redis 不可达时读写都不能报错，读按 miss 处理
func TestRedisCacheUnavailableIsMiss(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisCache(client, 0, logger)
	if c.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want default %v", c.ttl, DefaultTTL)
	}

	ctx := context.Background()
	c.Set(ctx, "fd:/competitions/PL/matches", []byte(`{}`))
	if v, ok := c.Get(ctx, "fd:/competitions/PL/matches"); ok || v != nil {
		t.Errorf("Get() = %q, %v; want miss", v, ok)
	}
}

func TestRedisCacheSetGetExpiry(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	c := NewRedisCache(client, time.Minute, logger)
	ctx := context.Background()
	key := "odds:soccer_epl"

	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("Get() before Set should miss")
	}
	c.Set(ctx, key, []byte(`[{"id":"e1"}]`))
	if v, ok := c.Get(ctx, key); !ok || string(v) != `[{"id":"e1"}]` {
		t.Errorf("Get() = %q, %v; want hit", v, ok)
	}
	if !mr.Exists("matchodds:" + key) {
		t.Error("key should be stored under matchodds: prefix")
	}
	if ttl := mr.TTL("matchodds:" + key); ttl != time.Minute {
		t.Errorf("TTL = %v, want %v", ttl, time.Minute)
	}

	mr.FastForward(time.Minute + time.Second)
	if _, ok := c.Get(ctx, key); ok {
		t.Error("Get() after expiry should miss")
	}
}

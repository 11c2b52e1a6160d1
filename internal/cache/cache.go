package cache

import (
	"context"
	"time"
)

// DefaultTTL 上游响应缓存时间
const DefaultTTL = 300 * time.Second

// Cache 上游响应缓存。进程启动时创建并注入 Fetcher，不持久化，只靠 TTL 过期。
// 没有错误返回：取不到就是 miss，调用方照常回源。
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	// Set 总是覆盖并重置写入时间
	Set(ctx context.Context, key string, value []byte)
}

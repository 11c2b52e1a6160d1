package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	value      []byte
	insertedAt time.Time
}

// MemoryCache 进程内缓存，读时惰性过期，不做主动淘汰
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryCache ttl<=0 时使用 DefaultTTL
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// WithClock 替换时钟（测试用）
func (m *MemoryCache) WithClock(now func() time.Time) *MemoryCache {
	m.now = now
	return m
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if m.now().Sub(entry.insertedAt) >= m.ttl {
		return nil, false
	}
	return entry.value, true
}

func (m *MemoryCache) Set(_ context.Context, key string, value []byte) {
	m.mu.Lock()
	m.entries[key] = memoryEntry{value: value, insertedAt: m.now()}
	m.mu.Unlock()
}

// Len 当前条目数（含已过期未清理的）
func (m *MemoryCache) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

package cache

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache returns a process-local RedisCache, used when CACHE_DRIVER=memory.
func NewMemoryCache() RedisCache {
	return &memoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Save implements RedisCache.
func (cache *memoryCache) Save(_ context.Context, key string, value any, duration int) error {
	strValue, err := encode(value)
	if err != nil {
		return err
	}

	entry := memoryEntry{value: strValue}
	if duration > 0 {
		entry.expiresAt = cache.now().Add(time.Second * time.Duration(duration))
	}

	cache.mu.Lock()
	cache.entries[key] = entry
	cache.mu.Unlock()

	return nil
}

// Get implements RedisCache.
func (cache *memoryCache) Get(_ context.Context, key string, value any) error {
	cache.mu.RLock()
	entry, ok := cache.entries[key]
	cache.mu.RUnlock()

	if !ok || (!entry.expiresAt.IsZero() && !cache.now().Before(entry.expiresAt)) {
		return fmt.Errorf("failed to get cache value: %w", Nil)
	}

	return decode(string(entry.value), value)
}

// Delete implements RedisCache.
func (cache *memoryCache) Delete(_ context.Context, key string) error {
	cache.mu.Lock()
	delete(cache.entries, key)
	cache.mu.Unlock()

	return nil
}

// Clear implements RedisCache.
func (cache *memoryCache) Clear(_ context.Context, prefix string) error {
	cache.mu.Lock()
	defer cache.mu.Unlock()

	for key := range cache.entries {
		if strings.HasPrefix(key, prefix) {
			delete(cache.entries, key)
		}
	}

	return nil
}

// Package cache provides the byte caches backing the pull-based data client:
// an in-process TTL cache and a redis-backed variant for shared deployments.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/poyrazK/dnsaudit/internal/infrastructure/metrics"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e *memoryEntry) expired() bool {
	return time.Now().After(e.expiresAt)
}

// Memory is an in-process cache with per-entry TTL. Expired entries are
// dropped lazily on access.
type Memory struct {
	mu   sync.Mutex
	data map[string]*memoryEntry
}

// NewMemory creates an empty in-process cache.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]*memoryEntry)}
}

// Get retrieves a value if present and not expired.
func (c *Memory) Get(ctx context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.data[key]
	if !ok {
		metrics.CacheOperations.WithLabelValues("memory", "miss").Inc()
		return nil, false
	}
	if entry.expired() {
		delete(c.data, key)
		metrics.CacheOperations.WithLabelValues("memory", "miss").Inc()
		return nil, false
	}

	metrics.CacheOperations.WithLabelValues("memory", "hit").Inc()
	return entry.value, true
}

// Set stores a value with the given TTL.
func (c *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = &memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// Size returns the number of entries currently held, expired ones included.
func (c *Memory) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

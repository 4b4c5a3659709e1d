package cache

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache maps composite (operation, argument) keys to previously computed
// results. It is owned by the process and injected into the service layer;
// there is no ambient global instance. Entries expire only through explicit
// eviction, with an optional TTL safety net on top.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	group   singleflight.Group
	log     *zap.Logger
}

type entry struct {
	value    any
	storedAt time.Time
}

// New builds a cache. A ttl of zero disables expiry entirely, matching the
// write-triggered eviction model.
func New(ttl time.Duration, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		log:     log,
	}
}

// Key builds a composite cache key from an operation name and its literal
// argument tuple.
func Key(op string, args ...string) string {
	if len(args) == 0 {
		return op
	}
	return op + ":" + strings.Join(args, ":")
}

func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && time.Since(e.storedAt) > c.ttl {
		c.Evict(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, storedAt: time.Now()}
	c.mu.Unlock()
}

func (c *Cache) Evict(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.log.Debug("cache evict", zap.String("key", key))
}

// Once is a single-flight read-through: concurrent misses for the same key
// collapse into one computation and every caller observes the same result.
// Only successful results are stored.
func (c *Cache) Once(key string, compute func() (any, error)) (any, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err, _ := c.group.Do(key, func() (any, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := compute()
		if err != nil {
			return nil, err
		}
		c.Set(key, v)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

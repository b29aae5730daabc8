// Package cache provides a concurrency-safe in-memory cache with per-entry
// time-to-live, used to avoid repeated corpus fetches within the TTL window.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL is the entry lifetime used when none is configured.
const DefaultTTL = 15 * time.Minute

type entry[V any] struct {
	value    V
	storedAt time.Time
	ttl      time.Duration
}

// TTLCache is a key-value cache where each entry expires independently.
// An expired entry is logically absent and is evicted lazily on next access.
// The cache is purely a performance optimization: it may be dropped at any
// time without correctness impact.
type TTLCache[V any] struct {
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	entries map[string]entry[V]
}

// Option configures a TTLCache.
type Option[V any] func(*TTLCache[V])

// WithClock overrides the time source, for deterministic expiry tests.
func WithClock[V any](now func() time.Time) Option[V] {
	return func(c *TTLCache[V]) { c.now = now }
}

// New creates a cache whose entries live for ttl. A non-positive ttl falls
// back to DefaultTTL.
func New[V any](ttl time.Duration, opts ...Option[V]) *TTLCache[V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	c := &TTLCache[V]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry[V]),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the cached value for key if it has not expired. Expired
// entries are deleted on the way out.
func (c *TTLCache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().Sub(e.storedAt) >= e.ttl {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Set stores value under key with the cache's default TTL.
func (c *TTLCache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with an explicit TTL.
func (c *TTLCache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.ttl
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: c.now(), ttl: ttl}
}

// Delete removes a single key regardless of expiry.
func (c *TTLCache[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Clear drops all entries unconditionally.
func (c *TTLCache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Len returns the number of stored entries, including any not yet evicted
// expired ones.
func (c *TTLCache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

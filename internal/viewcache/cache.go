package viewcache

import (
	"container/list"
	"errors"
)

// DefaultCapacity is the default number of rendered rows retained.
const DefaultCapacity = 256

// Common cache errors.
var (
	ErrCacheDisabled   = errors.New("view cache is disabled")
	ErrInvalidCapacity = errors.New("cache capacity must be >= 1")
)

// Cache is a fixed-capacity LRU map from view keys to rendered content.
// Not safe for concurrent use; the render path is single-threaded.
type Cache[K comparable, V any] struct {
	capacity int
	enabled  bool

	order   *list.List
	entries map[K]*list.Element

	hits   int
	misses int
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates an enabled cache holding at most capacity entries.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		enabled:  true,
		order:    list.New(),
		entries:  make(map[K]*list.Element, capacity),
	}, nil
}

// NewDisabled creates a cache whose operations all miss. Useful for
// measuring the demo with memoization off.
func NewDisabled[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{enabled: false}
}

// Get returns the cached value for key and promotes it to most recently
// used. The second result reports whether the key was present.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	var zero V
	if !c.enabled {
		return zero, false
	}

	el, ok := c.entries[key]
	if !ok {
		c.misses++
		return zero, false
	}

	c.hits++
	c.order.MoveToFront(el)
	return el.Value.(*entry[K, V]).value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *Cache[K, V]) Set(key K, value V) {
	if !c.enabled {
		return
	}

	if el, ok := c.entries[key]; ok {
		el.Value.(*entry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*entry[K, V]).key)
		}
	}

	c.entries[key] = c.order.PushFront(&entry[K, V]{key: key, value: value})
}

// Invalidate drops the entry for key, if present. Call it when an item is
// updated so the stale rendering cannot be served.
func (c *Cache[K, V]) Invalidate(key K) {
	if !c.enabled {
		return
	}
	if el, ok := c.entries[key]; ok {
		c.order.Remove(el)
		delete(c.entries, key)
	}
}

// Clear drops every entry but keeps hit/miss counters.
func (c *Cache[K, V]) Clear() {
	if !c.enabled {
		return
	}
	c.order.Init()
	c.entries = make(map[K]*list.Element, c.capacity)
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int {
	if !c.enabled {
		return 0
	}
	return c.order.Len()
}

// Hits returns the number of cache hits since creation.
func (c *Cache[K, V]) Hits() int { return c.hits }

// Misses returns the number of cache misses since creation.
func (c *Cache[K, V]) Misses() int { return c.misses }

// IsEnabled reports whether the cache is active.
func (c *Cache[K, V]) IsEnabled() bool { return c.enabled }

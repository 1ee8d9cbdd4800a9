package cache

import "errors"

// ErrInvalidCapacity is returned by New and NewWithEvict when the requested
// capacity is below one. A cache that can hold nothing is a usage error and
// is rejected at construction rather than silently clamped.
var ErrInvalidCapacity = errors.New("capacity must be positive")

// Cache is a fixed-capacity key–value cache with least-recently-used
// eviction and O(1) Get, Put, and Remove.
//
// The core design is intentionally explicit and "mechanical":
// a map gives O(1) key lookup, and a handle-linked recency list maintains
// use ordering. Every mutation keeps the two structures in lockstep — the
// index key set always equals the key set linked into the list.
//
// Cache is not safe for concurrent use. There are no background goroutines
// and no operation blocks, so callers that need concurrency can wrap the
// whole cache behind a single mutex without deadlock concerns.
type Cache[K comparable, V any] struct {
	capacity int
	index    map[K]handle
	list     *recencyList[K, V]
	onEvict  func(K, V)
}

// New constructs a cache holding at most capacity entries.
//
// New returns ErrInvalidCapacity for capacity < 1; capacity is fixed for
// the life of the cache.
func New[K comparable, V any](capacity int) (*Cache[K, V], error) {
	return NewWithEvict[K, V](capacity, nil)
}

// NewWithEvict is New with a callback invoked once per entry dropped by
// capacity eviction or Purge. The callback runs synchronously inside Put
// and Purge and must not call back into the cache.
func NewWithEvict[K comparable, V any](capacity int, onEvict func(key K, value V)) (*Cache[K, V], error) {
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	return &Cache[K, V]{
		capacity: capacity,
		index:    make(map[K]handle, capacity),
		// One spare arena slot beyond capacity: Put links the new entry
		// before checking the bound, so the list briefly holds capacity+1.
		list:    newRecencyList[K, V](capacity + 1),
		onEvict: onEvict,
	}, nil
}

// Get returns the value stored under key and marks the entry most recently
// used. A miss returns the zero value and false with no side effects.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	h, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.list.moveToFront(h)
	return c.list.nodes[h].value, true
}

// Put stores value under key and marks the entry most recently used.
//
// An existing key has its value replaced in place; the entry count does not
// change. A new key is inserted at the most-recently-used position, and if
// that pushes the count past capacity the least-recently-used entry is
// dropped. Capacity is only ever exceeded by one, so at most one eviction
// happens per call; Put reports whether one did.
func (c *Cache[K, V]) Put(key K, value V) (evicted bool) {
	if h, ok := c.index[key]; ok {
		c.list.nodes[h].value = value
		c.list.moveToFront(h)
		return false
	}

	c.index[key] = c.list.alloc(key, value)

	if len(c.index) <= c.capacity {
		return false
	}
	c.evictOldest()
	return true
}

// Peek returns the value stored under key without touching recency order.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	h, ok := c.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.list.nodes[h].value, true
}

// Contains reports whether key is live without touching recency order.
func (c *Cache[K, V]) Contains(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Remove drops key if present and reports whether it was. Explicit removal
// is the caller's own doing, so the evict callback does not fire.
func (c *Cache[K, V]) Remove(key K) bool {
	h, ok := c.index[key]
	if !ok {
		return false
	}
	delete(c.index, key)
	c.list.release(h)
	return true
}

// Oldest returns the least-recently-used entry without touching recency
// order. It reports false when the cache is empty.
func (c *Cache[K, V]) Oldest() (K, V, bool) {
	h := c.list.back()
	if h == noHandle {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return c.list.nodes[h].key, c.list.nodes[h].value, true
}

// Keys returns the live keys in most- to least-recently-used order.
//
// This is a debug/teaching helper used by the demo and the tests.
func (c *Cache[K, V]) Keys() []K {
	out := make([]K, 0, len(c.index))
	for h := c.list.front(); h != noHandle && h != tailSentinel; h = c.list.nodes[h].next {
		out = append(out, c.list.nodes[h].key)
	}
	return out
}

// Len returns the number of live entries.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Cap returns the capacity the cache was constructed with.
func (c *Cache[K, V]) Cap() int {
	return c.capacity
}

// Purge drops every entry, oldest first, firing the evict callback for each.
func (c *Cache[K, V]) Purge() {
	for len(c.index) > 0 {
		c.evictOldest()
	}
}

// evictOldest drops the least-recently-used entry. It must not be called on
// an empty cache; eviction only triggers when the count exceeds capacity,
// and capacity is at least one.
func (c *Cache[K, V]) evictOldest() {
	h := c.list.back()
	if h == noHandle {
		return
	}
	key := c.list.nodes[h].key
	value := c.list.nodes[h].value
	delete(c.index, key)
	c.list.release(h)
	if c.onEvict != nil {
		c.onEvict(key, value)
	}
}

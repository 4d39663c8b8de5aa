// Package svgcache provides a small bounded key/value cache with
// least-recently-used eviction, safe for concurrent use.
//
// The lock covers only map and list bookkeeping; callers compute values
// outside the cache, so two goroutines filling different keys never
// serialize behind each other's work. Concurrent puts for the same key are
// allowed to race: the values a renderer stores are deterministic per key,
// so the duplicate computation is benign and the last write wins.
package svgcache

import (
	"container/list"
	"sync"
)

type entry[K comparable, V any] struct {
	key K
	val V
}

// Cache is a bounded map with approximate-recency eviction.
type Cache[K comparable, V any] struct {
	mu    sync.Mutex
	cap   int
	order *list.List // front = most recently used
	items map[K]*list.Element
}

// New returns an empty cache holding at most capacity entries. A
// non-positive capacity is treated as 1.
func New[K comparable, V any](capacity int) *Cache[K, V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[K, V]{
		cap:   capacity,
		order: list.New(),
		items: make(map[K]*list.Element, capacity),
	}
}

// Get returns the cached value for key, marking it recently used.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(entry[K, V]).val, true
}

// Put stores the value for key, evicting the least recently used entry if
// the cache is full.
func (c *Cache[K, V]) Put(key K, val V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if el, ok := c.items[key]; ok {
		el.Value = entry[K, V]{key, val}
		c.order.MoveToFront(el)
		return
	}
	if c.order.Len() >= c.cap {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.items, oldest.Value.(entry[K, V]).key)
	}
	c.items[key] = c.order.PushFront(entry[K, V]{key, val})
}

// Clear drops every entry. It is safe to call at any time; a cleared cache
// only costs future recomputes.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.order.Init()
	clear(c.items)
}

// Len reports the number of cached entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

package shaping

import (
	"container/list"
	"sync"
)

// DefaultCacheSize is the entry capacity of an engine's shape cache.
const DefaultCacheSize = 1024

// shapeCache is a mutex-guarded LRU map from input text to shaped result.
// It is purely an optimization: a miss and a hit for the same text yield
// identical results, a miss just pays the reshape/reorder cost again.
// Fallback results are cached too, mirroring the retry-free semantics of
// the shaping contract.
type shapeCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*list.Element
	order    *list.List // front = most recently used
}

type cacheEntry struct {
	key    string
	result Result
}

func newShapeCache(capacity int) *shapeCache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &shapeCache{
		capacity: capacity,
		entries:  make(map[string]*list.Element, capacity),
		order:    list.New(),
	}
}

// get returns the cached result for key and marks it most recently used.
func (c *shapeCache) get(key string) (Result, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return Result{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).result, true
}

// put stores a result, evicting the least recently used entry when full.
func (c *shapeCache) put(key string, result Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.entries[key]; ok {
		el.Value.(*cacheEntry).result = result
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		if oldest == nil {
			break
		}
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*cacheEntry).key)
	}

	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, result: result})
}

// len reports the current entry count.
func (c *shapeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

package cache

import (
	"container/list"
	"sync"
	"time"
)

type Config struct {
	MaxSize int
	TTL     time.Duration
}

// LRUCache is a size-bounded cache with optional expiry. Safe for
// concurrent use.
type LRUCache[K comparable, V any] struct {
	maxSize int
	ttl     time.Duration
	now     func() time.Time
	mu      sync.Mutex
	items   map[K]*list.Element
	order   *list.List
	hits    uint64
	misses  uint64
}

type cacheItem[K comparable, V any] struct {
	key       K
	value     V
	createdAt time.Time
}

func New[K comparable, V any](config Config) *LRUCache[K, V] {
	if config.MaxSize <= 0 {
		config.MaxSize = 100
	}

	return &LRUCache[K, V]{
		maxSize: config.MaxSize,
		ttl:     config.TTL,
		now:     time.Now,
		items:   make(map[K]*list.Element),
		order:   list.New(),
	}
}

func (c *LRUCache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero V
	element, ok := c.lookup(key)
	if !ok {
		c.misses++
		return zero, false
	}
	c.hits++
	c.order.MoveToFront(element)
	return element.Value.(*cacheItem[K, V]).value, true
}

func (c *LRUCache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value)
}

// SetIfAbsent stores value unless a live entry for key exists. It reports
// whether the value was stored.
func (c *LRUCache[K, V]) SetIfAbsent(key K, value V) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.lookup(key); ok {
		c.hits++
		c.order.MoveToFront(element)
		return false
	}
	c.misses++
	c.set(key, value)
	return true
}

func (c *LRUCache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if element, ok := c.items[key]; ok {
		c.removeElement(element)
	}
}

func (c *LRUCache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[K]*list.Element)
	c.order = list.New()
}

func (c *LRUCache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

type Stats struct {
	Size   int
	Hits   uint64
	Misses uint64
}

func (c *LRUCache[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{Size: len(c.items), Hits: c.hits, Misses: c.misses}
}

// CleanupExpired drops expired entries from the cold end of the list.
func (c *LRUCache[K, V]) CleanupExpired() int {
	if c.ttl <= 0 {
		return 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	removed := 0
	for element := c.order.Back(); element != nil; {
		prev := element.Prev()
		if now.Sub(element.Value.(*cacheItem[K, V]).createdAt) > c.ttl {
			c.removeElement(element)
			removed++
		}
		element = prev
	}
	return removed
}

func (c *LRUCache[K, V]) lookup(key K) (*list.Element, bool) {
	element, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if c.ttl > 0 && c.now().Sub(element.Value.(*cacheItem[K, V]).createdAt) > c.ttl {
		c.removeElement(element)
		return nil, false
	}
	return element, true
}

func (c *LRUCache[K, V]) set(key K, value V) {
	if element, ok := c.items[key]; ok {
		item := element.Value.(*cacheItem[K, V])
		item.value = value
		item.createdAt = c.now()
		c.order.MoveToFront(element)
		return
	}

	element := c.order.PushFront(&cacheItem[K, V]{key: key, value: value, createdAt: c.now()})
	c.items[key] = element
	if c.order.Len() > c.maxSize {
		c.removeElement(c.order.Back())
	}
}

func (c *LRUCache[K, V]) removeElement(element *list.Element) {
	item := element.Value.(*cacheItem[K, V])
	delete(c.items, item.key)
	c.order.Remove(element)
}

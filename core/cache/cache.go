package cache

import (
	"sync"
	"time"
)

// Cache is a simple thread-safe key-value store with optional TTL and tag
// invalidation. Used for in-process memoization (category name lookups during
// bulk imports); it is not a shared cache.
type Cache struct {
	m sync.Map
	// tagIndex maps tag -> set of keys carrying that tag
	tagIndex sync.Map // map[string]map[string]struct{}
}

var (
	once     sync.Once
	instance *Cache
)

func GetInstance() *Cache {
	once.Do(func() {
		instance = NewCache()
	})
	return instance
}

func NewCache() *Cache {
	return &Cache{}
}

type cacheItem struct {
	Value     interface{}
	ExpiresAt int64 // UnixNano; 0 means no expiration
}

// Set stores a value with an optional TTL in seconds (0 = no expiry) and
// optional tags for group invalidation.
func (c *Cache) Set(key string, value interface{}, ttl int64, tags []string) {
	var expiresAt int64
	if ttl > 0 {
		expiresAt = time.Now().Add(time.Duration(ttl) * time.Second).UnixNano()
	}
	c.m.Store(key, cacheItem{Value: value, ExpiresAt: expiresAt})
	for _, tag := range tags {
		set, _ := c.tagIndex.LoadOrStore(tag, &sync.Map{})
		set.(*sync.Map).Store(key, struct{}{})
	}
}

// Get returns (value, true) when present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	v, ok := c.m.Load(key)
	if !ok {
		return nil, false
	}
	item := v.(cacheItem)
	if item.ExpiresAt > 0 && time.Now().UnixNano() > item.ExpiresAt {
		c.m.Delete(key)
		return nil, false
	}
	return item.Value, true
}

// Delete removes a key.
func (c *Cache) Delete(key string) {
	c.m.Delete(key)
}

// InvalidateTag removes every key stored under the given tag.
func (c *Cache) InvalidateTag(tag string) {
	v, ok := c.tagIndex.Load(tag)
	if !ok {
		return
	}
	v.(*sync.Map).Range(func(key, _ interface{}) bool {
		c.m.Delete(key)
		return true
	})
	c.tagIndex.Delete(tag)
}

// Flush drops all entries and tag indexes.
func (c *Cache) Flush() {
	c.m.Range(func(key, _ interface{}) bool {
		c.m.Delete(key)
		return true
	})
	c.tagIndex.Range(func(tag, _ interface{}) bool {
		c.tagIndex.Delete(tag)
		return true
	})
}

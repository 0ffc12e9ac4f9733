package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

// Default TTL for memoized workspace clients. Inventory data is never
// cached here; entries are constructed client capabilities only.
const _TTL = time.Minute * 10

type Cache struct {
	cache *ristretto.Cache
}

func NewCache() (*Cache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,     // number of keys to track frequency of
		MaxCost:     1 << 10, // one cost unit per client, plenty of headroom
		BufferItems: 64,      // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}

	return &Cache{
		cache: cache,
	}, nil
}

func (c *Cache) Set(key interface{}, value interface{}) {
	c.cache.SetWithTTL(key, value, 1, _TTL)
}

func (c *Cache) SetWithTTL(key interface{}, value interface{}, ttl time.Duration) {
	c.cache.SetWithTTL(key, value, 1, ttl)
}

func (c *Cache) Get(key interface{}) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) Clear() {
	c.cache.Close()
}

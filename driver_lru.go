package microcompress

import (
	"github.com/hashicorp/golang-lru"
)

// DriverLRU is a driver implementation based on github.com/hashicorp/golang-lru
type DriverLRU struct {
	Cache *lru.Cache
}

// NewDriverLRU returns the default LRU driver configuration.
// size determines the number of compressed bodies in the cache.
// Memory usage should be considered when choosing the appropriate cache size.
// Roughly, memory = cacheSize * averageResponseSize / compression ratio
func NewDriverLRU(size int) DriverLRU {
	if size < 1 {
		size = 1
	}
	cache, _ := lru.New(size)
	return DriverLRU{cache}
}

func (c DriverLRU) Set(key string, compressed []byte) error {
	c.Cache.Add(key, compressed)
	return nil
}

func (c DriverLRU) Get(key string) (compressed []byte, found bool) {
	obj, success := c.Cache.Get(key)
	if success {
		compressed = obj.([]byte)
	}
	return compressed, success
}

func (c DriverLRU) Remove(key string) error {
	c.Cache.Remove(key)
	return nil
}

func (c DriverLRU) GetSize() int {
	return c.Cache.Len()
}

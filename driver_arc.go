package microcompress

import (
	"github.com/hashicorp/golang-lru"
)

// DriverARC is a driver implementation using github.com/hashicorp/golang-lru
// ARCCache is a thread-safe fixed size Adaptive Replacement Cache (ARC).
// It requires more ram and cpu than straight LRU but can be more efficient
// https://godoc.org/github.com/hashicorp/golang-lru#ARCCache
type DriverARC struct {
	Cache *lru.ARCCache
}

// NewDriverARC returns an ARC driver.
// size determines the number of compressed bodies in the cache.
// ARC caches have additional CPU and memory overhead when compared with LRU
func NewDriverARC(size int) DriverARC {
	// golang-lru segfaults when size is zero
	if size < 1 {
		size = 1
	}
	cache, _ := lru.NewARC(size)
	return DriverARC{cache}
}

func (c DriverARC) Set(key string, compressed []byte) error {
	c.Cache.Add(key, compressed)
	return nil
}

func (c DriverARC) Get(key string) (compressed []byte, found bool) {
	obj, success := c.Cache.Get(key)
	if success {
		compressed = obj.([]byte)
	}
	return compressed, success
}

func (c DriverARC) Remove(key string) error {
	c.Cache.Remove(key)
	return nil
}

func (c DriverARC) GetSize() int {
	return c.Cache.Len()
}

package microcompress

import (
	"github.com/dgraph-io/ristretto"
)

// DriverRistretto is a driver implementation using github.com/dgraph-io/ristretto
type DriverRistretto struct {
	Cache *ristretto.Cache
}

// bodyCost estimates the memory held by one cache entry.
func bodyCost(key string, compressed []byte) int64 {
	return int64(len(key)) + int64(cap(compressed))
}

// NewDriverRistretto returns the default Ristretto driver configuration.
// bodies should be the number of compressed bodies you expect to keep in the
// cache when full. Estimating this on the higher side is better.
// size determines the maximum number of bytes in the cache.
func NewDriverRistretto(bodies, size int64) DriverRistretto {
	if size == 0 {
		size = 1
	}
	if bodies == 0 {
		bodies = size
	}

	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: bodies * 10,
		MaxCost:     size,
		BufferItems: 64,
		Metrics:     true, // Required to implement Driver.GetSize()
	})
	if err != nil {
		panic(err)
	}

	return DriverRistretto{Cache: cache}
}

func (d DriverRistretto) Set(key string, compressed []byte) error {
	d.Cache.Set(key, compressed, bodyCost(key, compressed))
	return nil
}

func (d DriverRistretto) Get(key string) (compressed []byte, found bool) {
	obj, ok := d.Cache.Get(key)
	if ok && obj != nil {
		compressed = obj.([]byte)
	}
	return compressed, ok && compressed != nil
}

func (d DriverRistretto) Remove(key string) error {
	d.Cache.Del(key)
	return nil
}

func (d DriverRistretto) GetSize() int {
	return int(d.Cache.Metrics.KeysAdded() - d.Cache.Metrics.KeysEvicted())
}

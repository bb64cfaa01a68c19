package microcompress

import (
	"sync"
	"time"
)

// MonitorFunc turns a function into a Monitor
func MonitorFunc(interval time.Duration, logFunc func(Stats)) Monitor {
	return &monitorFunc{
		interval: interval,
		logFunc:  logFunc,
	}
}

type monitorFunc struct {
	interval         time.Duration
	logFunc          func(Stats)
	compressed       int
	compressedMutex  sync.Mutex
	passthrough      int
	passthroughMutex sync.Mutex
	cacheHits        int
	cacheHitMutex    sync.Mutex
	errors           int
	errorMutex       sync.Mutex
}

func (m *monitorFunc) GetInterval() time.Duration {
	return m.interval
}

func (m *monitorFunc) Log(stats Stats) {
	// compressed
	m.compressedMutex.Lock()
	stats.Compressed = m.compressed
	m.compressed = 0
	m.compressedMutex.Unlock()

	// passthrough
	m.passthroughMutex.Lock()
	stats.Passthrough = m.passthrough
	m.passthrough = 0
	m.passthroughMutex.Unlock()

	// cache hits
	m.cacheHitMutex.Lock()
	stats.CacheHits = m.cacheHits
	m.cacheHits = 0
	m.cacheHitMutex.Unlock()

	// errors
	m.errorMutex.Lock()
	stats.Errors = m.errors
	m.errors = 0
	m.errorMutex.Unlock()

	// log
	m.logFunc(stats)
}

func (m *monitorFunc) Compressed() {
	m.compressedMutex.Lock()
	m.compressed += 1
	m.compressedMutex.Unlock()
}

func (m *monitorFunc) Passthrough() {
	m.passthroughMutex.Lock()
	m.passthrough += 1
	m.passthroughMutex.Unlock()
}

func (m *monitorFunc) CacheHit() {
	m.cacheHitMutex.Lock()
	m.cacheHits += 1
	m.cacheHitMutex.Unlock()
}

func (m *monitorFunc) Error() {
	m.errorMutex.Lock()
	m.errors += 1
	m.errorMutex.Unlock()
}

package microcompress

import (
	"time"
)

// Stats is a snapshot of middleware activity since the previous report.
type Stats struct {
	// Size is the number of compressed bodies held by the cache driver
	Size        int
	Compressed  int
	Passthrough int
	CacheHits   int
	Errors      int
}

// Monitor is an interface for collecting metrics about the middleware
type Monitor interface {
	GetInterval() time.Duration
	Log(Stats)
	Compressed()
	Passthrough()
	CacheHit()
	Error()
}

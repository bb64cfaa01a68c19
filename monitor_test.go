package microcompress

import (
	"testing"
	"time"
)

// Counters should aggregate into Log and reset afterwards
func TestMonitor(t *testing.T) {
	var logged Stats
	testMonitor := MonitorFunc(100*time.Second, func(s Stats) {
		logged = s
	})
	testMonitor.Compressed()
	testMonitor.Compressed()
	testMonitor.Passthrough()
	testMonitor.CacheHit()
	testMonitor.Error()
	testMonitor.Log(Stats{Size: 7})
	if logged.Compressed != 2 || logged.Passthrough != 1 ||
		logged.CacheHits != 1 || logged.Errors != 1 || logged.Size != 7 {
		t.Fatalf("Monitor not logging correctly: %+v", logged)
	}
	logged = Stats{}
	testMonitor.Log(Stats{})
	if logged.Compressed != 0 || logged.Passthrough != 0 {
		t.Fatalf("Monitor counters should reset after Log: %+v", logged)
	}
}

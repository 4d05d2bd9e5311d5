package metrics

import (
	"sort"
	"time"
)

// Timings accumulates per-stage elapsed milliseconds across a run. The
// pipeline is single-threaded, so no locking is needed.
type Timings map[string]float64

// Track starts a timer for key and returns a stop function that records the
// elapsed time in milliseconds.
func (t Timings) Track(key string) func() {
	start := time.Now()
	return func() {
		t[key] = float64(time.Since(start).Microseconds()) / 1000.0
	}
}

// Keys returns the recorded stage keys in sorted order.
func (t Timings) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

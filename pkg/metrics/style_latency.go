// Package metrics keeps lightweight in-process measurements that the
// readiness endpoint reports.
package metrics

import (
	"sort"
	"sync"
	"time"
)

// =============================================================================
// Latency Tracker
// =============================================================================

// LatencyTracker keeps the most recent samples in a fixed ring and reports
// percentiles over them.
type LatencyTracker struct {
	mu       sync.Mutex
	ring     []time.Duration
	next     int
	full     bool
	total    int64
	failures int64
}

// NewLatencyTracker creates a tracker holding up to window samples.
func NewLatencyTracker(window int) *LatencyTracker {
	if window <= 0 {
		window = 500
	}
	return &LatencyTracker{ring: make([]time.Duration, window)}
}

// Record stores one call duration. failed marks calls that returned an error.
func (t *LatencyTracker) Record(d time.Duration, failed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.ring[t.next] = d
	t.next++
	if t.next == len(t.ring) {
		t.next = 0
		t.full = true
	}
	t.total++
	if failed {
		t.failures++
	}
}

// LatencyStats summarizes the current window.
type LatencyStats struct {
	Count    int64         `json:"count"`
	Failures int64         `json:"failures"`
	Samples  int           `json:"samples"`
	Avg      time.Duration `json:"avg"`
	P50      time.Duration `json:"p50"`
	P95      time.Duration `json:"p95"`
	P99      time.Duration `json:"p99"`
	Max      time.Duration `json:"max"`
}

// Stats returns a snapshot. The ring itself is never reordered.
func (t *LatencyTracker) Stats() LatencyStats {
	t.mu.Lock()
	n := t.next
	if t.full {
		n = len(t.ring)
	}
	samples := make([]time.Duration, n)
	copy(samples, t.ring[:n])
	stats := LatencyStats{Count: t.total, Failures: t.failures, Samples: n}
	t.mu.Unlock()

	if n == 0 {
		return stats
	}

	sort.Slice(samples, func(i, j int) bool { return samples[i] < samples[j] })

	var sum time.Duration
	for _, s := range samples {
		sum += s
	}
	stats.Avg = sum / time.Duration(n)
	stats.P50 = percentile(samples, 0.50)
	stats.P95 = percentile(samples, 0.95)
	stats.P99 = percentile(samples, 0.99)
	stats.Max = samples[n-1]
	return stats
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	return sorted[int(float64(len(sorted)-1)*p)]
}

// ToMap renders the stats in milliseconds.
func (s LatencyStats) ToMap() map[string]any {
	ms := func(d time.Duration) float64 { return float64(d.Microseconds()) / 1000 }
	return map[string]any{
		"count":    s.Count,
		"failures": s.Failures,
		"samples":  s.Samples,
		"avg_ms":   ms(s.Avg),
		"p50_ms":   ms(s.P50),
		"p95_ms":   ms(s.P95),
		"p99_ms":   ms(s.P99),
		"max_ms":   ms(s.Max),
	}
}

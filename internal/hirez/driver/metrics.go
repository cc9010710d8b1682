package driver

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Metrics tracks driver-wide progress and latency, independent of
// semantics (spec §4.4.3 notes the completion counter "does not alter
// semantics"). Grounded on the load-test histogram pattern in
// Amr-9-Sayl's internal/stats package.
type Metrics struct {
	completed int64

	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

// NewMetrics returns a Metrics tracking latency between 1µs and 30s at
// 3 significant figures.
func NewMetrics() *Metrics {
	return &Metrics{hist: hdrhistogram.New(1, 30_000_000, 3)}
}

// IncrementCompleted bumps the monotonic per-worker completion counter.
func (m *Metrics) IncrementCompleted() {
	atomic.AddInt64(&m.completed, 1)
}

// Completed returns the current completion count, for UI polling.
func (m *Metrics) Completed() int64 {
	return atomic.LoadInt64(&m.completed)
}

// RecordLatency records one fetch's duration in microseconds.
func (m *Metrics) RecordLatency(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_ = m.hist.RecordValue(d.Microseconds())
}

// LatencySnapshot is a point-in-time percentile summary, in microseconds.
type LatencySnapshot struct {
	P50, P90, P99 int64
	Count         int64
}

// Snapshot returns the current latency percentiles.
func (m *Metrics) Snapshot() LatencySnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return LatencySnapshot{
		P50:   m.hist.ValueAtQuantile(50),
		P90:   m.hist.ValueAtQuantile(90),
		P99:   m.hist.ValueAtQuantile(99),
		Count: m.hist.TotalCount(),
	}
}

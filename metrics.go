package sqrtgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    solveCounter   prometheus.Counter
//	    solveHistogram prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordSolve(duration time.Duration, err error) {
//	    p.solveCounter.Inc()
//	    // ... record error state, duration, etc.
//	}
type MetricsCollector interface {
	// RecordSolve is called after each single square-root computation.
	// duration is the total time taken, err is nil if successful.
	RecordSolve(duration time.Duration, err error)

	// RecordBatch is called after each batch computation.
	// count is the number of elements in the batch, duration is the total
	// time taken, err is nil if successful.
	RecordBatch(count int, duration time.Duration, err error)

	// RecordOffload is called after each offloaded (async) call, whether
	// single or batch. duration covers submission through completion.
	RecordOffload(duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordSolve(time.Duration, error)      {}
func (NoopMetricsCollector) RecordBatch(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordOffload(time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	SolveCount        atomic.Int64
	SolveErrors       atomic.Int64
	SolveTotalNanos   atomic.Int64
	BatchCount        atomic.Int64
	BatchItems        atomic.Int64
	BatchErrors       atomic.Int64
	BatchTotalNanos   atomic.Int64
	OffloadCount      atomic.Int64
	OffloadErrors     atomic.Int64
	OffloadTotalNanos atomic.Int64
}

// RecordSolve implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSolve(duration time.Duration, err error) {
	b.SolveCount.Add(1)
	b.SolveTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SolveErrors.Add(1)
	}
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(count int, duration time.Duration, err error) {
	b.BatchCount.Add(1)
	b.BatchItems.Add(int64(count))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BatchErrors.Add(1)
	}
}

// RecordOffload implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOffload(duration time.Duration, err error) {
	b.OffloadCount.Add(1)
	b.OffloadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OffloadErrors.Add(1)
	}
}

// AvgSolveDuration returns the mean duration of single computations, or 0
// if none were recorded.
func (b *BasicMetricsCollector) AvgSolveDuration() time.Duration {
	count := b.SolveCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(b.SolveTotalNanos.Load() / count)
}

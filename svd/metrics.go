// SPDX-License-Identifier: MIT

package svd

import (
	"sync/atomic"
	"time"
)

// MetricsCollector receives one record per Bidiagonalize and Decompose call.
// Implement it to feed a monitoring system; see examples/observability for a
// Prometheus-backed collector.
//
// Implementations must be safe for concurrent use: DecomposeAll calls them
// from several goroutines.
type MetricsCollector interface {
	// RecordBidiagonalize is called after each reduction to bidiagonal form.
	RecordBidiagonalize(rows, cols int, duration time.Duration, err error)

	// RecordDecompose is called after each full decomposition.
	// sweeps is the number of outer passes the iteration used.
	RecordDecompose(rows, cols, sweeps int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBidiagonalize(int, int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordDecompose(int, int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory counters.
type BasicMetricsCollector struct {
	BidiagCount       atomic.Int64
	BidiagErrors      atomic.Int64
	BidiagTotalNanos  atomic.Int64
	DecomposeCount    atomic.Int64
	DecomposeErrors   atomic.Int64
	DecomposeNanos    atomic.Int64
	DecomposeSweeps   atomic.Int64
	ConvergenceErrors atomic.Int64
}

// RecordBidiagonalize implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBidiagonalize(_, _ int, duration time.Duration, err error) {
	b.BidiagCount.Add(1)
	b.BidiagTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.BidiagErrors.Add(1)
	}
}

// RecordDecompose implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDecompose(_, _, sweeps int, duration time.Duration, err error) {
	b.DecomposeCount.Add(1)
	b.DecomposeNanos.Add(duration.Nanoseconds())
	b.DecomposeSweeps.Add(int64(sweeps))
	if err != nil {
		b.DecomposeErrors.Add(1)
		if isConvergence(err) {
			b.ConvergenceErrors.Add(1)
		}
	}
}

// BasicMetricsStats is a point-in-time copy of BasicMetricsCollector.
type BasicMetricsStats struct {
	BidiagCount       int64
	BidiagErrors      int64
	DecomposeCount    int64
	DecomposeErrors   int64
	ConvergenceErrors int64
	AvgSweeps         float64
	AvgDecomposeNanos int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		BidiagCount:       b.BidiagCount.Load(),
		BidiagErrors:      b.BidiagErrors.Load(),
		DecomposeCount:    b.DecomposeCount.Load(),
		DecomposeErrors:   b.DecomposeErrors.Load(),
		ConvergenceErrors: b.ConvergenceErrors.Load(),
	}
	if s.DecomposeCount > 0 {
		s.AvgSweeps = float64(b.DecomposeSweeps.Load()) / float64(s.DecomposeCount)
		s.AvgDecomposeNanos = b.DecomposeNanos.Load() / s.DecomposeCount
	}

	return s
}

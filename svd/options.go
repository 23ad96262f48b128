// SPDX-License-Identifier: MIT

// Package svd: functional configuration for Bidiagonalize, Decompose and
// DecomposeAll.
//
// Design goals:
//   - Default* constants are the single source of truth.
//   - Option constructors panic only on nonsensical values (programmer error);
//     runtime failures are always returned as errors.
//   - No global state: every call resolves its own Options.
package svd

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvsvd/matrix"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultTolerance is the absolute threshold below which a superdiagonal
	// entry of B is treated as zero during deflation.
	DefaultTolerance = matrix.MachineEpsilon * 1e6

	// DefaultSweepFactor bounds the iteration at DefaultSweepFactor·cols outer passes.
	DefaultSweepFactor = 30
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicToleranceInvalid   = "svd: WithTolerance: tol must be finite and >= 0"
	panicSweepFactorInvalid = "svd: WithSweepFactor: factor must be > 0"
	panicOrderInvalid       = "svd: WithOrder: order must be RowMajor or ColMajor"
)

// Option mutates internal options. Safe to apply repeatedly (last-writer-wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	tol         float64
	sweepFactor int
	order       matrix.Order
	orderSet    bool // false: inherit from a *matrix.Dense input, else matrix.DefaultOrder
	logger      *slog.Logger
	metrics     MetricsCollector
}

// WithTolerance sets the absolute deflation threshold for superdiagonal entries.
// Panics when tol is negative, NaN or infinite.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithSweepFactor sets the pass budget to factor·cols. Panics when factor <= 0.
func WithSweepFactor(factor int) Option {
	if factor <= 0 {
		panic(panicSweepFactorInvalid)
	}

	return func(o *Options) { o.sweepFactor = factor }
}

// WithOrder fixes the storage order of every returned matrix.
// Without it, a *matrix.Dense input passes its own order on.
func WithOrder(order matrix.Order) Option {
	if order != matrix.RowMajor && order != matrix.ColMajor {
		panic(panicOrderInvalid)
	}

	return func(o *Options) {
		o.order = order
		o.orderSet = true
	}
}

// WithLogger routes debug/warn records to l. A nil logger discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			l = discardLogger()
		}
		o.logger = l
	}
}

// WithMetrics installs a collector. A nil collector disables metrics.
func WithMetrics(m MetricsCollector) Option {
	return func(o *Options) {
		if m == nil {
			m = NoopMetricsCollector{}
		}
		o.metrics = m
	}
}

// discardLogger returns a logger whose handler drops every record.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(user ...Option) Options {
	o := Options{
		tol:         DefaultTolerance,
		sweepFactor: DefaultSweepFactor,
		order:       matrix.DefaultOrder,
		logger:      discardLogger(),
		metrics:     NoopMetricsCollector{},
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}

// orderFor resolves the output storage order for input a.
func (o Options) orderFor(a matrix.Matrix) matrix.Order {
	if o.orderSet {
		return o.order
	}
	if d, ok := a.(*matrix.Dense); ok {
		return d.Order()
	}

	return o.order
}

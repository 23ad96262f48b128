// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for dense construction and the
// numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Numeric policy: IEEE-754 special values propagate through arithmetic by
//     default. WithValidateNaNInf makes Set/Assign reject NaN/±Inf at the public
//     surface; internal kernels write straight into the buffer either way.
//   - Storage order is a construction-time property; views and clones inherit it.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOrder is the storage order used when no WithOrder option is given.
	DefaultOrder = RowMajor

	// DefaultValidateNaNInf toggles strict finite-value validation in Set/Assign.
	// Off by default: special values propagate per standard arithmetic rules.
	DefaultValidateNaNInf = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicOrderInvalid = "matrix: WithOrder: order must be RowMajor or ColMajor"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	order          Order // DefaultOrder
	validateNaNInf bool  // DefaultValidateNaNInf
}

// WithOrder selects the storage order of newly constructed matrices.
// Panics when o is neither RowMajor nor ColMajor.
//
// AI-Hints:
//   - ColMajor is handy when interoperating with column-oriented buffers
//     (Fortran/LAPACK layouts); the kernels are order-agnostic.
func WithOrder(o Order) Option {
	if o != RowMajor && o != ColMajor {
		panic(panicOrderInvalid)
	}

	return func(opts *Options) { opts.order = o }
}

// WithValidateNaNInf enables strict finite-value validation in Set/Assign.
// Complexity: O(1).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation (the default).
// Complexity: O(1).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves option setters against documented defaults.
// Stable for a given sequence of opts (last-writer-wins).
func NewMatrixOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// Order reports the resolved storage order.
func (o Options) Order() Order { return o.order }

// ValidateNaNInf reports whether the finite-value policy is enabled.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		order:          DefaultOrder,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o) // apply in order; last-writer-wins semantics
		}
	}

	return o
}

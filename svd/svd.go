// SPDX-License-Identifier: MIT

// Package svd - Golub–Kahan SVD driver.
//
// Purpose:
//   - Drive the bidiagonal B returned by Bidiagonalize to diagonal form with
//     implicit-shift QR steps, accumulating every rotation into U and V.
//
// Behavior highlights:
//   - Each outer pass: deflate small superdiagonal entries, locate the
//     trailing diagonal block (size q) and the unreduced block B22 = B[p:e, p:e]
//     (e = n−1−q), then either chase a zero diagonal entry of B22 out of the
//     block or run one Golub–Kahan step on it.
//   - The pass budget is sweepFactor·n; exceeding it returns *ConvergenceError.
//   - On exit every diagonal entry of S is made nonnegative by flipping the
//     matching column of V.
//
// AI-Hints:
//   - B22 is a View: rotations applied to it land directly in B.
//   - Singular values are not sorted; Result.Sorted does that on request.

package svd

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvsvd/matrix"
)

// Decompose computes the SVD of a (m×n, m >= n): Uᵗ·A·V = S.
// MAIN DESCRIPTION:
//   - Householder bidiagonalization followed by the Golub–Kahan iteration.
//
// Inputs:
//   - a: input matrix (never mutated).
//   - mode: Complete, Economy or Zero; recorded on the Result and honoured by
//     Result.Factors. U and V are always computed full-size.
//   - opts: WithTolerance, WithSweepFactor, WithOrder, WithLogger, WithMetrics.
//
// Returns:
//   - *Result with U (m×m), S (m×n, nonnegative diagonal), V (n×n).
//
// Errors:
//   - matrix.ErrNilMatrix, ErrWideMatrix (wraps matrix.ErrBadShape),
//     ErrUnknownMode, *ConvergenceError (matches ErrNoConvergence).
//
// Determinism:
//   - No randomness, fixed loop orders.
//
// Complexity:
//   - Time O(m²·n + n³) typical, Space O(m² + m·n + n²).
func Decompose(a matrix.Matrix, mode Mode, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	start := time.Now()
	rows, cols := shapeOf(a)

	res, sweeps, err := decompose(a, mode, o)
	o.metrics.RecordDecompose(rows, cols, sweeps, time.Since(start), err)
	if err != nil {
		if isConvergence(err) {
			o.logger.Warn("svd: no convergence", "rows", rows, "cols", cols, "sweeps", sweeps)
		}

		return nil, svdErrorf(opDecompose, err)
	}
	o.logger.Debug("svd: converged", "rows", rows, "cols", cols, "sweeps", sweeps)

	return res, nil
}

func decompose(a matrix.Matrix, mode Mode, o Options) (*Result, int, error) {
	if err := validateInput(a); err != nil {
		return nil, 0, err
	}
	if !mode.valid() {
		return nil, 0, fmt.Errorf("mode %d: %w", int(mode), ErrUnknownMode)
	}

	ubv, err := bidiagonalize(a, o)
	if err != nil {
		return nil, 0, err
	}

	it := &iteration{
		b:      ubv.B,
		u:      ubv.U,
		v:      ubv.V,
		n:      a.Cols(),
		tol:    o.tol,
		limit:  o.sweepFactor * a.Cols(),
		logger: o.logger,
	}
	if err = it.run(); err != nil {
		return nil, it.sweeps, err
	}
	if err = it.fixSigns(); err != nil {
		return nil, it.sweeps, err
	}

	return &Result{U: it.u, S: it.b, V: it.v, Mode: mode, Sweeps: it.sweeps}, it.sweeps, nil
}

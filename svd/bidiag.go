// SPDX-License-Identifier: MIT

// Package svd - Householder bidiagonalization.
//
// Purpose:
//   - Reduce a tall m×n matrix A (m >= n) to upper-bidiagonal B with
//     orthogonal U (m×m) and V (n×n) such that Uᵗ·A·V = B.
//
// AI-Hints:
//   - The input is never mutated; B starts as a copy of A.
//   - Reflectors are applied through View kernels, so each step costs
//     O((m−j)·(n−j)) for B and O((m−j)·m) for the U accumulator.

package svd

import (
	"fmt"
	"time"

	"github.com/katalvlaran/lvsvd/matrix"
)

// Bidiagonalize computes U, B, V with Uᵗ·A·V = B and B upper-bidiagonal.
// MAIN DESCRIPTION:
//   - Golub–Kahan Householder bidiagonalization.
//
// Implementation:
//   - Stage 1: validate (nil, m >= n); B ← copy(A), Uacc ← I_m, V ← I_n.
//   - Stage 2: for j = 0..n−1:
//     a) left reflector from B[j:m, j] applied to B[j:m, j:n] and to rows j:m
//     of Uacc (Uacc ← Pⱼ·Uacc). Runs for j <= n−2, and for j = n−1 when m > n
//     so the last column is reduced as well.
//     b) if j+1 <= n−2: right reflector from B[j, j+1:n] applied to
//     B[j:m, j+1:n] and to columns j+1:n of V.
//   - Stage 3: U ← Uaccᵗ.
//
// Behavior highlights:
//   - Entries annihilated by a reflector are stored as exact zeros.
//   - Output storage order: WithOrder, else the order of a *matrix.Dense input.
//
// Errors:
//   - matrix.ErrNilMatrix, ErrWideMatrix (wraps matrix.ErrBadShape).
//
// Determinism:
//   - Fixed loop orders; identical input gives identical bits.
//
// Complexity:
//   - Time O(m²·n + m·n²), Space O(m² + m·n + n²).
func Bidiagonalize(a matrix.Matrix, opts ...Option) (*BidiagResult, error) {
	o := gatherOptions(opts...)

	return bidiagonalize(a, o)
}

// bidiagonalize is Bidiagonalize with resolved options; it records metrics and logs.
func bidiagonalize(a matrix.Matrix, o Options) (*BidiagResult, error) {
	start := time.Now()
	rows, cols := shapeOf(a)
	res, err := reduce(a, o)
	o.metrics.RecordBidiagonalize(rows, cols, time.Since(start), err)
	if err != nil {
		return nil, svdErrorf(opBidiagonalize, err)
	}
	o.logger.Debug("svd: bidiagonalized", "rows", rows, "cols", cols)

	return res, nil
}

// validateInput runs the shared nil/shape checks.
func validateInput(a matrix.Matrix) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	if a.Rows() < a.Cols() {
		return fmt.Errorf("%dx%d: %w", a.Rows(), a.Cols(), ErrWideMatrix)
	}

	return nil
}

// shapeOf returns the dimensions of a, or zeros for nil input.
func shapeOf(a matrix.Matrix) (rows, cols int) {
	if matrix.ValidateNotNil(a) != nil {
		return 0, 0
	}

	return a.Rows(), a.Cols()
}

func reduce(a matrix.Matrix, o Options) (*BidiagResult, error) {
	if err := validateInput(a); err != nil {
		return nil, err
	}
	m, n := a.Rows(), a.Cols()
	order := matrix.WithOrder(o.orderFor(a))

	b, err := matrix.NewDense(m, n, order)
	if err != nil {
		return nil, err
	}
	if err = b.Overwrite(matrix.All(m), matrix.All(n), a); err != nil {
		return nil, err
	}
	uacc, err := matrix.NewIdentity(m, order)
	if err != nil {
		return nil, err
	}
	v, err := matrix.NewIdentity(n, order)
	if err != nil {
		return nil, err
	}

	for j := 0; j < n; j++ {
		if j <= n-2 || m > n {
			if err = reduceColumn(b, uacc, j); err != nil {
				return nil, fmt.Errorf("column %d: %w", j, err)
			}
		}
		if j+1 <= n-2 {
			if err = reduceRow(b, v, j); err != nil {
				return nil, fmt.Errorf("row %d: %w", j, err)
			}
		}
	}

	ut, err := matrix.Transpose(uacc)
	if err != nil {
		return nil, err
	}

	return &BidiagResult{U: ut.(*matrix.Dense), B: b, V: v}, nil
}

// reduceColumn zeroes B[j+1:m, j] with a left reflector and folds it into uacc.
func reduceColumn(b, uacc *matrix.Dense, j int) error {
	m, n := b.Rows(), b.Cols()
	x, err := b.Column(j, matrix.R(j, m-1))
	if err != nil {
		return err
	}
	h, err := House(x)
	if err != nil {
		return err
	}
	if h.Beta == 0 {
		return nil
	}
	blk, err := b.Select(matrix.R(j, m-1), matrix.R(j, n-1))
	if err != nil {
		return err
	}
	if err = h.ReflectLeft(blk); err != nil {
		return err
	}
	for i := j + 1; i < m; i++ {
		_ = b.Set(i, j, 0) // bounds hold by construction
	}
	acc, err := uacc.Select(matrix.R(j, m-1), matrix.All(m))
	if err != nil {
		return err
	}

	return h.ReflectLeft(acc)
}

// reduceRow zeroes B[j, j+2:n] with a right reflector and folds it into v.
func reduceRow(b, v *matrix.Dense, j int) error {
	m, n := b.Rows(), b.Cols()
	row, err := b.Row(j, matrix.R(j+1, n-1))
	if err != nil {
		return err
	}
	h, err := House(row.Transpose())
	if err != nil {
		return err
	}
	if h.Beta == 0 {
		return nil
	}
	blk, err := b.Select(matrix.R(j, m-1), matrix.R(j+1, n-1))
	if err != nil {
		return err
	}
	if err = h.ReflectRight(blk); err != nil {
		return err
	}
	for k := j + 2; k < n; k++ {
		_ = b.Set(j, k, 0)
	}
	acc, err := v.Select(matrix.All(n), matrix.R(j+1, n-1))
	if err != nil {
		return err
	}

	return h.ReflectRight(acc)
}

// SPDX-License-Identifier: MIT

// Package matrix - View: a non-owning rectangular window over a *Dense.
//
// Purpose:
//   - Address a sub-block of a Dense without copying; reads and writes pass
//     straight through to the base buffer.
//   - Host the vector kernels the decomposition code relies on: MulVec, VecMul,
//     AddOuter and the plane rotations. Each touches only the window.
//
// Behavior highlights:
//   - Nested Select composes offsets on the same base.
//   - Clone materializes a *Dense in the base's storage order.
//   - Kernels index the flat buffer directly (no per-element bounds checks)
//     after validating operand shapes once.
//
// Complexity quicksheet:
//   - At/Set/Select: O(1); MulVec/VecMul/AddOuter/Assign/Clone: O(h*w);
//     RotateRows: O(w); RotateCols: O(h).

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxAssign     = "Assign"
	ctxMulVec     = "MulVec"
	ctxVecMul     = "VecMul"
	ctxAddOuter   = "AddOuter"
	ctxRotateRows = "RotateRows"
	ctxRotateCols = "RotateCols"
)

// viewErrorf wraps err with the View method tag.
func viewErrorf(method string, err error) error {
	return fmt.Errorf("View.%s: %w", method, err)
}

// View is a window of r×c entries starting at (r0, c0) of base.
type View struct {
	base   *Dense
	r0, c0 int
	r, c   int
}

var (
	_ Matrix  = (*View)(nil)
	_ Rotator = (*View)(nil)
)

// Rows returns the window height.
func (v *View) Rows() int { return v.r }

// Cols returns the window width.
func (v *View) Cols() int { return v.c }

// Base returns the matrix the window aliases.
func (v *View) Base() *Dense { return v.base }

// Offset returns the top-left corner of the window in base coordinates.
func (v *View) Offset() (row, col int) { return v.r0, v.c0 }

// off maps window coordinates onto the base buffer. Indices must be valid.
func (v *View) off(i, j int) int { return v.base.off(v.r0+i, v.c0+j) }

// At reads (i, j) relative to the window.
// Errors: ErrOutOfRange outside the window.
func (v *View) At(i, j int) (float64, error) {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return 0, fmt.Errorf("View.%s(%d,%d): %w", ctxAt, i, j, ErrOutOfRange)
	}

	return v.base.data[v.off(i, j)], nil
}

// Set writes (i, j) relative to the window under the base's numeric policy.
// Errors: ErrOutOfRange outside the window; ErrNaNInf per policy.
func (v *View) Set(i, j int, x float64) error {
	if i < 0 || i >= v.r || j < 0 || j >= v.c {
		return fmt.Errorf("View.%s(%d,%d): %w", ctxSet, i, j, ErrOutOfRange)
	}
	if v.base.validateNaNInf && (math.IsNaN(x) || math.IsInf(x, 0)) {
		return fmt.Errorf("View.%s(%d,%d): %w", ctxSet, i, j, ErrNaNInf)
	}
	v.base.data[v.off(i, j)] = x

	return nil
}

// Clone copies the window into a new *Dense (same order and policy as base).
func (v *View) Clone() Matrix {
	out := newDenseLike(v.base, v.r, v.c)
	var i, j int
	for i = 0; i < v.r; i++ {
		for j = 0; j < v.c; j++ {
			out.data[out.off(i, j)] = v.base.data[v.off(i, j)]
		}
	}

	return out
}

// Select narrows the window; ranges are relative to this view.
// The result aliases the same base.
func (v *View) Select(rows, cols Range) (*View, error) {
	if err := rows.validate(v.r); err != nil {
		return nil, fmt.Errorf("View.%s(rows %v): %w", ctxSelect, rows, err)
	}
	if err := cols.validate(v.c); err != nil {
		return nil, fmt.Errorf("View.%s(cols %v): %w", ctxSelect, cols, err)
	}

	return &View{
		base: v.base,
		r0:   v.r0 + rows.First,
		c0:   v.c0 + cols.First,
		r:    rows.Len(),
		c:    cols.Len(),
	}, nil
}

// Assign copies src element-wise into the window.
// Errors: ErrNilMatrix; ErrDimensionMismatch when shapes differ.
//
// Notes:
//   - src must not overlap the window; Dense.Overwrite detaches same-base views first.
func (v *View) Assign(src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return viewErrorf(ctxAssign, err)
	}
	if src.Rows() != v.r || src.Cols() != v.c {
		return viewErrorf(ctxAssign, fmt.Errorf("%dx%d into %dx%d: %w", src.Rows(), src.Cols(), v.r, v.c, ErrDimensionMismatch))
	}
	var (
		i, j int
		x    float64
		err  error
	)
	for i = 0; i < v.r; i++ {
		for j = 0; j < v.c; j++ {
			if x, err = src.At(i, j); err != nil {
				return viewErrorf(ctxAssign, err)
			}
			if err = v.Set(i, j, x); err != nil {
				return viewErrorf(ctxAssign, err)
			}
		}
	}

	return nil
}

// Column copies rows[First..Last] of window column j.
func (v *View) Column(j int, rows Range) (*ColVector, error) {
	if j < 0 || j >= v.c {
		return nil, fmt.Errorf("View.%s(%d): %w", ctxColumn, j, ErrOutOfRange)
	}
	if err := rows.validate(v.r); err != nil {
		return nil, fmt.Errorf("View.%s(%d, %v): %w", ctxColumn, j, rows, err)
	}
	out := make([]float64, rows.Len())
	for i := rows.First; i <= rows.Last; i++ {
		out[i-rows.First] = v.base.data[v.off(i, j)]
	}

	return &ColVector{data: out}, nil
}

// Row copies cols[First..Last] of window row i.
func (v *View) Row(i int, cols Range) (*RowVector, error) {
	if i < 0 || i >= v.r {
		return nil, fmt.Errorf("View.%s(%d): %w", ctxRow, i, ErrOutOfRange)
	}
	if err := cols.validate(v.c); err != nil {
		return nil, fmt.Errorf("View.%s(%d, %v): %w", ctxRow, i, cols, err)
	}
	out := make([]float64, cols.Len())
	for j := cols.First; j <= cols.Last; j++ {
		out[j-cols.First] = v.base.data[v.off(i, j)]
	}

	return &RowVector{data: out}, nil
}

// MulVec returns y = A·x for the window A.
// MAIN DESCRIPTION:
//   - Matrix-vector product restricted to the window.
//
// Errors:
//   - ErrNilMatrix for nil x; ErrDimensionMismatch when x.Len() != Cols().
//
// Determinism:
//   - Row-by-row accumulation in ascending column order.
//
// Complexity:
//   - Time O(h*w), Space O(h).
func (v *View) MulVec(x *ColVector) (*ColVector, error) {
	if x == nil {
		return nil, viewErrorf(ctxMulVec, ErrNilMatrix)
	}
	if len(x.data) != v.c {
		return nil, viewErrorf(ctxMulVec, fmt.Errorf("len %d, cols %d: %w", len(x.data), v.c, ErrDimensionMismatch))
	}
	out := make([]float64, v.r)
	var (
		i, j int
		acc  float64
	)
	for i = 0; i < v.r; i++ {
		acc = ZeroSum
		for j = 0; j < v.c; j++ {
			acc += v.base.data[v.off(i, j)] * x.data[j]
		}
		out[i] = acc
	}

	return &ColVector{data: out}, nil
}

// VecMul returns w = xᵗ·A for the window A.
//
// Errors:
//   - ErrNilMatrix for nil x; ErrDimensionMismatch when x.Len() != Rows().
//
// Complexity:
//   - Time O(h*w), Space O(w).
func (v *View) VecMul(x *ColVector) (*RowVector, error) {
	if x == nil {
		return nil, viewErrorf(ctxVecMul, ErrNilMatrix)
	}
	if len(x.data) != v.r {
		return nil, viewErrorf(ctxVecMul, fmt.Errorf("len %d, rows %d: %w", len(x.data), v.r, ErrDimensionMismatch))
	}
	out := make([]float64, v.c)
	var (
		i, j int
		acc  float64
	)
	for j = 0; j < v.c; j++ {
		acc = ZeroSum
		for i = 0; i < v.r; i++ {
			acc += x.data[i] * v.base.data[v.off(i, j)]
		}
		out[j] = acc
	}

	return &RowVector{data: out}, nil
}

// AddOuter performs the rank-1 update A += alpha·x·y in place.
//
// Errors:
//   - ErrNilMatrix for nil operands.
//   - ErrDimensionMismatch when x.Len() != Rows() or y.Len() != Cols().
//
// Notes:
//   - Bypasses the NaN/Inf policy like every internal kernel.
//
// Complexity:
//   - Time O(h*w), Space O(1).
func (v *View) AddOuter(alpha float64, x *ColVector, y *RowVector) error {
	if x == nil || y == nil {
		return viewErrorf(ctxAddOuter, ErrNilMatrix)
	}
	if len(x.data) != v.r || len(y.data) != v.c {
		return viewErrorf(ctxAddOuter, fmt.Errorf("%dx%d outer into %dx%d: %w", len(x.data), len(y.data), v.r, v.c, ErrDimensionMismatch))
	}
	var (
		i, j int
		ax   float64
	)
	for i = 0; i < v.r; i++ {
		ax = alpha * x.data[i]
		if ax == 0 {
			continue
		}
		for j = 0; j < v.c; j++ {
			v.base.data[v.off(i, j)] += ax * y.data[j]
		}
	}

	return nil
}

// RotateRows applies (row_i, row_k) ← (c·row_i − s·row_k, s·row_i + c·row_k)
// across every window column.
// Errors: ErrOutOfRange when i or k is outside the window.
func (v *View) RotateRows(i, k int, c, s float64) error {
	if i < 0 || i >= v.r || k < 0 || k >= v.r {
		return fmt.Errorf("View.%s(%d,%d): %w", ctxRotateRows, i, k, ErrOutOfRange)
	}
	var (
		j, oi, ik int
		a, b      float64
	)
	for j = 0; j < v.c; j++ {
		oi, ik = v.off(i, j), v.off(k, j)
		a, b = v.base.data[oi], v.base.data[ik]
		v.base.data[oi] = c*a - s*b
		v.base.data[ik] = s*a + c*b
	}

	return nil
}

// RotateCols applies (col_i, col_k) ← (c·col_i − s·col_k, s·col_i + c·col_k)
// across every window row.
// Errors: ErrOutOfRange when i or k is outside the window.
func (v *View) RotateCols(i, k int, c, s float64) error {
	if i < 0 || i >= v.c || k < 0 || k >= v.c {
		return fmt.Errorf("View.%s(%d,%d): %w", ctxRotateCols, i, k, ErrOutOfRange)
	}
	var (
		r, oi, ik int
		a, b      float64
	)
	for r = 0; r < v.r; r++ {
		oi, ik = v.off(r, i), v.off(r, k)
		a, b = v.base.data[oi], v.base.data[ik]
		v.base.data[oi] = c*a - s*b
		v.base.data[ik] = s*a + c*b
	}

	return nil
}

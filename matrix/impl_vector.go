// SPDX-License-Identifier: MIT

// Package matrix - column and row vectors.
//
// Purpose:
//   - ColVector (m×1) and RowVector (1×n) are owning flat buffers that also satisfy
//     Matrix, so they compose with Mul/Transpose/AllClose.
//   - Slicing a vector always copies; only Dense windows alias.
//
// Complexity quicksheet:
//   - AtVec/SetVec: O(1); Slice/Transpose/Data: O(len); Dot/Norm: O(len).

package matrix

import (
	"fmt"
	"math"
)

const (
	ctxColVec = "ColVector"
	ctxRowVec = "RowVector"
)

// vecErrorf wraps err with the vector kind, method and index.
func vecErrorf(kind, method string, idx int, err error) error {
	return fmt.Errorf("%s.%s(%d): %w", kind, method, idx, err)
}

// ColVector is an m×1 column vector.
type ColVector struct {
	data []float64
}

// RowVector is a 1×n row vector.
type RowVector struct {
	data []float64
}

var (
	_ Matrix = (*ColVector)(nil)
	_ Matrix = (*RowVector)(nil)
)

// NewColVector returns a zero column vector of length n (n > 0), else ErrBadShape.
func NewColVector(n int) (*ColVector, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewColVector(%d): %w", n, ErrBadShape)
	}

	return &ColVector{data: make([]float64, n)}, nil
}

// NewColVectorFrom copies values into a new column vector; empty input is ErrBadShape.
func NewColVectorFrom(values []float64) (*ColVector, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewColVectorFrom: %w", ErrBadShape)
	}
	cp := make([]float64, len(values))
	copy(cp, values)

	return &ColVector{data: cp}, nil
}

// NewRowVector returns a zero row vector of length n (n > 0), else ErrBadShape.
func NewRowVector(n int) (*RowVector, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewRowVector(%d): %w", n, ErrBadShape)
	}

	return &RowVector{data: make([]float64, n)}, nil
}

// NewRowVectorFrom copies values into a new row vector; empty input is ErrBadShape.
func NewRowVectorFrom(values []float64) (*RowVector, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("NewRowVectorFrom: %w", ErrBadShape)
	}
	cp := make([]float64, len(values))
	copy(cp, values)

	return &RowVector{data: cp}, nil
}

// ---------- ColVector ----------

// Len returns the number of entries.
func (v *ColVector) Len() int { return len(v.data) }

// Rows returns Len().
func (v *ColVector) Rows() int { return len(v.data) }

// Cols is always 1.
func (v *ColVector) Cols() int { return 1 }

// AtVec returns entry i or ErrOutOfRange.
func (v *ColVector) AtVec(i int) (float64, error) {
	if i < 0 || i >= len(v.data) {
		return 0, vecErrorf(ctxColVec, ctxAt, i, ErrOutOfRange)
	}

	return v.data[i], nil
}

// SetVec stores x at entry i or returns ErrOutOfRange.
func (v *ColVector) SetVec(i int, x float64) error {
	if i < 0 || i >= len(v.data) {
		return vecErrorf(ctxColVec, ctxSet, i, ErrOutOfRange)
	}
	v.data[i] = x

	return nil
}

// At implements Matrix; j must be 0.
func (v *ColVector) At(i, j int) (float64, error) {
	if j != 0 {
		return 0, vecErrorf(ctxColVec, ctxAt, j, ErrOutOfRange)
	}

	return v.AtVec(i)
}

// Set implements Matrix; j must be 0.
func (v *ColVector) Set(i, j int, x float64) error {
	if j != 0 {
		return vecErrorf(ctxColVec, ctxSet, j, ErrOutOfRange)
	}

	return v.SetVec(i, x)
}

// Clone implements Matrix.
func (v *ColVector) Clone() Matrix { return &ColVector{data: v.Data()} }

// Data returns a copy of the entries.
func (v *ColVector) Data() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}

// Slice copies entries r.First..r.Last into a new ColVector.
func (v *ColVector) Slice(r Range) (*ColVector, error) {
	if err := r.validate(len(v.data)); err != nil {
		return nil, fmt.Errorf("%s.Slice(%v): %w", ctxColVec, r, err)
	}
	cp := make([]float64, r.Len())
	copy(cp, v.data[r.First:r.Last+1])

	return &ColVector{data: cp}, nil
}

// Transpose returns a RowVector with the same entries (copy).
func (v *ColVector) Transpose() *RowVector { return &RowVector{data: v.Data()} }

// Dot returns vᵗ·w; lengths must match (ErrDimensionMismatch).
func (v *ColVector) Dot(w *ColVector) (float64, error) {
	if w == nil {
		return 0, fmt.Errorf("%s.Dot: %w", ctxColVec, ErrNilMatrix)
	}
	if len(w.data) != len(v.data) {
		return 0, fmt.Errorf("%s.Dot: %d vs %d: %w", ctxColVec, len(v.data), len(w.data), ErrDimensionMismatch)
	}

	return dot(v.data, w.data), nil
}

// Norm returns the Euclidean norm.
func (v *ColVector) Norm() float64 { return math.Sqrt(dot(v.data, v.data)) }

// String renders the vector as a single bracketed column listing.
func (v *ColVector) String() string { return fmt.Sprintf("%v^T", v.data) }

// ---------- RowVector ----------

// Len returns the number of entries.
func (v *RowVector) Len() int { return len(v.data) }

// Rows is always 1.
func (v *RowVector) Rows() int { return 1 }

// Cols returns Len().
func (v *RowVector) Cols() int { return len(v.data) }

// AtVec returns entry j or ErrOutOfRange.
func (v *RowVector) AtVec(j int) (float64, error) {
	if j < 0 || j >= len(v.data) {
		return 0, vecErrorf(ctxRowVec, ctxAt, j, ErrOutOfRange)
	}

	return v.data[j], nil
}

// SetVec stores x at entry j or returns ErrOutOfRange.
func (v *RowVector) SetVec(j int, x float64) error {
	if j < 0 || j >= len(v.data) {
		return vecErrorf(ctxRowVec, ctxSet, j, ErrOutOfRange)
	}
	v.data[j] = x

	return nil
}

// At implements Matrix; i must be 0.
func (v *RowVector) At(i, j int) (float64, error) {
	if i != 0 {
		return 0, vecErrorf(ctxRowVec, ctxAt, i, ErrOutOfRange)
	}

	return v.AtVec(j)
}

// Set implements Matrix; i must be 0.
func (v *RowVector) Set(i, j int, x float64) error {
	if i != 0 {
		return vecErrorf(ctxRowVec, ctxSet, i, ErrOutOfRange)
	}

	return v.SetVec(j, x)
}

// Clone implements Matrix.
func (v *RowVector) Clone() Matrix { return &RowVector{data: v.Data()} }

// Data returns a copy of the entries.
func (v *RowVector) Data() []float64 {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return cp
}

// Slice copies entries r.First..r.Last into a new RowVector.
func (v *RowVector) Slice(r Range) (*RowVector, error) {
	if err := r.validate(len(v.data)); err != nil {
		return nil, fmt.Errorf("%s.Slice(%v): %w", ctxRowVec, r, err)
	}
	cp := make([]float64, r.Len())
	copy(cp, v.data[r.First:r.Last+1])

	return &RowVector{data: cp}, nil
}

// Transpose returns a ColVector with the same entries (copy).
func (v *RowVector) Transpose() *ColVector { return &ColVector{data: v.Data()} }

// Dot returns v·w; lengths must match (ErrDimensionMismatch).
func (v *RowVector) Dot(w *RowVector) (float64, error) {
	if w == nil {
		return 0, fmt.Errorf("%s.Dot: %w", ctxRowVec, ErrNilMatrix)
	}
	if len(w.data) != len(v.data) {
		return 0, fmt.Errorf("%s.Dot: %d vs %d: %w", ctxRowVec, len(v.data), len(w.data), ErrDimensionMismatch)
	}

	return dot(v.data, w.data), nil
}

// Norm returns the Euclidean norm.
func (v *RowVector) Norm() float64 { return math.Sqrt(dot(v.data, v.data)) }

// String renders the vector as a bracketed row.
func (v *RowVector) String() string { return fmt.Sprintf("%v", v.data) }

// dot is the shared inner product; callers guarantee equal lengths.
func dot(a, b []float64) float64 {
	s := ZeroSum
	for k := range a {
		s += a[k] * b[k]
	}

	return s
}

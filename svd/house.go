// SPDX-License-Identifier: MIT

// Package svd - Householder reflectors.
//
// Purpose:
//   - Build the reflector P = I − β·v·vᵗ that maps x onto a multiple of e₁.
//   - Apply P to a block from either side with two vector kernels
//     (one product plus one rank-1 update); P itself is never formed on the
//     hot path.
//
// Complexity quicksheet:
//   - House: O(m); ReflectLeft/ReflectRight: O(h*w); Matrix: O(m²).

package svd

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsvd/matrix"
)

// House computes the Householder vector and scale for x.
// MAIN DESCRIPTION:
//   - Returns (v, β) with v[0] = 1 such that (I − β·v·vᵗ)·x = ±‖x‖·e₁.
//
// Implementation:
//   - Stage 1: σ = Σ x[1:]².
//   - Stage 2: σ = 0 → β = 0 when x[0] >= 0, β = 2 when x[0] < 0 (v = e₁).
//   - Stage 3: μ = √(x[0]² + σ); v₀ = x[0] − μ when x[0] <= 0, otherwise the
//     cancellation-free form −σ/(x[0] + μ); β = 2·v₀²/(σ + v₀²); v ← v / v₀.
//
// Inputs:
//   - x: column vector of length m >= 1 (read only).
//
// Errors:
//   - matrix.ErrNilMatrix for a nil x.
//
// Notes:
//   - NaN/Inf in x propagate into v and β.
//
// Complexity:
//   - Time O(m), Space O(m).
func House(x *matrix.ColVector) (*Householder, error) {
	if x == nil {
		return nil, svdErrorf(opHouse, matrix.ErrNilMatrix)
	}
	v := x.Data()
	m := len(v)

	var sigma float64
	for k := 1; k < m; k++ {
		sigma += v[k] * v[k]
	}

	x0 := v[0]
	v[0] = 1
	var beta float64
	switch {
	case sigma == 0 && x0 >= 0:
		beta = 0
	case sigma == 0:
		beta = 2
	default:
		mu := math.Sqrt(x0*x0 + sigma)
		var v0 float64
		if x0 <= 0 {
			v0 = x0 - mu
		} else {
			v0 = -sigma / (x0 + mu)
		}
		beta = 2 * v0 * v0 / (sigma + v0*v0)
		for k := 1; k < m; k++ {
			v[k] /= v0
		}
	}

	cv, err := matrix.NewColVectorFrom(v)
	if err != nil {
		return nil, svdErrorf(opHouse, err)
	}

	return &Householder{V: cv, Beta: beta}, nil
}

// Matrix forms P = I − β·v·vᵗ explicitly. Meant for inspection and tests.
func (h *Householder) Matrix() (*matrix.Dense, error) {
	n := h.V.Len()
	p, err := matrix.NewIdentity(n)
	if err != nil {
		return nil, svdErrorf(opHouse, err)
	}
	if err = p.AddOuter(-h.Beta, h.V, h.V.Transpose()); err != nil {
		return nil, svdErrorf(opHouse, err)
	}

	return p, nil
}

// ReflectLeft applies A ← P·A = A − β·v·(vᵗ·A).
// Errors: matrix.ErrDimensionMismatch when a.Rows() != len(v).
func (h *Householder) ReflectLeft(a VectorOps) error {
	if h.Beta == 0 {
		return nil
	}
	w, err := a.VecMul(h.V)
	if err != nil {
		return fmt.Errorf("ReflectLeft: %w", err)
	}
	if err = a.AddOuter(-h.Beta, h.V, w); err != nil {
		return fmt.Errorf("ReflectLeft: %w", err)
	}

	return nil
}

// ReflectRight applies A ← A·P = A − β·(A·v)·vᵗ.
// Errors: matrix.ErrDimensionMismatch when a.Cols() != len(v).
func (h *Householder) ReflectRight(a VectorOps) error {
	if h.Beta == 0 {
		return nil
	}
	u, err := a.MulVec(h.V)
	if err != nil {
		return fmt.Errorf("ReflectRight: %w", err)
	}
	if err = a.AddOuter(-h.Beta, u, h.V.Transpose()); err != nil {
		return fmt.Errorf("ReflectRight: %w", err)
	}

	return nil
}

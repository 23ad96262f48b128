// SPDX-License-Identifier: MIT
// Package svd_test contains shared fixtures and property checks.
//
// Purpose:
//   • Deterministic inputs (literal fixtures and seeded random fills).
//   • Property helpers: orthonormality, reconstruction, bidiagonal shape.

package svd_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsvd/matrix"
	"github.com/katalvlaran/lvsvd/svd"
)

// Tolerances used across the package tests.
const (
	tolReconstruct = 1e-9
	tolOrtho       = 1e-10
	tolOffDiag     = 1e-12
)

// hide wraps a Matrix so the *matrix.Dense fast paths are not taken.
type hide struct{ matrix.Matrix }

// magic4 is the 4×4 magic square (rank 3).
func magic4(t *testing.T) *matrix.Dense {
	t.Helper()

	return mustFromRows(t, [][]float64{
		{16, 2, 3, 13},
		{5, 11, 10, 8},
		{9, 7, 6, 12},
		{4, 14, 15, 1},
	})
}

// tall53 is a 5×3 fixture with widely spread magnitudes.
func tall53(t *testing.T, opts ...matrix.Option) *matrix.Dense {
	t.Helper()

	return mustFromRows(t, [][]float64{
		{2, 2, 3},
		{9, 8, 1},
		{15, 100, 7},
		{99, 1, 2},
		{5, 7, 3},
	}, opts...)
}

func mustFromRows(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows, opts...)
	require.NoError(t, err)

	return m
}

// randDense returns an r×c matrix with deterministic U(-1,1) entries.
func randDense(t testing.TB, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			require.NoError(t, m.Set(i, j, rng.Float64()*2-1))
		}
	}

	return m
}

// MustDecompose runs Decompose and fails the test on error.
func MustDecompose(t *testing.T, a matrix.Matrix, mode svd.Mode, opts ...svd.Option) *svd.Result {
	t.Helper()
	res, err := svd.Decompose(a, mode, opts...)
	require.NoError(t, err)
	require.NotNil(t, res)

	return res
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

func mustMul(t *testing.T, a, b matrix.Matrix) matrix.Matrix {
	t.Helper()
	p, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return p
}

func mustT(t *testing.T, a matrix.Matrix) matrix.Matrix {
	t.Helper()
	p, err := matrix.Transpose(a)
	require.NoError(t, err)

	return p
}

// maxAbsDiff returns max |a[i,j] − b[i,j]| for same-shaped matrices.
func maxAbsDiff(t *testing.T, a, b matrix.Matrix) float64 {
	t.Helper()
	require.Equal(t, a.Rows(), b.Rows(), "rows")
	require.Equal(t, a.Cols(), b.Cols(), "cols")
	var worst float64
	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			worst = math.Max(worst, math.Abs(MustAt(t, a, i, j)-MustAt(t, b, i, j)))
		}
	}

	return worst
}

// propOrthonormal asserts Qᵗ·Q ≈ I.
func propOrthonormal(t *testing.T, q matrix.Matrix, tol float64) {
	t.Helper()
	qtq := mustMul(t, mustT(t, q), q)
	id, err := matrix.NewIdentity(q.Cols())
	require.NoError(t, err)
	require.LessOrEqual(t, maxAbsDiff(t, qtq, id), tol, "QᵗQ != I")
}

// propReconstruction asserts U·M·Vᵗ ≈ A (M is B or S).
func propReconstruction(t *testing.T, a, u, m, v matrix.Matrix, tol float64) {
	t.Helper()
	usv := mustMul(t, mustMul(t, u, m), mustT(t, v))
	require.LessOrEqual(t, maxAbsDiff(t, usv, a), tol, "U·M·Vᵗ != A")
}

// propBidiagonal asserts every entry outside the diagonal and first
// superdiagonal is exactly zero.
func propBidiagonal(t *testing.T, b matrix.Matrix) {
	t.Helper()
	var i, j int
	for i = 0; i < b.Rows(); i++ {
		for j = 0; j < b.Cols(); j++ {
			if j == i || j == i+1 {
				continue
			}
			require.Zerof(t, MustAt(t, b, i, j), "B[%d,%d]", i, j)
		}
	}
}

// propDiagonal asserts off-diagonal entries are within tol and the diagonal is >= 0.
func propDiagonal(t *testing.T, s matrix.Matrix, tol float64) {
	t.Helper()
	var i, j int
	for i = 0; i < s.Rows(); i++ {
		for j = 0; j < s.Cols(); j++ {
			x := MustAt(t, s, i, j)
			if i == j {
				require.GreaterOrEqualf(t, x, 0.0, "S[%d,%d]", i, j)
				continue
			}
			require.LessOrEqualf(t, math.Abs(x), tol, "S[%d,%d]", i, j)
		}
	}
}

// propSVD bundles the decomposition properties for res against a.
func propSVD(t *testing.T, a matrix.Matrix, res *svd.Result) {
	t.Helper()
	propOrthonormal(t, res.U, tolOrtho)
	propOrthonormal(t, res.V, tolOrtho)
	propDiagonal(t, res.S, tolOffDiag)
	propReconstruction(t, a, res.U, res.S, res.V, tolReconstruct)
}

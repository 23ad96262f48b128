// SPDX-License-Identifier: MIT
// Package matrix_test verifies the linear-algebra kernels on both the *Dense
// fast path and the interface fallback (hide{} wrapper), in both storage orders.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvsvd/matrix"
	"github.com/stretchr/testify/require"
)

var orders = []matrix.Order{matrix.RowMajor, matrix.ColMajor}

func TestAddSub(t *testing.T) {
	t.Parallel()
	for _, o := range orders {
		a := MustFromRows(t, [][]float64{{1, 2}, {3, 4}}, matrix.WithOrder(o))
		b := MustFromRows(t, [][]float64{{10, 20}, {30, 40}})

		sum, err := matrix.Add(a, b)
		require.NoError(t, err)
		CompareExact(t, [][]float64{{11, 22}, {33, 44}}, sum)

		diff, err := matrix.Sub(hide{a}, b)
		require.NoError(t, err)
		CompareExact(t, [][]float64{{-9, -18}, {-27, -36}}, diff)
	}

	_, err := matrix.Add(MustDense(t, 2, 2), MustDense(t, 2, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, MustDense(t, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestMul(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := MustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}}, matrix.WithOrder(matrix.ColMajor))
	want := [][]float64{{58, 64}, {139, 154}}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	CompareExact(t, want, fast)

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	CompareExact(t, want, slow)

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	var nilDense *matrix.Dense
	_, err = matrix.Mul(a, nilDense)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestTranspose(t *testing.T) {
	t.Parallel()
	for _, o := range orders {
		a := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, matrix.WithOrder(o))
		at, err := matrix.Transpose(a)
		require.NoError(t, err)
		CompareExact(t, [][]float64{{1, 4}, {2, 5}, {3, 6}}, at)
		require.Equal(t, o, at.(*matrix.Dense).Order())

		at2, err := matrix.Transpose(hide{a})
		require.NoError(t, err)
		require.True(t, matrix.Equal(at, at2))
	}
}

func TestScaleMatVec(t *testing.T) {
	t.Parallel()
	a := MustFromRows(t, [][]float64{{1, -2}, {0.5, 4}}, matrix.WithOrder(matrix.ColMajor))
	s, err := matrix.Scale(a, 2)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{2, -4}, {1, 8}}, s)

	s2, err := matrix.Scale(hide{a}, 2)
	require.NoError(t, err)
	require.True(t, matrix.Equal(s, s2))

	y, err := matrix.MatVec(a, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, []float64{-1, 4.5}, y)

	y2, err := matrix.MatVec(hide{a}, []float64{1, 1})
	require.NoError(t, err)
	require.Equal(t, y, y2)

	_, err = matrix.MatVec(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFacades(t *testing.T) {
	t.Parallel()
	I, err := matrix.NewIdentity(3, matrix.WithOrder(matrix.ColMajor))
	require.NoError(t, err)
	CompareExact(t, [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, I)

	_, err = matrix.NewIdentity(0)
	require.ErrorIs(t, err, matrix.ErrBadShape)

	z, err := matrix.NewZeros(2, 1)
	require.NoError(t, err)
	CompareExact(t, [][]float64{{0}, {0}}, z)

	rect := MustDense(t, 3, 2, matrix.WithOrder(matrix.ColMajor))
	il, err := matrix.IdentityLike(rect)
	require.NoError(t, err)
	require.Equal(t, matrix.ColMajor, il.Order())
	CompareExact(t, [][]float64{{1, 0}, {0, 1}, {0, 0}}, il)

	zl, err := matrix.ZerosLike(hide{rect})
	require.NoError(t, err)
	require.Equal(t, matrix.RowMajor, zl.Order())

	_, err = matrix.ZerosLike(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	require.Nil(t, matrix.CloneMatrix(nil))
	require.True(t, matrix.Equal(I, matrix.CloneMatrix(I)))
}

// U·Uᵗ for a rotation is the identity; a small property check for Mul+Transpose.
func TestMulTranspose_Orthogonal(t *testing.T) {
	t.Parallel()
	q := MustFromRows(t, [][]float64{{0.6, -0.8}, {0.8, 0.6}})
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	p, err := matrix.Mul(q, qt)
	require.NoError(t, err)
	I, err := matrix.NewIdentity(2)
	require.NoError(t, err)
	CompareClose(t, p, I, 0, 1e-15)
}

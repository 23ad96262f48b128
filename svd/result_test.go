package svd_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsvd/matrix"
	"github.com/katalvlaran/lvsvd/svd"
)

func TestResult_Factors(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name       string
		rows, cols int
		mode       svd.Mode
		uCols      int
		sRows      int
	}{
		{"complete tall", 5, 3, svd.Complete, 5, 5},
		{"economy tall", 5, 3, svd.Economy, 3, 3},
		{"zero tall", 5, 3, svd.Zero, 3, 3},
		{"zero square", 4, 4, svd.Zero, 4, 4},
		{"economy square", 4, 4, svd.Economy, 4, 4},
	}
	for k, tc := range cases {
		tc, seed := tc, int64(30+k)
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := randDense(t, tc.rows, tc.cols, seed)
			res := MustDecompose(t, a, tc.mode)
			u, s, v, err := res.Factors()
			require.NoError(t, err)

			require.Equal(t, tc.rows, u.Rows())
			require.Equal(t, tc.uCols, u.Cols())
			require.Equal(t, tc.sRows, s.Rows())
			require.Equal(t, tc.cols, s.Cols())
			require.Equal(t, tc.cols, v.Rows())
			require.Equal(t, tc.cols, v.Cols())

			// trimmed factors still reconstruct A
			propReconstruction(t, a, u, s, v, tolReconstruct)
			propOrthonormal(t, u, tolOrtho)

			// copies: writes do not reach the result
			require.NoError(t, u.Set(0, 0, 42))
			require.NotEqual(t, 42.0, MustAt(t, res.U, 0, 0))
		})
	}
}

func TestResult_Sorted(t *testing.T) {
	t.Parallel()
	a := randDense(t, 7, 5, 77)
	res := MustDecompose(t, a, svd.Complete)
	before := res.Values()

	sorted, err := res.Sorted()
	require.NoError(t, err)
	vals := sorted.Values()
	for i := 1; i < len(vals); i++ {
		require.GreaterOrEqual(t, vals[i-1], vals[i])
	}
	require.ElementsMatch(t, before, vals)
	require.Equal(t, before, res.Values(), "receiver changed")
	require.Equal(t, res.Sweeps, sorted.Sweeps)
	require.Equal(t, res.Mode, sorted.Mode)

	propSVD(t, a, sorted)
}

func TestResult_SortedStableOnTies(t *testing.T) {
	t.Parallel()
	// identity: all singular values are 1, nothing may move
	a, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	res := MustDecompose(t, a, svd.Complete)
	sorted, err := res.Sorted()
	require.NoError(t, err)
	require.Equal(t, res.U.RowMajorData(), sorted.U.RowMajorData())
	require.Equal(t, res.V.RowMajorData(), sorted.V.RowMajorData())
}

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvsvd/matrix"
	"github.com/stretchr/testify/require"
)

func TestOptions_Defaults(t *testing.T) {
	t.Parallel()
	o := matrix.NewMatrixOptions()
	require.Equal(t, matrix.DefaultOrder, o.Order())
	require.Equal(t, matrix.DefaultValidateNaNInf, o.ValidateNaNInf())
}

func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()
	o := matrix.NewMatrixOptions(
		matrix.WithValidateNaNInf(),
		matrix.WithOrder(matrix.ColMajor),
		nil,
		matrix.WithNoValidateNaNInf(),
	)
	require.Equal(t, matrix.ColMajor, o.Order())
	require.False(t, o.ValidateNaNInf())
}

func TestOptions_PanicOnBadOrder(t *testing.T) {
	t.Parallel()
	ExpectPanic(t, func() { _ = matrix.WithOrder(matrix.Order(7)) })
	require.Equal(t, "unknown-order", matrix.Order(7).String())
}

func TestValidators(t *testing.T) {
	t.Parallel()
	AssertErrorIs(t, matrix.ValidateNotNil(nil), matrix.ErrNilMatrix)
	AssertErrorIs(t, matrix.ValidateSquare(MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.ValidateTall(MustDense(t, 2, 3)), matrix.ErrBadShape)
	require.NoError(t, matrix.ValidateTall(MustDense(t, 3, 3)))
	AssertErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
	AssertErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
	require.NoError(t, matrix.ValidateBinarySameShape(MustDense(t, 2, 3), MustDense(t, 2, 3)))
}

// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column centering and the Frobenius norm: the preprocessing and error
//     measure used around a decomposition (center a data table, then judge a
//     reconstruction by ‖A − Â‖_F).
//
// Determinism & Performance:
//   - Fixed i→j traversal for all loops.
//   - *Dense inputs read their flat buffer through off(); other Matrix
//     implementations go through At.

package matrix

import "math"

const (
	opCenterColumns = "CenterColumns"
	opFrobeniusNorm = "FrobeniusNorm"
)

// CenterColumns subtracts the per-column mean from every element.
// Implementation:
//   - Stage 1: validate X (non-nil).
//   - Stage 2: column sums in one deterministic pass, divided by rows.
//   - Stage 3: a centered copy with X's order and numeric policy (*Dense input)
//     or the defaults (other inputs).
//
// Returns:
//   - *Dense: centered copy (r×c).
//   - []float64: column means (len c); add them back to un-center.
//
// Errors:
//   - ErrNilMatrix; wrapped At errors from the fallback path.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func CenterColumns(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	r, c := X.Rows(), X.Cols()
	out := resultFor(X, r, c)
	means := make([]float64, c)

	var (
		i, j int
		v    float64
		err  error
	)
	src, fast := X.(*Dense)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if fast {
				v = src.data[src.off(i, j)]
			} else if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opCenterColumns, err)
			}
			out.data[out.off(i, j)] = v
			means[j] += v
		}
	}

	invR := 1.0 / float64(r)
	for j = 0; j < c; j++ {
		means[j] *= invR
	}
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			out.data[out.off(i, j)] -= means[j]
		}
	}

	return out, means, nil
}

// FrobeniusNorm returns √(Σ X[i,j]²), scaled to avoid overflow and
// underflow for extreme magnitudes.
//
// Errors: ErrNilMatrix; wrapped At errors.
func FrobeniusNorm(X Matrix) (float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}

	var (
		scale    = NormZero
		ssq      = 1.0
		i, j     int
		v, ratio float64
		err      error
	)
	for i = 0; i < X.Rows(); i++ {
		for j = 0; j < X.Cols(); j++ {
			if v, err = X.At(i, j); err != nil {
				return 0, matrixErrorf(opFrobeniusNorm, err)
			}
			if v == 0 {
				continue
			}
			v = math.Abs(v)
			if scale < v {
				ratio = scale / v
				ssq = 1 + ssq*ratio*ratio
				scale = v
			} else {
				ratio = v / scale
				ssq += ratio * ratio
			}
		}
	}

	return scale * math.Sqrt(ssq), nil
}

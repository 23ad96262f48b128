// SPDX-License-Identifier: MIT

// Package matrix - floating-point tolerance utilities.
//
// Purpose:
//   - One place for every "is this small / are these equal" decision made by the
//     decomposition kernels and the tests: absolute zero tests, ULP-based
//     equality and the familiar allclose check.
//
// Behavior highlights:
//   - AlmostEqual treats two near-zero values as equal and a near-zero value as
//     unequal to anything that is not near zero; otherwise it compares sign bits
//     and then the distance in units in the last place (ULPs).
//   - AllClose checks |a−b| <= atol + rtol·|b| element-wise (numpy semantics).
//
// Complexity quicksheet:
//   - Scalar helpers: O(1); AllAlmostEqual/AllClose: O(r*c).

package matrix

import (
	"fmt"
	"math"
)

const (
	// MachineEpsilon is the spacing of float64 values around 1.0 (2⁻⁵²).
	MachineEpsilon = 0x1p-52

	// DefaultMaxULPs bounds the ULP distance accepted by AlmostEqual.
	DefaultMaxULPs = 10

	// DefaultZeroFactor scales MachineEpsilon into the AlmostZero threshold.
	DefaultZeroFactor = 2.0
)

// AlmostZero reports |x| <= MachineEpsilon·DefaultZeroFactor.
func AlmostZero(x float64) bool {
	return AlmostZeroTol(x, MachineEpsilon*DefaultZeroFactor)
}

// AlmostZeroTol reports |x| <= tol.
func AlmostZeroTol(x, tol float64) bool {
	return math.Abs(x) <= tol
}

// ULPDistance returns the number of representable float64 values between a
// and b. Both must share a sign bit for the result to be meaningful.
func ULPDistance(a, b float64) uint64 {
	ua, ub := math.Float64bits(a), math.Float64bits(b)
	if ua > ub {
		return ua - ub
	}

	return ub - ua
}

// AlmostEqual compares a and b with DefaultMaxULPs and the AlmostZero threshold.
func AlmostEqual(a, b float64) bool {
	return AlmostEqualULPs(a, b, DefaultMaxULPs, MachineEpsilon*DefaultZeroFactor)
}

// AlmostEqualULPs is the parameterized form of AlmostEqual.
// Implementation:
//   - Stage 1: both |a|,|b| <= zeroTol → true; exactly one → false.
//   - Stage 2: differing sign bits → a == b (only ±0 can match, handled above).
//   - Stage 3: ULPDistance(a, b) <= maxULPs.
//
// Notes:
//   - NaN never compares equal.
func AlmostEqualULPs(a, b float64, maxULPs uint64, zeroTol float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	za, zb := AlmostZeroTol(a, zeroTol), AlmostZeroTol(b, zeroTol)
	if za && zb {
		return true
	}
	if za != zb {
		return false
	}
	if math.Signbit(a) != math.Signbit(b) {
		return a == b
	}

	return ULPDistance(a, b) <= maxULPs
}

// Equal reports exact element-wise equality (==) of two same-shaped matrices.
// Nil or differently shaped operands compare unequal.
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false
			}
			if bv, err = b.At(i, j); err != nil {
				return false
			}
			if av != bv {
				return false
			}
		}
	}

	return true
}

// AllAlmostEqual applies AlmostEqual element-wise.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func AllAlmostEqual(a, b Matrix) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllAlmost, err)
	}
	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllAlmost, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllAlmost, err)
			}
			if !AlmostEqual(av, bv) {
				return false, nil
			}
		}
	}

	return true, nil
}

// AllClose reports whether |a(i,j) − b(i,j)| <= atol + rtol·|b(i,j)| everywhere.
// Negative tolerances are taken by absolute value.
//
// Errors:
//   - ErrNaNInf for non-finite tolerances.
//   - ErrNilMatrix, ErrDimensionMismatch for bad operands.
//
// Complexity: O(r*c), early exit on the first violation.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, fmt.Errorf("rtol=%g atol=%g: %w", rtol, atol, ErrNaNInf))
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	var (
		i, j   int
		av, bv float64
		err    error
	)
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf(opAllClose, err)
			}
			if !(math.Abs(av-bv) <= atol+rtol*math.Abs(bv)) {
				return false, nil
			}
		}
	}

	return true, nil
}

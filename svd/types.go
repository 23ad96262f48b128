// SPDX-License-Identifier: MIT

package svd

import "github.com/katalvlaran/lvsvd/matrix"

// Mode states which factor shapes a caller intends to consume.
// Decompose always computes full square U and V; Factors trims per mode.
type Mode int

const (
	// Complete keeps U m×m, S m×n, V n×n.
	Complete Mode = iota

	// Economy keeps U m×n, S n×n, V n×n.
	Economy

	// Zero behaves as Economy when rows > cols and as Complete otherwise.
	Zero
)

// String returns the mode name.
func (md Mode) String() string {
	switch md {
	case Complete:
		return "complete"
	case Economy:
		return "economy"
	case Zero:
		return "zero"
	default:
		return "unknown"
	}
}

func (md Mode) valid() bool { return md == Complete || md == Economy || md == Zero }

// Householder holds a reflector P = I − Beta·V·Vᵗ with V[0] == 1.
type Householder struct {
	V    *matrix.ColVector
	Beta float64
}

// Givens is a plane rotation acting on indices I and K.
// Applied to a pair (a, b) it produces (C·a − S·b, S·a + C·b).
type Givens struct {
	I, K int
	C, S float64
}

// VectorOps is the kernel set a reflector needs from its target.
// *matrix.Dense and *matrix.View implement it.
type VectorOps interface {
	Rows() int
	Cols() int
	MulVec(x *matrix.ColVector) (*matrix.ColVector, error)
	VecMul(x *matrix.ColVector) (*matrix.RowVector, error)
	AddOuter(alpha float64, x *matrix.ColVector, y *matrix.RowVector) error
}

// BidiagResult holds U (m×m), B (m×n upper-bidiagonal) and V (n×n) with Uᵗ·A·V = B.
type BidiagResult struct {
	U, B, V *matrix.Dense
}

// Result holds U (m×m), S (m×n diagonal, nonnegative) and V (n×n) with Uᵗ·A·V = S.
//
// Singular values appear on the diagonal of S in the order the iteration
// produced them; call Sorted for descending order.
type Result struct {
	U, S, V *matrix.Dense
	Mode    Mode
	Sweeps  int // outer passes used by the iteration
}

var (
	_ VectorOps = (*matrix.Dense)(nil)
	_ VectorOps = (*matrix.View)(nil)
)

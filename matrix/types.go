// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense store, the view layer and
// the decomposition kernels built on top of them. Errors and options live in
// dedicated files (errors.go, options.go) per the package conventions.
package matrix

// Order selects how a Dense maps (row, col) onto its flat buffer.
// The order is fixed at construction and preserved by Clone.
type Order int

const (
	// RowMajor stores rows contiguously: offset = i*cols + j.
	RowMajor Order = iota

	// ColMajor stores columns contiguously: offset = j*rows + i.
	ColMajor
)

// String returns a short label for logs and test names.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case ColMajor:
		return "col-major"
	default:
		return "unknown-order"
	}
}

// Matrix represents a two-dimensional mutable array of float64 values.
// It is the capability set every concrete dense representation provides;
// the decomposition kernels accept it and fast-path on *Dense.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}

// Rotator is implemented by containers that can apply a plane rotation in place.
//
// RotateRows updates rows i and k across every column j:
//
//	(row_i[j], row_k[j]) ← (c·row_i[j] − s·row_k[j], s·row_i[j] + c·row_k[j])
//
// RotateCols is the column analogue. Both return ErrOutOfRange when i or k
// exceed the relevant extent.
type Rotator interface {
	RotateRows(i, k int, c, s float64) error
	RotateCols(i, k int, c, s float64) error
}

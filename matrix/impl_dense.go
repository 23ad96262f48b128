// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row- or column-major) & safe accessors.
//
// Purpose:
//   - Provide a flat buffer with an explicit index formula chosen at construction:
//     row-major i*cols + j, column-major j*rows + i.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support no-copy windows (View/Select) and copy-based extraction (Column/Row).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Prefer fast-paths on *Dense in hot algebra (see impl_linear_algebra.go): operate on
//     the flat data slice through off(i,j).
//   - Use Select(rows, cols) / View(r0,c0,h,w) to avoid copies for windows; mutations
//     reflect in the base matrix.
//   - Use Column/Row to materialize a vector slice (copy) with an independent lifetime.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); View/Select: O(1);
//     Column/Row: O(len); Overwrite: O(h*w).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxView      = "View"      // ctor tag for Dense.View
	ctxSelect    = "Select"    // ctor tag for Dense.Select / View.Select
	ctxColumn    = "Column"    // copy-out of a column slice
	ctxRow       = "Row"       // copy-out of a row slice
	ctxOverwrite = "Overwrite" // element-wise copy into a window
	ctxNewFrom   = "NewDenseFrom"
	ctxFromRows  = "FromRows"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// MAIN DESCRIPTION:
//   - Attach method context and coordinates to a sentinel error for diagnostics.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates
//   - err: sentinel (e.g., ErrOutOfRange, ErrNaNInf)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete matrix over a flat float64 buffer.
//   - r,c hold dimensions (rows, cols).
//   - order selects the index formula (see off).
//   - data is a flat buffer of length r*c.
//   - validateNaNInf enables optional NaN/Inf rejection in Set (policy default from options.go).
type Dense struct {
	r, c           int       // row and column counts (>0)
	order          Order     // storage order fixed at construction
	data           []float64 // contiguous storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ Rotator      = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and resolved options.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrBadShape.
//   - Stage 2: resolve options (order, numeric policy).
//   - Stage 3: allocate zero-filled buffer.
//
// Behavior highlights:
//   - No panics on user errors; returns sentinel errors.
//   - Public constructor forbids empty dimensions to avoid accidental 0×0 matrices.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//   - opts: WithOrder / WithValidateNaNInf / WithNoValidateNaNInf.
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrBadShape (shape contract violation).
//
// Determinism:
//   - Fixed zero initialization; no randomness.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return newDense(rows, cols, gatherOptions(opts...)), nil
}

// newDense allocates with already-resolved options. Shape must be validated by the caller.
func newDense(rows, cols int, o Options) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		order:          o.order,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}
}

// newDenseLike allocates a zero rows×cols matrix that inherits order and policy from m.
func newDenseLike(m *Dense, rows, cols int) *Dense {
	return &Dense{
		r:              rows,
		c:              cols,
		order:          m.order,
		data:           make([]float64, rows*cols),
		validateNaNInf: m.validateNaNInf,
	}
}

// NewDenseFrom copies data into a new rows×cols matrix. The flat slice is read
// in the storage order selected by opts (row-major unless WithOrder(ColMajor)).
//
// Errors:
//   - ErrBadShape when rows/cols are non-positive or len(data) != rows*cols.
//   - ErrNaNInf when the finite-value policy is on and data holds NaN/±Inf.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return nil, fmt.Errorf("%s(%d,%d,len=%d): %w", ctxNewFrom, rows, cols, len(data), ErrBadShape)
	}
	o := gatherOptions(opts...)
	if o.validateNaNInf {
		for k, v := range data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: data[%d]: %w", ctxNewFrom, k, ErrNaNInf)
			}
		}
	}
	m := newDense(rows, cols, o)
	copy(m.data, data)

	return m, nil
}

// FromRows builds a matrix from a row literal. Values are copied.
//
// Errors:
//   - ErrBadShape for an empty literal, an empty first row or ragged rows.
//   - ErrNaNInf per the numeric policy.
//
// AI-Hints:
//   - The literal is always read row by row; WithOrder only changes the layout
//     of the produced buffer.
func FromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%s: %w", ctxFromRows, ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	m := newDense(r, c, gatherOptions(opts...))
	var i, j int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("%s: %w", ctxFromRows, err)
			}
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Order reports the storage order fixed at construction.
func (m *Dense) Order() Order { return m.order }

// off maps (row, col) onto the flat buffer. Indices must be valid.
func (m *Dense) off(row, col int) int {
	if m.order == ColMajor {
		return col*m.r + row
	}

	return row*m.c + col
}

// indexOf computes the flat offset or returns ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Bounds-check (row,col) and compute the flat offset for the storage order.
//
// Behavior highlights:
//   - Returns a bare sentinel; public methods (At/Set) wrap with coordinates.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	return m.off(row, col), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when out of bounds (wrapped as "Dense.At(i,j): ...").
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// MAIN DESCRIPTION:
//   - Safe element write with optional finite-only policy.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for rejected values.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Policy flag is carried by Clone and by every window over this matrix.
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Clone returns a deep copy (new buffer, same order and numeric policy).
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.cloneDense()
}

// cloneDense is Clone with the concrete type preserved for internal callers.
func (m *Dense) cloneDense() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		order:          m.order,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// Copy returns a deep copy typed as *Dense.
// Equivalent to Clone without the interface conversion.
func (m *Dense) Copy() *Dense { return m.cloneDense() }

// RowMajorData returns a row-major copy of the buffer regardless of storage order.
// Complexity: O(r*c).
func (m *Dense) RowMajorData() []float64 {
	out := make([]float64, m.r*m.c)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out[i*m.c+j] = m.data[m.off(i, j)]
		}
	}

	return out
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Implementation:
//   - Stage 1: iterate rows/cols deterministically.
//   - Stage 2: write values into strings.Builder with standard delimiters.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
//
// AI-Hints:
//   - For large matrices prefer printing a few rows/cols or summarize.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[m.off(i, j)]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// View creates a no-copy window [r0:r0+rows, c0:c0+cols) over the same storage.
// MAIN DESCRIPTION:
//   - Lightweight submatrix referencing the base buffer (shared storage).
//
// Implementation:
//   - Stage 1: validate window bounds (non-empty, inside the matrix).
//   - Stage 2: return *View with offsets.
//
// Behavior highlights:
//   - Writes via the view reflect in the base; policy is inherited.
//
// Errors:
//   - ErrOutOfRange when the window is empty or exceeds the matrix.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Select is the Range-based form of the same window.
func (m *Dense) View(r0, c0, rows, cols int) (*View, error) {
	if r0 < 0 || c0 < 0 || rows <= 0 || cols <= 0 || r0+rows > m.r || c0+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxView, r0, c0, rows, cols, ErrOutOfRange)
	}

	return &View{base: m, r0: r0, c0: c0, r: rows, c: cols}, nil
}

// Select returns an aliasing window over the closed row and column ranges.
// Errors: ErrOutOfRange when either range is empty or exceeds the matrix.
// Complexity: O(1).
func (m *Dense) Select(rows, cols Range) (*View, error) {
	if err := rows.validate(m.r); err != nil {
		return nil, fmt.Errorf("Dense.%s(rows %v): %w", ctxSelect, rows, err)
	}
	if err := cols.validate(m.c); err != nil {
		return nil, fmt.Errorf("Dense.%s(cols %v): %w", ctxSelect, cols, err)
	}

	return &View{base: m, r0: rows.First, c0: cols.First, r: rows.Len(), c: cols.Len()}, nil
}

// full returns a window covering the whole matrix.
func (m *Dense) full() *View {
	return &View{base: m, r: m.r, c: m.c}
}

// Column copies rows[First..Last] of column j into a new ColVector.
// Errors: ErrOutOfRange for an invalid column or range.
// Complexity: O(rows.Len()).
func (m *Dense) Column(j int, rows Range) (*ColVector, error) {
	v, err := m.full().Column(j, rows)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxColumn, j, err)
	}

	return v, nil
}

// Row copies cols[First..Last] of row i into a new RowVector.
// Errors: ErrOutOfRange for an invalid row or range.
// Complexity: O(cols.Len()).
func (m *Dense) Row(i int, cols Range) (*RowVector, error) {
	v, err := m.full().Row(i, cols)
	if err != nil {
		return nil, fmt.Errorf("Dense.%s(%d): %w", ctxRow, i, err)
	}

	return v, nil
}

// Overwrite copies src element-wise into the window selected by rows and cols.
// MAIN DESCRIPTION:
//   - Sub-block assignment without aliasing: src is read fully before any write
//     when it shares storage with m.
//
// Errors:
//   - ErrNilMatrix for nil src.
//   - ErrOutOfRange for invalid ranges.
//   - ErrDimensionMismatch when src extents differ from the window.
//
// Complexity: O(h*w).
func (m *Dense) Overwrite(rows, cols Range, src Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxOverwrite, err)
	}
	w, err := m.Select(rows, cols)
	if err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxOverwrite, err)
	}
	if v, ok := src.(*View); ok && v.base == m {
		src = v.Clone() // detach overlapping windows
	}
	if err = w.Assign(src); err != nil {
		return fmt.Errorf("Dense.%s: %w", ctxOverwrite, err)
	}

	return nil
}

// MulVec returns A·x. See View.MulVec.
func (m *Dense) MulVec(x *ColVector) (*ColVector, error) { return m.full().MulVec(x) }

// VecMul returns xᵗ·A. See View.VecMul.
func (m *Dense) VecMul(x *ColVector) (*RowVector, error) { return m.full().VecMul(x) }

// AddOuter performs A += alpha·x·y in place. See View.AddOuter.
func (m *Dense) AddOuter(alpha float64, x *ColVector, y *RowVector) error {
	return m.full().AddOuter(alpha, x, y)
}

// RotateRows applies a plane rotation to rows i and k. See Rotator.
func (m *Dense) RotateRows(i, k int, c, s float64) error { return m.full().RotateRows(i, k, c, s) }

// RotateCols applies a plane rotation to columns i and k. See Rotator.
func (m *Dense) RotateCols(i, k int, c, s float64) error { return m.full().RotateCols(i, k, c, s) }

// Diagonal returns a copy of the main diagonal (length min(r,c)).
func (m *Dense) Diagonal() []float64 {
	n := m.r
	if m.c < n {
		n = m.c
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = m.data[m.off(i, i)]
	}

	return out
}

// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin, well-documented entry points for common constructors.
//   - Avoid logic duplication; each facade delegates to the canonical implementation.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock fast-paths in kernels (flat-slice loops).
//   - ZerosLike/IdentityLike inherit storage order and numeric policy from a *Dense prototype.

package matrix

// NewZeros returns a new zero-initialized *Dense of size rows×cols.
// It is a thin alias of NewDense with an intention-revealing name.
// Note: Returns (*Dense, error) to surface ErrBadShape.
func NewZeros(rows, cols int, opts ...Option) (*Dense, error) {
	return NewDense(rows, cols, opts...)
}

// NewIdentity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2) zeroing (constructor) + O(n) writes on the diagonal.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	setIdentity(I)

	return I, nil
}

// setIdentity writes ones on the main diagonal of a zero matrix.
func setIdentity(m *Dense) {
	n := m.r
	if m.c < n {
		n = m.c
	}
	for i := 0; i < n; i++ {
		m.data[m.off(i, i)] = 1.0
	}
}

// CloneMatrix returns a structural clone of m (same type if m is *Dense).
// Thin wrapper over Matrix.Clone for API discoverability.
func CloneMatrix(m Matrix) Matrix {
	if ValidateNotNil(m) != nil {
		return nil
	}

	return m.Clone()
}

// ZerosLike returns a zero matrix with the shape of m.
// Errors: ErrNilMatrix.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return resultFor(m, m.Rows(), m.Cols()), nil
}

// IdentityLike returns a Rows()×Cols() matrix with ones on the main diagonal.
// Errors: ErrNilMatrix.
func IdentityLike(m Matrix) (*Dense, error) {
	z, err := ZerosLike(m)
	if err != nil {
		return nil, err
	}
	setIdentity(z)

	return z, nil
}

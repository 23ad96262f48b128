// Package matrix offers the dense containers and kernels the SVD code is built on.
//
// The matrix package provides:
//
//   - Dense, a flat float64 store in row- or column-major order with
//     bounds-checked At/Set and a configurable NaN/Inf policy.
//   - ColVector and RowVector, owning vectors that also satisfy Matrix.
//   - Range and View: closed index intervals and aliasing windows over a Dense.
//     Windows host the vector kernels (MulVec, VecMul, AddOuter) and plane
//     rotations (RotateRows, RotateCols).
//   - Linear algebra on any Matrix: Add, Sub, Mul, Transpose, Scale, MatVec.
//   - Tolerance helpers: AlmostZero, AlmostEqual (ULP based), AllClose.
//   - CenterColumns and FrobeniusNorm for preparing data and measuring
//     reconstruction error.
//
// Errors are package sentinels (ErrBadShape, ErrOutOfRange, ...) wrapped with
// context; match them with errors.Is.
//
// See the examples in this package and in svd for usage patterns.
package matrix

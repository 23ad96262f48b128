// Package lvsvd is a pure-Go dense singular value decomposition kernel:
// Householder bidiagonalization followed by the Golub–Kahan implicit-shift
// SVD iteration with deflation.
//
// What is inside?
//
//	• matrix/ : Dense store (row- or column-major), vectors, aliasing
//	            windows (Range/View), rank-1 and plane-rotation kernels,
//	            basic linear algebra, column centering, the Frobenius norm
//	            and ULP-based tolerance helpers
//	• svd/    : House, Givens, Bidiagonalize, Decompose, result helpers
//	            (Values, Factors, Sorted), the concurrent DecomposeAll
//	            driver, slog logging and metrics hooks
//
// Quick start:
//
//	a, _ := matrix.FromRows([][]float64{
//		{2, 2, 3},
//		{9, 8, 1},
//		{15, 100, 7},
//		{99, 1, 2},
//	})
//	res, err := svd.Decompose(a, svd.Economy)
//	if err != nil {
//		// errors.Is(err, svd.ErrWideMatrix), svd.ErrNoConvergence, ...
//	}
//	res, _ = res.Sorted()
//	fmt.Println(res.Values())
//
// Guarantees:
//
//   - Uᵗ·A·V = S with U, V orthogonal and S diagonal and nonnegative.
//   - The input is never mutated; results are fresh matrices.
//   - Deterministic: identical input gives identical bits.
//   - Concurrent calls on distinct inputs are safe.
//
// See examples/ for a low-rank approximation walk-through and
// examples/observability for a Prometheus-backed metrics collector.
package lvsvd

// Package svd computes the singular value decomposition of a dense real
// matrix A (rows >= cols):
//
//	Uᵗ·A·V = S
//
// with U (m×m) and V (n×n) orthogonal and S (m×n) diagonal with nonnegative
// entries.
//
// The work happens in two phases:
//
//   - Bidiagonalize reduces A to upper-bidiagonal B with alternating left and
//     right Householder reflectors (House, ReflectLeft, ReflectRight).
//   - Decompose then drives B to diagonal form with implicit-shift
//     Golub–Kahan steps, splitting off converged values as the superdiagonal
//     decays (deflation). Zero diagonal entries are chased out with Givens
//     rotations before a step would stall on them.
//
// Every reflector and rotation is accumulated into U and V, so the returned
// factors reconstruct A up to round-off: A ≈ U·S·Vᵗ.
//
// Singular values are NOT sorted. Result.Sorted returns a copy with values in
// descending order and the columns of U and V permuted to match.
// Result.Factors trims U and S to the shapes requested by the Mode.
//
// DecomposeAll runs independent decompositions concurrently on a bounded
// worker group.
//
// Configuration uses functional options (WithTolerance, WithSweepFactor,
// WithOrder, WithLogger, WithMetrics). Errors are sentinels wrapped with
// context; match them with errors.Is:
//
//	res, err := svd.Decompose(a, svd.Complete)
//	if errors.Is(err, svd.ErrNoConvergence) {
//		// raise the sweep factor or loosen the tolerance
//	}
package svd

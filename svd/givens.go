// SPDX-License-Identifier: MIT

package svd

import (
	"math"

	"github.com/katalvlaran/lvsvd/matrix"
)

// GivensCS returns (c, s) such that [[c, s], [−s, c]]ᵗ·[a; b] = [r; 0],
// i.e. s·a + c·b = 0 with c² + s² = 1.
//
// The ratio form never squares a or b, so it does not overflow for large inputs.
func GivensCS(a, b float64) (c, s float64) {
	if b == 0 {
		return 1, 0
	}
	if math.Abs(b) > math.Abs(a) {
		tau := -a / b
		s = 1 / math.Sqrt(1+tau*tau)

		return s * tau, s
	}
	tau := -b / a
	c = 1 / math.Sqrt(1+tau*tau)

	return c, c * tau
}

// NewGivens builds the rotation on indices (i, k) that zeroes b against a.
func NewGivens(i, k int, a, b float64) Givens {
	c, s := GivensCS(a, b)

	return Givens{I: i, K: k, C: c, S: s}
}

// ApplyLeft rotates rows I and K of r.
func (g Givens) ApplyLeft(r matrix.Rotator) error { return r.RotateRows(g.I, g.K, g.C, g.S) }

// ApplyRight rotates columns I and K of r.
func (g Givens) ApplyRight(r matrix.Rotator) error { return r.RotateCols(g.I, g.K, g.C, g.S) }

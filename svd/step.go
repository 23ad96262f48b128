// SPDX-License-Identifier: MIT

package svd

import (
	"math"

	"github.com/katalvlaran/lvsvd/matrix"
)

// step runs one implicit-shift Golub–Kahan step on B22 = B[p:end, p:end].
// MAIN DESCRIPTION:
//   - Wilkinson-type shift μ from the trailing 2×2 of T = B22ᵗ·B22, then a
//     bulge chase of alternating column and row rotations down the block.
//
// Implementation:
//   - Stage 1: the needed entries of T are column dot products of B22.
//   - Stage 2: μ = eigenvalue of T's trailing 2×2 closer to T[s−1,s−1].
//   - Stage 3: y = T[0,0] − μ, z = T[0,1]; for k = 0..s−2:
//     column rotation (k, k+1) zeroing z against y, folded into V at p+k;
//     row rotation (k, k+1) zeroing B22[k+1,k], folded into U at p+k;
//     then y, z ← B22[k,k+1], B22[k,k+2] while a bulge remains.
//
// Notes:
//   - Entries a rotation is constructed to annihilate are stored as exact zeros,
//     so B stays exactly upper-bidiagonal between steps.
//
// Complexity:
//   - Time O(s·(m + n)) including the accumulation, Space O(s).
func (it *iteration) step(p, end int) error {
	size := end - p + 1
	b22, err := it.b.Select(matrix.R(p, end), matrix.R(p, end))
	if err != nil {
		return err
	}

	mu, err := wilkinsonShift(b22)
	if err != nil {
		return err
	}
	t00, err := gram(b22, 0, 0)
	if err != nil {
		return err
	}
	t01, err := gram(b22, 0, 1)
	if err != nil {
		return err
	}

	y, z := t00-mu, t01
	for k := 0; k+1 < size; k++ {
		col := NewGivens(k, k+1, y, z)
		if err = col.ApplyRight(b22); err != nil {
			return err
		}
		if k > 0 {
			_ = b22.Set(k-1, k+1, 0)
		}
		if err = (Givens{I: p + k, K: p + k + 1, C: col.C, S: col.S}).ApplyRight(it.v); err != nil {
			return err
		}

		y, _ = b22.At(k, k)
		z, _ = b22.At(k+1, k)
		row := NewGivens(k, k+1, y, z)
		if err = row.ApplyLeft(b22); err != nil {
			return err
		}
		_ = b22.Set(k+1, k, 0)
		if err = (Givens{I: p + k, K: p + k + 1, C: row.C, S: row.S}).ApplyRight(it.u); err != nil {
			return err
		}

		if k+2 < size {
			y, _ = b22.At(k, k+1)
			z, _ = b22.At(k, k+2)
		}
	}

	return nil
}

// wilkinsonShift returns the eigenvalue of the trailing 2×2 of T = B22ᵗ·B22
// closer to T's last diagonal entry.
func wilkinsonShift(b22 *matrix.View) (float64, error) {
	s := b22.Cols()
	var t [2][2]float64
	var err error
	for a := 0; a < 2; a++ {
		for c := 0; c < 2; c++ {
			if t[a][c], err = gram(b22, s-2+a, s-2+c); err != nil {
				return 0, err
			}
		}
	}
	l0, l1 := eigen2x2(t[0][0], t[0][1], t[1][0], t[1][1])
	tnn := t[1][1]
	if math.Abs(l0-tnn) < math.Abs(l1-tnn) {
		return l0, nil
	}

	return l1, nil
}

// gram returns T[a,c] = (column a of b)·(column c of b) without forming T.
func gram(b *matrix.View, a, c int) (float64, error) {
	all := matrix.All(b.Rows())
	ca, err := b.Column(a, all)
	if err != nil {
		return 0, err
	}
	cc, err := b.Column(c, all)
	if err != nil {
		return 0, err
	}

	return ca.Dot(cc)
}

// SPDX-License-Identifier: MIT

package svd

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/lvsvd/matrix"
)

// iteration holds the state of one Golub–Kahan run. B, U and V are private
// copies owned by the run and mutated in place.
type iteration struct {
	b, u, v *matrix.Dense
	n       int
	tol     float64
	limit   int
	sweeps  int
	logger  *slog.Logger
}

// at reads B[i,j]; indices are produced by the loop bounds and always valid.
func (it *iteration) at(i, j int) float64 {
	x, _ := it.b.At(i, j)

	return x
}

// run repeats deflate → locate → chase-or-step until B is diagonal.
// Implementation:
//   - Stage 1: superdiagonal entries with |B[i,i+1]| <= tol become exact zeros.
//   - Stage 2: q = size of the trailing diagonal block; q == n ends the loop.
//   - Stage 3: p = first index of the unreduced block ending at e = n−1−q.
//   - Stage 4: a zero on the diagonal of B[p:e, p:e] is chased out, else one
//     Golub–Kahan step runs on the block.
func (it *iteration) run() error {
	for {
		it.deflate()
		q := it.trailingDiagonal()
		if q == it.n {
			return nil
		}
		if it.sweeps >= it.limit {
			return &ConvergenceError{Sweeps: it.sweeps, Limit: it.limit, Active: it.n - q}
		}
		it.sweeps++

		end := it.n - 1 - q
		p := it.blockStart(end)
		if i, ok := it.zeroDiagonal(p, end); ok {
			it.logger.Debug("svd: zero diagonal", "index", i, "p", p, "q", q)
			if err := it.chaseZero(i, p, end); err != nil {
				return fmt.Errorf("chase at %d: %w", i, err)
			}

			continue
		}
		if err := it.step(p, end); err != nil {
			return fmt.Errorf("step on [%d..%d]: %w", p, end, err)
		}
	}
}

// deflate sets negligible superdiagonal entries to exact zero.
func (it *iteration) deflate() {
	for i := 0; i+1 < it.n; i++ {
		if matrix.AlmostZeroTol(it.at(i, i+1), it.tol) {
			_ = it.b.Set(i, i+1, 0)
		}
	}
}

// trailingDiagonal returns the largest q such that B[n−q:n, n−q:n] is diagonal.
// A lone leading entry counts as diagonal, so a fully diagonal B yields n.
func (it *iteration) trailingDiagonal() int {
	q := 0
	for ; q < it.n; q++ {
		if q == it.n-1 {
			return it.n
		}
		if it.at(it.n-2-q, it.n-1-q) != 0 {
			break
		}
	}

	return q
}

// blockStart returns the smallest p such that B[p:end, p:end] has a nonzero
// superdiagonal throughout. B[end−1, end] is nonzero on entry.
func (it *iteration) blockStart(end int) int {
	p := end
	for p >= 1 && it.at(p-1, p) != 0 {
		p--
	}

	return p
}

// zeroDiagonal returns the first i in [p, end] with B[i,i] == 0.
func (it *iteration) zeroDiagonal(p, end int) (int, bool) {
	for i := p; i <= end; i++ {
		if it.at(i, i) == 0 {
			return i, true
		}
	}

	return 0, false
}

// chaseZero removes the coupling of a zero diagonal entry B[i,i].
//
// Mid-block (i < end): row rotations against rows i+1..end push the nonzero
// B[i,i+1] along row i until it falls off the block; each rotation is folded
// into U. At the block end (i == end): column rotations against columns
// end−1..p push B[end−1,end] up column end; each is folded into V.
// Either way a superdiagonal entry of the block becomes zero and the next pass
// splits the block there.
func (it *iteration) chaseZero(i, p, end int) error {
	if i < end {
		for j := i + 1; j <= end; j++ {
			g := NewGivens(i, j, -it.at(j, j), it.at(i, j))
			if err := g.ApplyLeft(it.b); err != nil {
				return err
			}
			_ = it.b.Set(i, j, 0)
			if err := g.ApplyRight(it.u); err != nil {
				return err
			}
		}

		return nil
	}
	for j := end - 1; j >= p; j-- {
		g := NewGivens(j, end, it.at(j, j), it.at(j, end))
		if err := g.ApplyRight(it.b); err != nil {
			return err
		}
		_ = it.b.Set(j, end, 0)
		if err := g.ApplyRight(it.v); err != nil {
			return err
		}
	}

	return nil
}

// fixSigns makes every diagonal entry of S nonnegative, flipping the
// matching column of V so that Uᵗ·A·V = S still holds.
func (it *iteration) fixSigns() error {
	rows := it.v.Rows()
	for i := 0; i < it.n; i++ {
		d := it.at(i, i)
		if !(d < 0) {
			continue
		}
		_ = it.b.Set(i, i, -d)
		col, err := it.v.Select(matrix.All(rows), matrix.R(i, i))
		if err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			x, _ := col.At(r, 0)
			_ = col.Set(r, 0, -x)
		}
	}

	return nil
}

// eigen2x2 returns the eigenvalues of [[a, b], [c, d]] via
// trace/2 ± √((trace/2)² − det). When both off-diagonal entries are zero it
// returns (1, 0). The discriminant is clamped at zero against round-off.
func eigen2x2(a, b, c, d float64) (float64, float64) {
	if b == 0 && c == 0 {
		return 1, 0
	}
	half := (a + d) / 2
	det := a*d - b*c
	disc := half*half - det
	if disc < 0 {
		disc = 0
	}
	r := math.Sqrt(disc)

	return half + r, half - r
}

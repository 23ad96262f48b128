// SPDX-License-Identifier: MIT

package svd

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/lvsvd/matrix"
)

// Values returns the diagonal of S (length n) in stored order.
func (r *Result) Values() []float64 { return r.S.Diagonal() }

// Factors returns copies of U, S and V shaped for r.Mode.
//
//   - Complete: U m×m, S m×n, V n×n.
//   - Economy:  U m×n, S n×n, V n×n.
//   - Zero:     Economy when m > n, Complete otherwise.
//
// Errors are not expected for a Result produced by Decompose; they surface
// only for hand-assembled results with inconsistent shapes.
func (r *Result) Factors() (u, s, v *matrix.Dense, err error) {
	m, n := r.S.Shape()
	economy := r.Mode == Economy || (r.Mode == Zero && m > n)
	if !economy {
		return r.U.Copy(), r.S.Copy(), r.V.Copy(), nil
	}

	uw, err := r.U.Select(matrix.All(m), matrix.All(n))
	if err != nil {
		return nil, nil, nil, svdErrorf(opFactors, err)
	}
	sw, err := r.S.Select(matrix.All(n), matrix.All(n))
	if err != nil {
		return nil, nil, nil, svdErrorf(opFactors, err)
	}

	return uw.Clone().(*matrix.Dense), sw.Clone().(*matrix.Dense), r.V.Copy(), nil
}

// Sorted returns a new Result whose singular values descend along the
// diagonal of S. Columns of U (first n) and V are permuted to match, so
// Uᵗ·A·V = S still holds. The receiver is left untouched.
//
// Ties keep their original relative order.
func (r *Result) Sorted() (*Result, error) {
	m, n := r.S.Shape()
	vals := r.Values()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int { return cmp.Compare(vals[b], vals[a]) })

	u, s, v := r.U.Copy(), r.S.Copy(), r.V.Copy()
	for dst, src := range perm {
		if dst == src {
			continue
		}
		_ = s.Set(dst, dst, vals[src])
		if err := copyColumn(u, r.U, dst, src, m); err != nil {
			return nil, svdErrorf(opSorted, err)
		}
		if err := copyColumn(v, r.V, dst, src, n); err != nil {
			return nil, svdErrorf(opSorted, err)
		}
	}

	return &Result{U: u, S: s, V: v, Mode: r.Mode, Sweeps: r.Sweeps}, nil
}

// copyColumn writes column src of from into column dst of to (rows entries).
func copyColumn(to, from *matrix.Dense, dst, src, rows int) error {
	col, err := from.Select(matrix.All(rows), matrix.R(src, src))
	if err != nil {
		return err
	}
	if err = to.Overwrite(matrix.All(rows), matrix.R(dst, dst), col); err != nil {
		return fmt.Errorf("column %d→%d: %w", src, dst, err)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package svd: sentinel error set.
// Every message is prefixed with "svd: ". Shape problems reuse the matrix
// sentinels so one errors.Is check covers both packages.

package svd

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvsvd/matrix"
)

var (
	// ErrWideMatrix is returned for inputs with fewer rows than columns.
	// It wraps matrix.ErrBadShape.
	ErrWideMatrix = fmt.Errorf("svd: rows < cols: %w", matrix.ErrBadShape)

	// ErrUnknownMode is returned when Decompose receives a Mode outside
	// Complete, Economy and Zero.
	ErrUnknownMode = errors.New("svd: unknown decompose mode")

	// ErrNoConvergence is matched by *ConvergenceError.
	ErrNoConvergence = errors.New("svd: iteration did not converge")
)

// ConvergenceError reports an SVD iteration that exhausted its pass budget.
//
// errors.Is(err, ErrNoConvergence) holds for every *ConvergenceError.
type ConvergenceError struct {
	Sweeps int // outer passes performed
	Limit  int // pass budget (sweep factor · cols)
	Active int // size of the region still not diagonal
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("svd: no convergence after %d passes (limit %d, %d values unresolved)", e.Sweeps, e.Limit, e.Active)
}

func (e *ConvergenceError) Unwrap() error { return ErrNoConvergence }

// svdErrorf wraps err with an operation tag, mirroring matrix's "<Op>: <cause>" shape.
func svdErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Operation tags for error wrapping.
const (
	opHouse         = "House"
	opBidiagonalize = "Bidiagonalize"
	opDecompose     = "Decompose"
	opFactors       = "Factors"
	opSorted        = "Sorted"
	opDecomposeAll  = "DecomposeAll"
)

// isConvergence reports whether err stems from an exhausted pass budget.
func isConvergence(err error) bool { return errors.Is(err, ErrNoConvergence) }

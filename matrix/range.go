// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Range is a closed, inclusive index interval [First, Last].
// A valid Range over an extent n satisfies 0 <= First <= Last < n.
type Range struct {
	First, Last int
}

// R is shorthand for Range{First: first, Last: last}.
func R(first, last int) Range { return Range{First: first, Last: last} }

// All covers every index of an extent n: [0, n-1].
func All(n int) Range { return Range{First: 0, Last: n - 1} }

// Len returns the number of indices covered (Last - First + 1).
func (r Range) Len() int { return r.Last - r.First + 1 }

// String renders the range as "[first..last]".
func (r Range) String() string { return fmt.Sprintf("[%d..%d]", r.First, r.Last) }

// validate reports ErrOutOfRange unless 0 <= First <= Last < n.
func (r Range) validate(n int) error {
	if r.First < 0 || r.Last >= n || r.First > r.Last {
		return ErrOutOfRange
	}

	return nil
}

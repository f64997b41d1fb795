// SPDX-License-Identifier: MIT

package hungarian

import "errors"

// ErrEmptyMatrix is returned for a 0×0 problem. Callers are expected to
// short-circuit empty inputs before building a matrix.
var ErrEmptyMatrix = errors.New("hungarian: empty cost matrix")

// Result holds the outcome of Solve.
type Result struct {
	// Assignment maps each row to its matched column: Assignment[row] == col.
	// It is a permutation of 0..n-1.
	Assignment []int

	// Cost is the sum of the matched cells, read back from the input matrix.
	Cost float64
}

// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 storage used by the assignment
// solver and the multiset aligner.
//
// The package provides:
//
//   - Matrix, a minimal mutable two-dimensional interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation with a finite-value numeric policy.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) that return
//     wrapped sentinel errors instead of panicking.
//
// Cost matrices built by the aligners are square (n×n, padded with delete or
// insert costs) and must contain only finite values; Dense rejects NaN and
// ±Inf in Set by default so a malformed cost never reaches the solver.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).
package matrix

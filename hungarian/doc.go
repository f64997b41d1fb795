// SPDX-License-Identifier: MIT

// Package hungarian solves the linear assignment problem: given an n×n cost
// matrix, find the permutation pairing every row with exactly one column
// such that the summed cost is minimal (a minimum-cost perfect matching in
// the complete bipartite graph rows×columns).
//
// 🚀 Algorithm
//
//	Kuhn–Munkres ("Hungarian") with row/column potentials and shortest
//	augmenting paths. Rows are inserted one at a time; each insertion runs a
//	Dijkstra-like scan over reduced costs c[i][j] - u[i] - v[j] ≥ 0 and
//	augments along the cheapest alternating path.
//
// ✨ Key properties:
//   - exact optimum for real-valued (including negative and fractional) costs
//   - deterministic: fixed row/column scan order, strict comparisons, so
//     equal-cost alternatives resolve to the lowest column reached first
//   - validates input: non-nil, square, non-empty, finite
//
// ⚙️ Usage:
//
//	m, _ := matrix.NewSquare(3)
//	// ... fill costs with m.Set(i, j, c) ...
//	res, err := hungarian.Solve(m)
//	// res.Assignment[row] == col, res.Cost == Σ m[row][col]
//
// Performance:
//
//   - Time:   O(n³)
//   - Memory: O(n²) for the copied costs, O(n) for potentials
package hungarian

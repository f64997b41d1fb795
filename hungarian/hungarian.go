// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"
	"math"

	"github.com/MikeHopcroft/PrixFixe-sub000/matrix"
)

// Solve computes a minimum-cost perfect matching over the square matrix m.
//
// Algorithm Outline:
//  1. Validate m (non-nil, square, n ≥ 1) and copy it into a local [][]float64,
//     rejecting NaN/±Inf.
//  2. Keep potentials u (rows, 1-based) and v (columns, 1-based) and p[j], the
//     row currently matched to column j (p[0] is the row being inserted).
//  3. For each row i: grow a tree of tight edges from the virtual column 0,
//     tracking minv[j] (cheapest reduced cost reaching column j) and way[j]
//     (predecessor column). Pick the unused column with the smallest minv,
//     shift potentials by that delta, and stop at a free column.
//  4. Augment back along way[] to flip the alternating path.
//  5. Read Assignment from p[] and Cost from the original cells.
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrNonSquare - invalid input shape.
//   - ErrEmptyMatrix - n == 0 (only reachable through custom Matrix implementations).
//   - matrix.ErrNaNInf - non-finite cell.
//
// Complexity: O(n³) time, O(n²) memory.
func Solve(m matrix.Matrix) (Result, error) {
	if err := matrix.ValidateSquare(m); err != nil {
		return Result{}, fmt.Errorf("hungarian: %w", err)
	}
	n := m.Rows()
	if n == 0 {
		return Result{}, ErrEmptyMatrix
	}

	cost, err := load(m, n)
	if err != nil {
		return Result{}, err
	}

	inf := math.Inf(1)
	u := make([]float64, n+1)    // row potentials
	v := make([]float64, n+1)    // column potentials
	p := make([]int, n+1)        // p[j]: row matched to column j (0 = free)
	way := make([]int, n+1)      // way[j]: previous column on the augmenting path
	minv := make([]float64, n+1) // cheapest reduced cost reaching column j
	used := make([]bool, n+1)    // column already in the tree

	var i, j, i0, j0, j1 int
	var delta, cur float64
	for i = 1; i <= n; i++ {
		p[0] = i
		j0 = 0
		for j = 0; j <= n; j++ {
			minv[j] = inf
			used[j] = false
		}

		// Grow the alternating tree until a free column is reached.
		for {
			used[j0] = true
			i0 = p[j0]
			delta = inf
			j1 = 0
			for j = 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur = cost[i0-1][j-1] - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j = 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			if p[j0] == 0 {
				break
			}
		}

		// Flip the path.
		for j0 != 0 {
			j1 = way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
	}

	res := Result{Assignment: make([]int, n)}
	for j = 1; j <= n; j++ {
		res.Assignment[p[j]-1] = j - 1
	}
	for i = 0; i < n; i++ {
		res.Cost += cost[i][res.Assignment[i]]
	}

	return res, nil
}

// load copies m into row slices once every cell is known to be finite.
func load(m matrix.Matrix, n int) ([][]float64, error) {
	if err := matrix.ValidateFinite(m); err != nil {
		return nil, fmt.Errorf("hungarian: %w", err)
	}
	cost := make([][]float64, n)
	var i, j int
	var x float64
	var err error
	for i = 0; i < n; i++ {
		cost[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if x, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("hungarian: %w", err)
			}
			cost[i][j] = x
		}
	}

	return cost, nil
}

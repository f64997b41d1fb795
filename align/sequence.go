// SPDX-License-Identifier: MIT

package align

// Sequence - positional (order-sensitive) alignment
//
// Description:
//
//	Sequence finds the cheapest edit script that turns observed into
//	expected while preserving element order, in the manner of a weighted
//	Levenshtein distance over tree nodes.
//
// Algorithm Outline:
//  1. Let m = len(observed), n = len(expected). Allocate an (n+1)x(m+1)
//     grid V of vertices; V[j][i] holds the best edit reaching the cell and
//     the cumulative cost.
//  2. Initialize:
//     V[0][0] = origin (None, 0)
//     V[0][i] = V[0][i-1] + Delete(observed[i-1])
//     V[j][0] = V[j-1][0] + Insert(expected[j-1])
//  3. For j = 1..n, i = 1..m, in this order:
//     del    = V[j][i-1]   + Delete(observed[i-1])
//     ins    = V[j-1][i]   + Insert(expected[j-1])
//     repair = V[j-1][i-1] + Repair(observed[i-1], expected[j-1])
//     V[j][i] = the first strict minimum (delete, then insert, then repair).
//  4. Walk back from V[n][m] to the origin: Delete moves left, Insert moves
//     up, Repair moves diagonally. Every non-origin edit is prepended to the
//     result except zero-cost repairs (unchanged elements).
//
// Complexity:
//
//	Time   = O(n·m) cost-model calls (each may recurse into children)
//	Memory = O(n·m)
//
// Delete and Insert are pure, so they are computed once per element rather
// than once per cell.
func Sequence[T any](model CostModel[T], observed, expected []T) (DiffResult, error) {
	if model == nil {
		return DiffResult{}, ErrNilModel
	}
	m, n := len(observed), len(expected)

	deletes := make([]Edit, m)
	inserts := make([]Edit, n)
	var i, j int
	var err error
	for i = 0; i < m; i++ {
		if deletes[i], err = model.Delete(observed[i]); err != nil {
			return DiffResult{}, err
		}
	}
	for j = 0; j < n; j++ {
		if inserts[j], err = model.Insert(expected[j]); err != nil {
			return DiffResult{}, err
		}
	}

	// Prepare DP storage
	grid := make([][]vertex, n+1)
	for j = range grid {
		grid[j] = make([]vertex, m+1)
	}

	// Initialize first row/col
	grid[0][0] = vertex{edit: Edit{Op: None}, move: None}
	for i = 1; i <= m; i++ {
		grid[0][i] = vertex{edit: deletes[i-1], move: Delete, cost: grid[0][i-1].cost + deletes[i-1].Cost}
	}
	for j = 1; j <= n; j++ {
		grid[j][0] = vertex{edit: inserts[j-1], move: Insert, cost: grid[j-1][0].cost + inserts[j-1].Cost}
	}

	// Fill DP
	var repair Edit
	var best vertex
	var c float64
	for j = 1; j <= n; j++ {
		for i = 1; i <= m; i++ {
			best = vertex{edit: deletes[i-1], move: Delete, cost: grid[j][i-1].cost + deletes[i-1].Cost}

			if c = grid[j-1][i].cost + inserts[j-1].Cost; c < best.cost {
				best = vertex{edit: inserts[j-1], move: Insert, cost: c}
			}

			if repair, err = model.Repair(observed[i-1], expected[j-1]); err != nil {
				return DiffResult{}, err
			}
			if c = grid[j-1][i-1].cost + repair.Cost; c < best.cost {
				best = vertex{edit: repair, move: Repair, cost: c}
			}

			grid[j][i] = best
		}
	}

	// Backtrack from (n,m) to the origin.
	var edits []Edit
	i, j = m, n
	for {
		v := grid[j][i]
		switch v.move {
		case Delete:
			i--
		case Insert:
			j--
		case Repair:
			i--
			j--
		default:
			return DiffResult{Cost: grid[n][m].cost, Edits: reverse(edits)}, nil
		}
		if v.move != Repair || v.edit.Cost != 0 {
			edits = append(edits, v.edit)
		}
	}
}

// vertex is one cell of the Sequence grid.
type vertex struct {
	edit Edit    // edit that reaches this cell
	move Op      // grid step taken by edit: Delete (left), Insert (up), Repair (diagonal)
	cost float64 // cumulative cost from the origin
}

// reverse flips edits in place and returns a non-nil slice.
func reverse(edits []Edit) []Edit {
	if edits == nil {
		return []Edit{}
	}
	for l, r := 0, len(edits)-1; l < r; l, r = l+1, r-1 {
		edits[l], edits[r] = edits[r], edits[l]
	}
	return edits
}

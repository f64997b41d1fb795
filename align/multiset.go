// SPDX-License-Identifier: MIT

package align

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/MikeHopcroft/PrixFixe-sub000/hungarian"
	"github.com/MikeHopcroft/PrixFixe-sub000/matrix"
)

// Multiset aligns observed and expected as multisets: sibling order is
// ignored and every observed element is either repaired into exactly one
// expected element or deleted.
//
// Algorithm Outline:
//  1. Let a = len(observed), b = len(expected), n = max(a, b). If n == 0
//     the result is empty and no solver runs.
//  2. Build an n×n cost matrix, remembering the Edit behind every cell:
//     (i < a, j < b)  Repair(observed[i], expected[j])
//     (i < a, j ≥ b)  Delete(observed[i])   - padding column
//     (i ≥ a, j < b)  Insert(expected[j])   - padding row
//  3. Solve the assignment problem (hungarian.Solve).
//  4. Keep the matched Edits whose cost is not exactly 0; Cost is their sum.
//  5. Emit them in canonical order (op, then steps, then cost), so input
//     order never shows through in the result.
//
// When several matchings share the minimum cost the solver picks one by
// input position, so permuting the inputs may select a different, equally
// cheap set of Edits. Cost is always invariant; the Edits are invariant
// whenever the optimum is unique.
//
// Complexity: O(a·b) cost-model calls plus O(n³) for the solve.
func Multiset[T any](model CostModel[T], observed, expected []T) (DiffResult, error) {
	if model == nil {
		return DiffResult{}, ErrNilModel
	}
	a, b := len(observed), len(expected)
	n := max(a, b)
	if n == 0 {
		return DiffResult{Edits: []Edit{}}, nil
	}

	costs, err := matrix.NewSquare(n)
	if err != nil {
		return DiffResult{}, fmt.Errorf("align: %w", err)
	}
	edits := make([][]Edit, n)

	// Delete and Insert depend only on their argument; price them once.
	var deletes, inserts []Edit
	if a > b {
		if deletes, err = priceAll(model.Delete, observed); err != nil {
			return DiffResult{}, err
		}
	}
	if b > a {
		if inserts, err = priceAll(model.Insert, expected); err != nil {
			return DiffResult{}, err
		}
	}

	var i, j int
	var e Edit
	for i = 0; i < n; i++ {
		edits[i] = make([]Edit, n)
		for j = 0; j < n; j++ {
			switch {
			case i < a && j < b:
				if e, err = model.Repair(observed[i], expected[j]); err != nil {
					return DiffResult{}, err
				}
			case i < a:
				e = deletes[i]
			default:
				e = inserts[j]
			}
			if err = costs.Set(i, j, e.Cost); err != nil {
				return DiffResult{}, fmt.Errorf("align: %s cost: %w", e.Op, err)
			}
			edits[i][j] = e
		}
	}

	res, err := hungarian.Solve(costs)
	if err != nil {
		return DiffResult{}, fmt.Errorf("align: %w", err)
	}

	out := DiffResult{Edits: []Edit{}}
	for i = 0; i < n; i++ {
		e = edits[i][res.Assignment[i]]
		if e.Cost == 0 {
			continue
		}
		out.Edits = append(out.Edits, e)
		out.Cost += e.Cost
	}
	slices.SortStableFunc(out.Edits, compareEdits)

	return out, nil
}

// priceAll applies f to every element in order.
func priceAll[T any](f func(T) (Edit, error), items []T) ([]Edit, error) {
	out := make([]Edit, len(items))
	var err error
	for i := range items {
		if out[i], err = f(items[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// compareEdits orders edits by op, then step text, then cost.
func compareEdits(x, y Edit) int {
	if c := cmp.Compare(x.Op, y.Op); c != 0 {
		return c
	}
	if c := slices.Compare(x.Steps, y.Steps); c != 0 {
		return c
	}
	return cmp.Compare(x.Cost, y.Cost)
}

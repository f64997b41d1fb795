// SPDX-License-Identifier: MIT

// Package align computes minimum-cost edit scripts between two sequences of
// tree nodes under a pluggable cost model.
//
// 🚀 What is an alignment?
//
//	Given an observed list and an expected list, an alignment pairs each
//	observed element with at most one expected element. Paired elements are
//	priced with CostModel.Repair, unpaired observed elements with Delete and
//	unpaired expected elements with Insert. The cheapest alignment is the
//	edit script that turns observed into expected.
//
// ✨ Two interchangeable engines share one CostModel contract:
//   - Sequence - positional dynamic programming over an (n+1)×(m+1) grid,
//     order-sensitive, O(n·m) cost-model calls. Ties: delete, then insert,
//     then repair.
//   - Multiset - order-insensitive optimal assignment: pads the lists into
//     an n×n cost matrix and solves it with the Hungarian method, O(n³).
//
// Cost models recurse: a Repair of two tree nodes usually aligns their
// children with the same engine, so the total cost of a tree alignment is
// accumulated level by level.
//
// ⚙️ Usage:
//
//	var model align.CostModel[cart.Item] = ...
//	res, err := align.Multiset(model, observed, expected)
//	// res.Cost == Σ res.Edits[i].Cost
//
// Both engines are pure: they keep no state between calls and are safe to
// run concurrently as long as the cost model is.
package align

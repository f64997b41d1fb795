// SPDX-License-Identifier: MIT

// Package repairs prices the difference between an observed cart and an
// expected cart as a list of human-readable corrections.
//
// Two cost models implement align.CostModel[cart.Item]:
//
//   - MenuRepairs consults a Catalog for product names, default
//     configurations and attribute coordinates, so it can explain "wrong
//     size" as one attribute change instead of a delete and an insert.
//   - SimpleRepairs treats keys as opaque stock-keeping ids and prices only
//     identity, quantity and the presence of children.
//
// Costs follow one rule: one unit per step line. Replacing an item with a
// different product is priced as delete + insert minus Epsilon, so that the
// alignment engine prefers a true replacement over an equally expensive
// attribute-by-attribute repair. RepairCart runs the alignment, then resets
// each edit's cost to its step count so reported scores are small integers.
//
// Child corrections are nested under their parent: each level of recursion
// prefixes its steps with two more spaces. Under the default aligner the
// nested steps are listed in a canonical order, independent of how the
// options were listed in either cart.
//
// Cost: each tree level runs one O(n³) assignment solve, and every repaired
// pair recurses into its children. Each non-zero repair additionally prices
// the full insert of the expected subtree to cap the repair at the
// replacement cost.
package repairs

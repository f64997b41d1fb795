// SPDX-License-Identifier: MIT

// Package prixfixe scores conversational ordering systems by explaining,
// step by step, how the cart a system produced differs from the cart the
// customer actually wanted.
//
// Carts are trees: a latte with oat milk and two sugars is one item with two
// children. The difference between two carts is the cheapest list of repairs
// a human would make, such as deleting an item, inserting a missing one,
// changing a size or a quantity. Every repair is one cost unit, so a
// perfect cart scores 0.
//
// Packages:
//
//	cart/       - Item and Cart trees, structural equality, YAML tags
//	align/      - the cost model contract and the two tree aligners:
//	              Sequence (order-sensitive DP) and Multiset (optimal assignment)
//	hungarian/  - minimum-cost perfect matching used by Multiset
//	matrix/     - dense float64 matrix with a finite-value policy
//	menu/       - product catalog with attribute dimensions and composed names
//	repairs/    - MenuRepairs (catalog-aware) and SimpleRepairs (opaque keys)
//	scoring/    - concurrent suite scoring and aggregate metrics
//	cmd/cartdiff - command-line front end
//
// Quick start:
//
//	catalog, _ := menu.LoadFile("coffee.yaml")
//	r, _ := repairs.NewMenuRepairs(catalog)
//	res, _ := r.RepairCart(observed, expected)
//	for _, e := range res.Edits {
//		fmt.Println(e.Op, e.Steps)
//	}
package prixfixe

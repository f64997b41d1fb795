// SPDX-License-Identifier: MIT

// Package cart defines the shopping-cart trees compared by the repair
// scorers: a Cart is an ordered list of Items, and every Item carries a
// quantity, an opaque identity Key and its own ordered child Items (the
// options and modifiers selected for it).
//
// Trees are built by value: a parent owns its children exclusively, so there
// is no sharing and no cycles. Keys are opaque here; only cost models and
// catalogs interpret them.
package cart

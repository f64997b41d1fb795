// SPDX-License-Identifier: MIT

package cart

import "errors"

var (
	// ErrBadQuantity indicates an Item with a non-positive quantity.
	ErrBadQuantity = errors.New("cart: quantity must be positive")

	// ErrEmptyKey indicates an Item without an identity key.
	ErrEmptyKey = errors.New("cart: empty item key")
)

// Key is an item's identity: either a composite of base product and
// attribute coordinates (e.g. "9000:0:0:0") or a plain stock-keeping id.
type Key string

// PID is a base-product identity, shared by every attribute variant of a product.
type PID int

// Item is one node of a cart tree.
type Item struct {
	Quantity int    `yaml:"quantity" json:"quantity"`
	Key      Key    `yaml:"key" json:"key"`
	Children []Item `yaml:"children,omitempty" json:"children,omitempty"`
}

// Cart is one order at one point in time.
type Cart struct {
	Items []Item `yaml:"items" json:"items"`
}

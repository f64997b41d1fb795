// SPDX-License-Identifier: MIT

package cart

import (
	"fmt"
	"strings"
)

// NewItem returns an Item owning copies of children.
func NewItem(key Key, quantity int, children ...Item) Item {
	it := Item{Quantity: quantity, Key: key}
	if len(children) > 0 {
		it.Children = make([]Item, len(children))
		for i := range children {
			it.Children[i] = children[i].Clone()
		}
	}
	return it
}

// New returns a Cart holding copies of items.
func New(items ...Item) Cart {
	c := Cart{}
	for i := range items {
		c.Items = append(c.Items, items[i].Clone())
	}
	return c
}

// Clone returns a deep copy of the item tree.
func (it Item) Clone() Item {
	out := Item{Quantity: it.Quantity, Key: it.Key}
	if it.Children != nil {
		out.Children = make([]Item, len(it.Children))
		for i := range it.Children {
			out.Children[i] = it.Children[i].Clone()
		}
	}
	return out
}

// Equal reports structural equality: same key, quantity and children in the
// same order. A nil and an empty child list are equal.
func (it Item) Equal(other Item) bool {
	if it.Key != other.Key || it.Quantity != other.Quantity {
		return false
	}
	return equalItems(it.Children, other.Children)
}

// Validate checks quantities and keys over the whole subtree.
func (it Item) Validate() error {
	if it.Key == "" {
		return ErrEmptyKey
	}
	if it.Quantity <= 0 {
		return fmt.Errorf("item %q: %w", it.Key, ErrBadQuantity)
	}
	for i := range it.Children {
		if err := it.Children[i].Validate(); err != nil {
			return fmt.Errorf("item %q child %d: %w", it.Key, i, err)
		}
	}
	return nil
}

// Size counts the items in the subtree rooted at it, including it.
func (it Item) Size() int {
	n := 1
	for i := range it.Children {
		n += it.Children[i].Size()
	}
	return n
}

// String renders the item as "qty key" with children indented below it.
func (it Item) String() string {
	var b strings.Builder
	it.write(&b, "")
	return strings.TrimSuffix(b.String(), "\n")
}

func (it Item) write(b *strings.Builder, indent string) {
	fmt.Fprintf(b, "%s%d %s\n", indent, it.Quantity, it.Key)
	for i := range it.Children {
		it.Children[i].write(b, indent+"  ")
	}
}

// Clone returns a deep copy of the cart.
func (c Cart) Clone() Cart {
	out := Cart{}
	if c.Items != nil {
		out.Items = make([]Item, len(c.Items))
		for i := range c.Items {
			out.Items[i] = c.Items[i].Clone()
		}
	}
	return out
}

// Equal reports structural, order-sensitive equality of two carts.
func (c Cart) Equal(other Cart) bool {
	return equalItems(c.Items, other.Items)
}

// Validate checks every item in the cart.
func (c Cart) Validate() error {
	for i := range c.Items {
		if err := c.Items[i].Validate(); err != nil {
			return fmt.Errorf("cart item %d: %w", i, err)
		}
	}
	return nil
}

// Size counts every item in the cart, options included.
func (c Cart) Size() int {
	var n int
	for i := range c.Items {
		n += c.Items[i].Size()
	}
	return n
}

// String renders each top-level item on its own line.
func (c Cart) String() string {
	parts := make([]string, 0, len(c.Items))
	for i := range c.Items {
		parts = append(parts, c.Items[i].String())
	}
	return strings.Join(parts, "\n")
}

func equalItems(a, b []Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

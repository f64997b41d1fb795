// SPDX-License-Identifier: MIT

package menu

import (
	"fmt"
	"sort"
	"strings"

	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
)

// Catalog resolves keys to products, names and attribute coordinates.
type Catalog struct {
	dimensions map[string]*Dimension
	products   map[cart.PID]*Product
}

// New builds a catalog from spec. The spec is checked structurally (see
// Validate) and semantically: dimension references, default coordinates and
// explicit names must all resolve.
func New(spec Spec) (*Catalog, error) {
	if err := Validate(spec); err != nil {
		return nil, err
	}

	c := &Catalog{
		dimensions: make(map[string]*Dimension, len(spec.Dimensions)),
		products:   make(map[cart.PID]*Product, len(spec.Products)),
	}
	for _, ds := range spec.Dimensions {
		if _, dup := c.dimensions[ds.Name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateDimension, ds.Name)
		}
		d := &Dimension{Name: ds.Name, Attributes: make([]Attribute, len(ds.Attributes))}
		for i, a := range ds.Attributes {
			d.Attributes[i] = Attribute{Name: a.Name, Hidden: a.Hidden}
		}
		c.dimensions[ds.Name] = d
	}

	for _, ps := range spec.Products {
		if _, dup := c.products[ps.PID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicatePID, ps.PID)
		}
		p, err := c.newProduct(ps)
		if err != nil {
			return nil, err
		}
		c.products[p.PID] = p
	}

	return c, nil
}

func (c *Catalog) newProduct(ps ProductSpec) (*Product, error) {
	p := &Product{
		PID:        ps.PID,
		Name:       ps.Name,
		Dimensions: make([]*Dimension, len(ps.Dimensions)),
		Defaults:   make([]int, len(ps.Dimensions)),
		names:      make(map[cart.Key]string, len(ps.Specifics)),
	}
	for i, name := range ps.Dimensions {
		d, ok := c.dimensions[name]
		if !ok {
			return nil, fmt.Errorf("product %d: %w %q", ps.PID, ErrUnknownDimension, name)
		}
		p.Dimensions[i] = d
	}
	if ps.Defaults != nil {
		if err := p.checkCoordinates(ps.Defaults); err != nil {
			return nil, fmt.Errorf("product %d defaults: %w", ps.PID, err)
		}
		copy(p.Defaults, ps.Defaults)
	}
	for k, name := range ps.Specifics {
		pid, coords, err := ParseKey(cart.Key(k))
		if err != nil {
			return nil, fmt.Errorf("product %d specifics: %w", ps.PID, err)
		}
		if pid != ps.PID {
			return nil, fmt.Errorf("product %d specifics: %w %q belongs to pid %d", ps.PID, ErrMalformedKey, k, pid)
		}
		if err := p.checkCoordinates(coords); err != nil {
			return nil, fmt.Errorf("product %d specifics %q: %w", ps.PID, k, err)
		}
		// Normalize so "9000:00:1" and "9000:0:1" collide.
		p.names[FormatKey(pid, coords)] = name
	}
	return p, nil
}

// checkCoordinates validates a coordinate vector against the product's dimensions.
func (p *Product) checkCoordinates(coords []int) error {
	if len(coords) != len(p.Dimensions) {
		return fmt.Errorf("%w: got %d coordinates, want %d", ErrBadCoordinate, len(coords), len(p.Dimensions))
	}
	for i, x := range coords {
		if x < 0 || x >= len(p.Dimensions[i].Attributes) {
			return fmt.Errorf("%w: %s position %d out of range", ErrBadCoordinate, p.Dimensions[i].Name, x)
		}
	}
	return nil
}

// Product returns the generic product for pid.
func (c *Catalog) Product(pid cart.PID) (*Product, error) {
	p, ok := c.products[pid]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProduct, pid)
	}
	return p, nil
}

// Products lists every product ordered by PID.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, 0, len(c.products))
	for _, p := range c.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PID < out[j].PID })
	return out
}

// resolve parses key and checks it against its product.
// Every failure wraps ErrUnknownKey.
func (c *Catalog) resolve(key cart.Key) (*Product, []int, error) {
	pid, coords, err := ParseKey(key)
	if err != nil {
		return nil, nil, fmt.Errorf("%w %q: %w", ErrUnknownKey, key, err)
	}
	p, ok := c.products[pid]
	if !ok {
		return nil, nil, fmt.Errorf("%w %q: %w", ErrUnknownKey, key, ErrUnknownProduct)
	}
	if err := p.checkCoordinates(coords); err != nil {
		return nil, nil, fmt.Errorf("%w %q: %w", ErrUnknownKey, key, err)
	}
	return p, coords, nil
}

// Name returns the human-readable name of the specific configuration key.
func (c *Catalog) Name(key cart.Key) (string, error) {
	p, coords, err := c.resolve(key)
	if err != nil {
		return "", err
	}
	if name, ok := p.names[FormatKey(p.PID, coords)]; ok {
		return name, nil
	}
	words := make([]string, 0, len(coords)+1)
	for i, x := range coords {
		if a := p.Dimensions[i].Attributes[x]; !a.Hidden {
			words = append(words, a.Name)
		}
	}
	words = append(words, p.Name)
	return strings.Join(words, " "), nil
}

// DefaultKey returns the key of the default configuration of key's product.
func (c *Catalog) DefaultKey(key cart.Key) (cart.Key, error) {
	p, _, err := c.resolve(key)
	if err != nil {
		return "", err
	}
	return p.DefaultKey(), nil
}

// Coordinates returns the attribute positions selected by key.
func (c *Catalog) Coordinates(key cart.Key) ([]int, error) {
	_, coords, err := c.resolve(key)
	if err != nil {
		return nil, err
	}
	return coords, nil
}

// BaseID returns the PID of key's product.
func (c *Catalog) BaseID(key cart.Key) (cart.PID, error) {
	p, _, err := c.resolve(key)
	if err != nil {
		return 0, err
	}
	return p.PID, nil
}

// AttributeLabel returns the name of the attribute key selects in dimension.
func (c *Catalog) AttributeLabel(key cart.Key, dimension int) (string, error) {
	p, coords, err := c.resolve(key)
	if err != nil {
		return "", err
	}
	if dimension < 0 || dimension >= len(coords) {
		return "", fmt.Errorf("%w %q: %w %d", ErrUnknownKey, key, ErrUnknownDimension, dimension)
	}
	return p.Dimensions[dimension].Attributes[coords[dimension]].Name, nil
}

// Keys enumerates every configuration of pid in lexicographic coordinate order.
func (c *Catalog) Keys(pid cart.PID) ([]cart.Key, error) {
	p, err := c.Product(pid)
	if err != nil {
		return nil, err
	}
	var out []cart.Key
	coords := make([]int, len(p.Dimensions))
	for {
		out = append(out, FormatKey(pid, coords))
		// Odometer increment, last dimension fastest.
		i := len(coords) - 1
		for ; i >= 0; i-- {
			coords[i]++
			if coords[i] < len(p.Dimensions[i].Attributes) {
				break
			}
			coords[i] = 0
		}
		if i < 0 {
			return out, nil
		}
	}
}

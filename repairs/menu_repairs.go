// SPDX-License-Identifier: MIT

package repairs

import (
	"fmt"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
)

// MenuRepairs is the catalog-aware cost model.
//
// It is immutable after construction and safe for concurrent use when the
// catalog is.
type MenuRepairs struct {
	catalog Catalog
	opts    options
}

var _ align.CostModel[cart.Item] = (*MenuRepairs)(nil)

// NewMenuRepairs returns a cost model reading names and attributes from catalog.
func NewMenuRepairs(catalog Catalog, opts ...Option) (*MenuRepairs, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	return &MenuRepairs{catalog: catalog, opts: gatherOptions(opts...)}, nil
}

// RepairCart computes the corrections turning observed into expected.
func (r *MenuRepairs) RepairCart(observed, expected cart.Cart) (align.DiffResult, error) {
	return repairCart(r, r.opts, observed, expected)
}

// Delete removes item and its options in one step.
func (r *MenuRepairs) Delete(item cart.Item) (align.Edit, error) {
	name, err := r.catalog.Name(item.Key)
	if err != nil {
		return align.Edit{}, err
	}
	return align.Edit{
		Op:    align.Delete,
		Cost:  1,
		Steps: []string{fmt.Sprintf("delete item(%s)", name)},
	}, nil
}

// Insert adds the default configuration of item's product, then one step
// per attribute that differs from the default, one for a non-unit quantity,
// and the inserts of every child.
func (r *MenuRepairs) Insert(item cart.Item) (align.Edit, error) {
	defaultKey, err := r.catalog.DefaultKey(item.Key)
	if err != nil {
		return align.Edit{}, err
	}
	defaultName, err := r.catalog.Name(defaultKey)
	if err != nil {
		return align.Edit{}, err
	}

	steps := []string{fmt.Sprintf("insert default item(%s)", defaultName)}
	if steps, err = r.attributeSteps(defaultKey, item.Key, defaultName, steps); err != nil {
		return align.Edit{}, err
	}
	if item.Quantity != 1 {
		name, err := r.catalog.Name(item.Key)
		if err != nil {
			return align.Edit{}, err
		}
		steps = append(steps, quantityStep(name, item.Quantity))
	}

	cost, steps, err := insertChildren(r, item.Children, float64(len(steps)), steps)
	if err != nil {
		return align.Edit{}, err
	}
	return align.Edit{Op: align.Insert, Cost: cost, Steps: steps}, nil
}

// Repair transforms observed into expected. Items of different products are
// replaced; otherwise each differing attribute, a quantity change and the
// aligned children are priced, capped at the replacement cost.
func (r *MenuRepairs) Repair(observed, expected cart.Item) (align.Edit, error) {
	op, err := r.catalog.BaseID(observed.Key)
	if err != nil {
		return align.Edit{}, err
	}
	ep, err := r.catalog.BaseID(expected.Key)
	if err != nil {
		return align.Edit{}, err
	}
	if op != ep {
		return replace(r, observed, expected)
	}

	var steps []string
	if observed.Key != expected.Key {
		name, err := r.catalog.Name(observed.Key)
		if err != nil {
			return align.Edit{}, err
		}
		if steps, err = r.attributeSteps(observed.Key, expected.Key, name, steps); err != nil {
			return align.Edit{}, err
		}
	}
	if observed.Quantity != expected.Quantity {
		name, err := r.catalog.Name(expected.Key)
		if err != nil {
			return align.Edit{}, err
		}
		steps = append(steps, quantityStep(name, expected.Quantity))
	}

	cost, steps, err := repairChildren(r, r.opts, observed.Children, expected.Children, float64(len(steps)), steps)
	if err != nil {
		return align.Edit{}, err
	}
	return capRepair(r, align.Edit{Op: align.Repair, Cost: cost, Steps: steps}, observed, expected)
}

// attributeSteps appends one step per coordinate where from and to differ.
func (r *MenuRepairs) attributeSteps(from, to cart.Key, name string, steps []string) ([]string, error) {
	if from == to {
		return steps, nil
	}
	a, err := r.catalog.Coordinates(from)
	if err != nil {
		return nil, err
	}
	b, err := r.catalog.Coordinates(to)
	if err != nil {
		return nil, err
	}
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: %q and %q", ErrCoordinateMismatch, from, to)
	}
	for i := range a {
		if a[i] == b[i] {
			continue
		}
		was, err := r.catalog.AttributeLabel(from, i)
		if err != nil {
			return nil, err
		}
		now, err := r.catalog.AttributeLabel(to, i)
		if err != nil {
			return nil, err
		}
		steps = append(steps, fmt.Sprintf("change item(%s) attribute %q to %q", name, was, now))
	}
	return steps, nil
}

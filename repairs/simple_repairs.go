// SPDX-License-Identifier: MIT

package repairs

import (
	"fmt"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
)

// SimpleRepairs is the identity-only cost model. Keys are compared as
// opaque ids, so any key change is a replacement.
type SimpleRepairs struct {
	opts options
}

var _ align.CostModel[cart.Item] = (*SimpleRepairs)(nil)

// NewSimpleRepairs returns an identity-only cost model.
func NewSimpleRepairs(opts ...Option) *SimpleRepairs {
	return &SimpleRepairs{opts: gatherOptions(opts...)}
}

// RepairCart computes the corrections turning observed into expected.
func (r *SimpleRepairs) RepairCart(observed, expected cart.Cart) (align.DiffResult, error) {
	return repairCart(r, r.opts, observed, expected)
}

// Delete removes item and its children in one step.
func (r *SimpleRepairs) Delete(item cart.Item) (align.Edit, error) {
	return align.Edit{
		Op:    align.Delete,
		Cost:  1,
		Steps: []string{fmt.Sprintf("delete item(%s)", item.Key)},
	}, nil
}

// Insert adds item, sets a non-unit quantity, and inserts every child.
func (r *SimpleRepairs) Insert(item cart.Item) (align.Edit, error) {
	steps := []string{fmt.Sprintf("insert item(%s)", item.Key)}
	if item.Quantity != 1 {
		steps = append(steps, quantityStep(string(item.Key), item.Quantity))
	}
	cost, steps, err := insertChildren(r, item.Children, float64(len(steps)), steps)
	if err != nil {
		return align.Edit{}, err
	}
	return align.Edit{Op: align.Insert, Cost: cost, Steps: steps}, nil
}

// Repair replaces items with different keys; otherwise it prices a quantity
// change and the aligned children.
func (r *SimpleRepairs) Repair(observed, expected cart.Item) (align.Edit, error) {
	if observed.Key != expected.Key {
		return replace(r, observed, expected)
	}
	var steps []string
	if observed.Quantity != expected.Quantity {
		steps = append(steps, quantityStep(string(expected.Key), expected.Quantity))
	}
	cost, steps, err := repairChildren(r, r.opts, observed.Children, expected.Children, float64(len(steps)), steps)
	if err != nil {
		return align.Edit{}, err
	}
	return capRepair(r, align.Edit{Op: align.Repair, Cost: cost, Steps: steps}, observed, expected)
}

// SPDX-License-Identifier: MIT

package repairs

import (
	"fmt"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
	"go.uber.org/zap"
)

// replace prices observed → expected as delete + insert minus Epsilon.
func replace(model align.CostModel[cart.Item], observed, expected cart.Item) (align.Edit, error) {
	d, err := model.Delete(observed)
	if err != nil {
		return align.Edit{}, err
	}
	i, err := model.Insert(expected)
	if err != nil {
		return align.Edit{}, err
	}
	return replacement(d, i), nil
}

func replacement(d, i align.Edit) align.Edit {
	steps := make([]string, 0, len(d.Steps)+len(i.Steps))
	steps = append(steps, d.Steps...)
	steps = append(steps, i.Steps...)
	return align.Edit{Op: align.Repair, Cost: d.Cost + i.Cost - Epsilon, Steps: steps}
}

// capRepair returns e unless replacing observed outright is no more
// expensive, in which case the discounted replacement wins.
//
// Delete is one step, but Insert walks the whole expected subtree, so every
// non-zero repair cell costs an extra O(size(expected)) on top of the
// aligners' own once-per-element pricing.
func capRepair(model align.CostModel[cart.Item], e align.Edit, observed, expected cart.Item) (align.Edit, error) {
	if e.Cost == 0 {
		return e, nil
	}
	d, err := model.Delete(observed)
	if err != nil {
		return align.Edit{}, err
	}
	i, err := model.Insert(expected)
	if err != nil {
		return align.Edit{}, err
	}
	if e.Cost < d.Cost+i.Cost {
		return e, nil
	}
	return replacement(d, i), nil
}

// quantityStep explains a quantity change.
func quantityStep(name string, quantity int) string {
	return fmt.Sprintf("change item(%s) quantity to %d", name, quantity)
}

// insertChildren appends the indented insert steps of every child.
func insertChildren(model align.CostModel[cart.Item], children []cart.Item, cost float64, steps []string) (float64, []string, error) {
	for i := range children {
		e, err := model.Insert(children[i])
		if err != nil {
			return 0, nil, err
		}
		cost += e.Cost
		steps = append(steps, align.IndentSteps([]align.Edit{e}, indent)...)
	}
	return cost, steps, nil
}

// repairChildren aligns two child lists with the configured engine and
// appends the indented result.
func repairChildren(model align.CostModel[cart.Item], o options, observed, expected []cart.Item, cost float64, steps []string) (float64, []string, error) {
	if len(observed) == 0 && len(expected) == 0 {
		return cost, steps, nil
	}
	res, err := o.aligner(model, observed, expected)
	if err != nil {
		return 0, nil, err
	}
	return cost + res.Cost, append(steps, align.IndentSteps(res.Edits, indent)...), nil
}

// repairCart aligns the top-level items and reports each edit at one cost
// unit per step, dropping the fractional tie-break discounts used while solving.
func repairCart(model align.CostModel[cart.Item], o options, observed, expected cart.Cart) (align.DiffResult, error) {
	res, err := o.aligner(model, observed.Items, expected.Items)
	if err != nil {
		return align.DiffResult{}, fmt.Errorf("repairs: %w", err)
	}
	out := Normalize(res)
	o.logger.Debug("repaired cart",
		zap.Int("observed", len(observed.Items)),
		zap.Int("expected", len(expected.Items)),
		zap.Float64("solverCost", res.Cost),
		zap.Float64("cost", out.Cost),
		zap.Int("edits", len(out.Edits)))
	return out, nil
}

// Normalize rewrites every edit's cost to its number of steps and re-sums
// the total. It does not modify res.
func Normalize(res align.DiffResult) align.DiffResult {
	out := align.DiffResult{Edits: make([]align.Edit, 0, len(res.Edits))}
	for _, e := range res.Edits {
		e.Cost = float64(len(e.Steps))
		out.Edits = append(out.Edits, e)
		out.Cost += e.Cost
	}
	return out
}

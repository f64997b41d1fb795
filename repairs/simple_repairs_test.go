package repairs_test

import (
	"testing"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
	"github.com/MikeHopcroft/PrixFixe-sub000/repairs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSimple_Insert prices the item, its quantity and its children.
func TestSimple_Insert(t *testing.T) {
	r := repairs.NewSimpleRepairs()
	e, err := r.Insert(item("latte", 3, item("oat-milk", 1), item("syrup", 2)))
	require.NoError(t, err)
	assert.Equal(t, align.Insert, e.Op)
	assert.Equal(t, []string{
		"insert item(latte)",
		"change item(latte) quantity to 3",
		"  insert item(oat-milk)",
		"  insert item(syrup)",
		"  change item(syrup) quantity to 2",
	}, e.Steps)
	assert.Equal(t, 5.0, e.Cost)
}

// TestSimple_Delete is one step regardless of subtree size.
func TestSimple_Delete(t *testing.T) {
	e, err := repairs.NewSimpleRepairs().Delete(item("latte", 3, item("oat-milk", 1)))
	require.NoError(t, err)
	assert.Equal(t, align.Edit{Op: align.Delete, Cost: 1, Steps: []string{"delete item(latte)"}}, e)
}

// TestSimple_RepairDifferentKeys replaces with the discount applied.
func TestSimple_RepairDifferentKeys(t *testing.T) {
	e, err := repairs.NewSimpleRepairs().Repair(item("latte", 1), item("mocha", 1))
	require.NoError(t, err)
	assert.Equal(t, align.Repair, e.Op)
	assert.Equal(t, []string{"delete item(latte)", "insert item(mocha)"}, e.Steps)
	assert.InDelta(t, 2-repairs.Epsilon, e.Cost, 1e-12)
}

// TestSimple_RepairCart covers quantity and child presence.
func TestSimple_RepairCart(t *testing.T) {
	r := repairs.NewSimpleRepairs()
	observed := cart.New(
		item("latte", 1, item("oat-milk", 1), item("syrup", 1)),
		item("muffin", 1),
	)
	expected := cart.New(
		item("muffin", 2),
		item("latte", 1, item("oat-milk", 1), item("foam", 1)),
	)

	res, err := r.RepairCart(observed, expected)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Cost)
	assert.ElementsMatch(t, []string{
		"REPAIR|  delete item(syrup)|  insert item(foam)",
		"REPAIR|change item(muffin) quantity to 2",
	}, signatures(res.Edits))

	res, err = r.RepairCart(observed, observed.Clone())
	require.NoError(t, err)
	assert.Equal(t, 0.0, res.Cost)
	assert.Empty(t, res.Edits)
}

// TestSimple_CappedByReplacement: when the children differ completely a
// fresh item is no more expensive than fixing the old one.
func TestSimple_CappedByReplacement(t *testing.T) {
	r := repairs.NewSimpleRepairs()
	e, err := r.Repair(item("latte", 2, item("a", 1), item("b", 1)), item("latte", 1))
	require.NoError(t, err)
	assert.Equal(t, []string{"delete item(latte)", "insert item(latte)"}, e.Steps)
	assert.InDelta(t, 2-repairs.Epsilon, e.Cost, 1e-12)
}

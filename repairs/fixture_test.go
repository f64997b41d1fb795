package repairs_test

import (
	"testing"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
	"github.com/MikeHopcroft/PrixFixe-sub000/menu"
	"github.com/MikeHopcroft/PrixFixe-sub000/repairs"
	"github.com/stretchr/testify/require"
)

// Keys used throughout the tests.
const (
	smallCoffee  cart.Key = "9000:0:0:0"
	largeIced    cart.Key = "9000:2:1:0"
	largeIcedDec cart.Key = "9000:2:1:1"
	mediumLatte  cart.Key = "9100:1:0"
	smallLatte   cart.Key = "9100:0:0"
	wholeMilk    cart.Key = "5000:0"
	oatMilk      cart.Key = "5001:0"
	whipped      cart.Key = "6000:0"
	extraWhipped cart.Key = "6000:2"
	sugar        cart.Key = "7000"
	muffin       cart.Key = "10000"
)

var _ repairs.Catalog = (*menu.Catalog)(nil)

func coffeeSpec() menu.Spec {
	hiddenFirst := func(name string, attrs ...string) menu.DimensionSpec {
		d := menu.DimensionSpec{Name: name}
		for i, a := range attrs {
			d.Attributes = append(d.Attributes, menu.AttributeSpec{Name: a, Hidden: i == 0})
		}
		return d
	}
	return menu.Spec{
		Dimensions: []menu.DimensionSpec{
			{Name: "size", Attributes: []menu.AttributeSpec{{Name: "small"}, {Name: "medium"}, {Name: "large"}}},
			hiddenFirst("temperature", "hot", "iced"),
			hiddenFirst("caffeine", "regular", "decaf"),
			hiddenFirst("amount", "regular", "light", "extra"),
		},
		Products: []menu.ProductSpec{
			{PID: 9000, Name: "coffee", Dimensions: []string{"size", "temperature", "caffeine"}},
			{PID: 9100, Name: "latte", Dimensions: []string{"size", "temperature"}, Defaults: []int{1, 0}},
			{PID: 5000, Name: "whole milk", Dimensions: []string{"amount"}},
			{PID: 5001, Name: "oat milk", Dimensions: []string{"amount"}},
			{PID: 6000, Name: "whipped cream", Dimensions: []string{"amount"}},
			{PID: 7000, Name: "sugar"},
			{PID: 10000, Name: "blueberry muffin"},
		},
	}
}

func newMenuRepairs(t testing.TB, opts ...repairs.Option) *repairs.MenuRepairs {
	t.Helper()
	catalog, err := menu.New(coffeeSpec())
	require.NoError(t, err)
	r, err := repairs.NewMenuRepairs(catalog, opts...)
	require.NoError(t, err)
	return r
}

func item(key cart.Key, qty int, children ...cart.Item) cart.Item {
	return cart.NewItem(key, qty, children...)
}

// signatures renders edits as comparable strings for multiset comparison.
func signatures(edits []align.Edit) []string {
	out := make([]string, len(edits))
	for i, e := range edits {
		s := e.Op.String()
		for _, step := range e.Steps {
			s += "|" + step
		}
		out[i] = s
	}
	return out
}

package align_test

import (
	"fmt"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
)

// ExampleMultiset pairs siblings regardless of their order.
func ExampleMultiset() {
	res, err := align.Multiset[string](&letters{}, []string{"a1", "b1"}, []string{"b1", "a2"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	for _, e := range res.Edits {
		fmt.Println(e.Op, e.Steps)
	}
	// Output:
	// cost: 1
	// REPAIR [change a1 to a2]
}

// ExampleSequence keeps order, so the crossed pair costs a delete and an insert.
func ExampleSequence() {
	res, err := align.Sequence[string](&letters{}, []string{"a1", "b1"}, []string{"b1", "a2"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	for _, e := range res.Edits {
		fmt.Println(e.Op, e.Steps)
	}
	// Output:
	// cost: 2
	// DELETE [delete a1]
	// INSERT [insert a2]
}

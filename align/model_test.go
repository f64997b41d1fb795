package align_test

import (
	"errors"
	"strings"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
)

var errBoom = errors.New("boom")

// letters is a toy cost model over short tokens such as "a1" or "b2".
// Tokens sharing a first letter are the same product and repair for 1 unit;
// different products repair as delete+insert minus discount.
type letters struct {
	discount float64
	calls    int
}

func (l *letters) Delete(s string) (align.Edit, error) {
	l.calls++
	if s == "boom" {
		return align.Edit{}, errBoom
	}
	return align.Edit{Op: align.Delete, Cost: 1, Steps: []string{"delete " + s}}, nil
}

func (l *letters) Insert(s string) (align.Edit, error) {
	l.calls++
	if s == "boom" {
		return align.Edit{}, errBoom
	}
	return align.Edit{Op: align.Insert, Cost: 1, Steps: []string{"insert " + s}}, nil
}

func (l *letters) Repair(o, e string) (align.Edit, error) {
	l.calls++
	if o == "boom" || e == "boom" {
		return align.Edit{}, errBoom
	}
	if o == e {
		return align.Edit{Op: align.Repair}, nil
	}
	if o[:1] == e[:1] {
		return align.Edit{Op: align.Repair, Cost: 1, Steps: []string{"change " + o + " to " + e}}, nil
	}
	return align.Edit{
		Op:    align.Repair,
		Cost:  2 - l.discount,
		Steps: []string{"delete " + o, "insert " + e},
	}, nil
}

// ops lists the op of every edit.
func ops(edits []align.Edit) []align.Op {
	out := make([]align.Op, len(edits))
	for i := range edits {
		out[i] = edits[i].Op
	}
	return out
}

// sumCosts totals edit costs.
func sumCosts(edits []align.Edit) float64 {
	s := 0.0
	for i := range edits {
		s += edits[i].Cost
	}
	return s
}

// signature renders an edit as a comparable string.
func signature(e align.Edit) string {
	return e.Op.String() + ":" + strings.Join(e.Steps, "|")
}

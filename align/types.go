// SPDX-License-Identifier: MIT

package align

import (
	"errors"
	"fmt"
)

// ErrNilModel is returned when an engine is invoked without a cost model.
var ErrNilModel = errors.New("align: nil cost model")

// Op tags an Edit.
type Op int

const (
	// None marks the zero-cost origin of an alignment. It never appears in a DiffResult.
	None Op = iota

	// Delete removes an observed element and its subtree.
	Delete

	// Insert adds an expected element and its subtree.
	Insert

	// Repair transforms an observed element into an expected one.
	Repair
)

var opNames = [...]string{"NONE", "DELETE", "INSERT", "REPAIR"}

// String returns the upper-case op name.
func (o Op) String() string {
	if o < None || int(o) >= len(opNames) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opNames[o]
}

// MarshalText renders the op by name in YAML/JSON reports.
func (o Op) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Edit is one correction operation.
//
// Cost may be fractional while an alignment is being solved (cost models
// apply small tie-break discounts); Steps is the human-readable explanation,
// one line per unit of work.
type Edit struct {
	Op    Op       `yaml:"op" json:"op"`
	Cost  float64  `yaml:"cost" json:"cost"`
	Steps []string `yaml:"steps" json:"steps"`
}

// DiffResult is the outcome of an alignment: the chosen non-zero-cost Edits
// and their summed Cost.
type DiffResult struct {
	Cost  float64 `yaml:"cost" json:"cost"`
	Edits []Edit  `yaml:"edits" json:"edits"`
}

// CostModel prices the three edit operations for elements of type T.
//
// Implementations must be pure given their inputs. Errors (for example an
// unknown catalog key) are fatal and are propagated unchanged by the engines.
type CostModel[T any] interface {
	// Delete prices removing observed and its entire subtree as one unit.
	Delete(observed T) (Edit, error)

	// Insert prices adding expected and its entire subtree.
	Insert(expected T) (Edit, error)

	// Repair prices transforming observed into expected.
	Repair(observed, expected T) (Edit, error)
}

// Aligner is the signature shared by Sequence and Multiset, so callers can
// swap engines without changing the cost model.
type Aligner[T any] func(model CostModel[T], observed, expected []T) (DiffResult, error)

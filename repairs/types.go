// SPDX-License-Identifier: MIT

package repairs

import (
	"errors"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
	"go.uber.org/zap"
)

// Epsilon is the discount applied when a repair degenerates into
// delete + insert. It must stay well below one cost unit.
const Epsilon = 0.001

// indent prefixes the steps of every nested level.
const indent = "  "

var (
	// ErrNilCatalog is returned by NewMenuRepairs without a catalog.
	ErrNilCatalog = errors.New("repairs: nil catalog")

	// ErrCoordinateMismatch indicates two configurations of one product
	// whose coordinate vectors differ in length.
	ErrCoordinateMismatch = errors.New("repairs: coordinate vectors differ in length")
)

// Catalog is what MenuRepairs needs from a product catalog. Every lookup
// fails on an unknown key; such failures abort the whole repair.
type Catalog interface {
	// Name returns the human-readable name of a specific item.
	Name(key cart.Key) (string, error)

	// DefaultKey returns the default configuration of key's generic product.
	DefaultKey(key cart.Key) (cart.Key, error)

	// Coordinates returns key's attribute positions, one per dimension.
	Coordinates(key cart.Key) ([]int, error)

	// BaseID returns key's base product.
	BaseID(key cart.Key) (cart.PID, error)

	// AttributeLabel names the attribute key selects in one dimension.
	AttributeLabel(key cart.Key, dimension int) (string, error)
}

// Option configures a cost model.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	aligner align.Aligner[cart.Item]
}

// WithLogger sets the logger used for per-cart debug events.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithAligner selects the alignment engine used at every tree level.
// The default is align.Multiset; align.Sequence makes sibling order significant.
func WithAligner(a align.Aligner[cart.Item]) Option {
	if a == nil {
		panic("repairs: WithAligner: nil aligner")
	}
	return func(o *options) { o.aligner = a }
}

func gatherOptions(opts ...Option) options {
	o := options{
		logger:  zap.NewNop(),
		aligner: align.Multiset[cart.Item],
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

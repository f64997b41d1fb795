// SPDX-License-Identifier: MIT

package scoring

import (
	"errors"
	"runtime"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
	"go.uber.org/zap"
)

var (
	// ErrNilRepairer is returned by NewScorer without a Repairer.
	ErrNilRepairer = errors.New("scoring: nil repairer")

	// ErrInvalidSuite wraps every structural problem found in a suite.
	ErrInvalidSuite = errors.New("scoring: invalid suite")

	// ErrDuplicateID indicates two cases sharing an explicit id.
	ErrDuplicateID = errors.New("scoring: duplicate case id")
)

// Repairer computes the repairs turning observed into expected.
// Both repairs.MenuRepairs and repairs.SimpleRepairs satisfy it.
type Repairer interface {
	RepairCart(observed, expected cart.Cart) (align.DiffResult, error)
}

// Suite is an ordered collection of test cases.
type Suite struct {
	Cases []Case `yaml:"cases" validate:"required,min=1,dive"`
}

// Case is one observed/expected pair. An empty ID is replaced by a random
// UUID when the case is scored.
type Case struct {
	ID       string    `yaml:"id,omitempty" validate:"omitempty,max=128"`
	Comment  string    `yaml:"comment,omitempty"`
	Observed cart.Cart `yaml:"observed"`
	Expected cart.Cart `yaml:"expected"`
}

// Result is the outcome of one case.
type Result struct {
	ID     string           `json:"id"`
	Diff   align.DiffResult `json:"diff"`
	Passed bool             `json:"passed"`
}

// Aggregate summarizes a Report.
type Aggregate struct {
	Cases        int     `json:"cases"`
	Passed       int     `json:"passed"`
	Failed       int     `json:"failed"`
	TotalRepairs float64 `json:"totalRepairs"`
	PassRate     float64 `json:"passRate"` // Passed/Cases; 0 for an empty suite
}

// Report holds per-case results in suite order and their aggregate.
type Report struct {
	Results   []Result  `json:"results"`
	Aggregate Aggregate `json:"aggregate"`
}

// Option configures a Scorer.
type Option func(*options)

type options struct {
	logger      *zap.Logger
	concurrency int
}

// WithLogger sets the logger for per-case debug events and the summary.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithConcurrency bounds the number of cases scored at once.
// The default is GOMAXPROCS. Panics if n < 1.
func WithConcurrency(n int) Option {
	if n < 1 {
		panic("scoring: WithConcurrency: n must be >= 1")
	}
	return func(o *options) { o.concurrency = n }
}

func gatherOptions(opts ...Option) options {
	o := options{
		logger:      zap.NewNop(),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

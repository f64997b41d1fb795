// SPDX-License-Identifier: MIT

package scoring

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Scorer runs a Repairer over suites. It is safe for concurrent use when the
// Repairer is.
type Scorer struct {
	repairer Repairer
	opts     options
}

// NewScorer returns a Scorer backed by r.
func NewScorer(r Repairer, opts ...Option) (*Scorer, error) {
	if r == nil {
		return nil, ErrNilRepairer
	}
	return &Scorer{repairer: r, opts: gatherOptions(opts...)}, nil
}

// Score repairs every case of suite and aggregates the results.
//
// At most the configured number of cases run at once. The first repair
// error, wrapped with its case id, cancels the remaining cases and is
// returned with an empty Report. Cancelling ctx stops scheduling new cases
// and returns ctx.Err().
func (s *Scorer) Score(ctx context.Context, suite Suite) (Report, error) {
	results := make([]Result, len(suite.Cases))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(s.opts.concurrency)
	for i := range suite.Cases {
		i := i
		if egCtx.Err() != nil {
			break
		}
		c := suite.Cases[i]
		if c.ID == "" {
			c.ID = uuid.NewString()
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			diff, err := s.repairer.RepairCart(c.Observed, c.Expected)
			if err != nil {
				return fmt.Errorf("scoring: case %s: %w", c.ID, err)
			}
			results[i] = Result{ID: c.ID, Diff: diff, Passed: diff.Cost == 0}
			s.opts.logger.Debug("scored case",
				zap.String("id", c.ID),
				zap.Int("observedItems", c.Observed.Size()),
				zap.Int("expectedItems", c.Expected.Size()),
				zap.Float64("cost", diff.Cost),
				zap.Int("edits", len(diff.Edits)))
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return Report{}, err
	}
	// Wait succeeds if ctx was cancelled before any case was scheduled.
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	rep := Report{Results: results, Aggregate: Summarize(results)}
	s.opts.logger.Info("scored suite",
		zap.Int("cases", rep.Aggregate.Cases),
		zap.Int("passed", rep.Aggregate.Passed),
		zap.Int("failed", rep.Aggregate.Failed),
		zap.Float64("repairs", rep.Aggregate.TotalRepairs))
	return rep, nil
}

// Summarize aggregates results.
func Summarize(results []Result) Aggregate {
	agg := Aggregate{Cases: len(results)}
	for i := range results {
		if results[i].Passed {
			agg.Passed++
		} else {
			agg.Failed++
		}
		agg.TotalRepairs += results[i].Diff.Cost
	}
	if agg.Cases > 0 {
		agg.PassRate = float64(agg.Passed) / float64(agg.Cases)
	}
	return agg
}

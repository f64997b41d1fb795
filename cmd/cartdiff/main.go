// SPDX-License-Identifier: MIT

// Command cartdiff explains how an observed cart differs from an expected one
// and scores whole suites of such pairs.
//
// Usage:
//
//	cartdiff diff observed.yaml expected.yaml --menu coffee.yaml
//	cartdiff score suite.yaml --menu coffee.yaml --concurrency 8
//	cartdiff diff a.yaml b.yaml --simple --positional
//	cartdiff keys --menu coffee.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MikeHopcroft/PrixFixe-sub000/align"
	"github.com/MikeHopcroft/PrixFixe-sub000/cart"
	"github.com/MikeHopcroft/PrixFixe-sub000/menu"
	"github.com/MikeHopcroft/PrixFixe-sub000/repairs"
	"github.com/MikeHopcroft/PrixFixe-sub000/scoring"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the global flags and the logger shared by every subcommand.
type app struct {
	verbose    bool
	menuPath   string
	simple     bool
	positional bool

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "cartdiff",
		Short: "Explain and score the repairs between shopping carts",
		Long: `cartdiff computes the minimal list of human-readable repairs (deletes,
inserts, attribute and quantity changes) that turn an observed cart into
the expected one.

With --menu, items are read through a product catalog so that a wrong
size or temperature costs one step instead of a replacement. With
--simple, keys are compared as opaque ids.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVarP(&a.menuPath, "menu", "m", "", "Catalog YAML used to name items and compare attributes")
	root.PersistentFlags().BoolVar(&a.simple, "simple", false, "Compare keys as opaque ids (no catalog)")
	root.PersistentFlags().BoolVar(&a.positional, "positional", false, "Make sibling order significant")

	root.AddCommand(newDiffCmd(a))
	root.AddCommand(newScoreCmd(a))
	root.AddCommand(newKeysCmd(a))
	return root
}

// repairer builds the cost model selected by the global flags.
func (a *app) repairer() (scoring.Repairer, error) {
	opts := []repairs.Option{repairs.WithLogger(a.logger)}
	if a.positional {
		opts = append(opts, repairs.WithAligner(align.Sequence[cart.Item]))
	}

	if a.simple {
		return repairs.NewSimpleRepairs(opts...), nil
	}
	if a.menuPath == "" {
		return nil, fmt.Errorf("either --menu or --simple is required")
	}
	catalog, err := menu.LoadFile(a.menuPath)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded catalog",
		zap.String("path", a.menuPath),
		zap.Int("products", len(catalog.Products())))
	r, err := repairs.NewMenuRepairs(catalog, opts...)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

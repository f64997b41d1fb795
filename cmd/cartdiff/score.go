// SPDX-License-Identifier: MIT

package main

import (
	"runtime"

	"github.com/MikeHopcroft/PrixFixe-sub000/scoring"
	"github.com/spf13/cobra"
)

func newScoreCmd(a *app) *cobra.Command {
	var (
		concurrency int
		details     bool
	)
	cmd := &cobra.Command{
		Use:   "score <suite.yaml>",
		Short: "Score every case of a test suite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			suite, err := scoring.LoadSuiteFile(args[0])
			if err != nil {
				return err
			}
			r, err := a.repairer()
			if err != nil {
				return err
			}
			if concurrency < 1 {
				concurrency = 1
			}
			s, err := scoring.NewScorer(r,
				scoring.WithLogger(a.logger),
				scoring.WithConcurrency(concurrency))
			if err != nil {
				return err
			}

			rep, err := s.Score(cmd.Context(), suite)
			if err != nil {
				return err
			}
			renderReport(cmd.OutOrStdout(), rep, details)
			return nil
		},
	}
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", runtime.GOMAXPROCS(0), "Cases scored in parallel")
	cmd.Flags().BoolVar(&details, "details", false, "List the repairs of failing cases")
	return cmd
}

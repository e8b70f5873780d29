// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/rieszsel/dataset"
	"github.com/katalvlaran/rieszsel/report"
	"github.com/katalvlaran/rieszsel/riesz"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// errDivergence is returned by compare --fail-on-divergence.
var errDivergence = errors.New("dp diverged from brute force")

func (a *app) newCompareCmd() *cobra.Command {
	var (
		paths     []string
		jobs      int
		failOnDiv bool
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run DP and brute force on datasets and report agreement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.solverOptions()
			if err != nil {
				return err
			}
			var list []dataset.Dataset
			for _, p := range paths {
				part, err := dataset.Load(p)
				if err != nil {
					return err
				}
				list = append(list, part...)
			}

			results, err := a.compareAll(cmd, list, opts, jobs)
			if err != nil {
				return err
			}

			diverged := 0
			out := cmd.OutOrStdout()
			for i, ds := range list {
				fmt.Fprintf(out, "Dataset %s: n=%d, k=%d, s=%g\n", ds.Name, ds.Len(), ds.K, ds.S)
				if err = report.WriteComparison(out, ds, results[i]); err != nil {
					return err
				}
				if !results[i].Match {
					diverged++
				}
			}
			a.log.WithField("datasets", len(list)).WithField("diverged", diverged).Info("comparison finished")
			if failOnDiv && diverged > 0 {
				return fmt.Errorf("%d of %d datasets: %w", diverged, len(list), errDivergence)
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringSliceVarP(&paths, "file", "f", nil, "YAML dataset file (repeatable)")
	f.IntVarP(&jobs, "jobs", "j", runtime.NumCPU(), "datasets compared in parallel")
	f.BoolVar(&failOnDiv, "fail-on-divergence", false, "exit non-zero when any dataset diverges")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

// compareAll compares datasets concurrently, at most jobs at a time.
// Results keep the input order. Each goroutine owns its solver state.
func (a *app) compareAll(cmd *cobra.Command, list []dataset.Dataset, opts riesz.Options, jobs int) ([]riesz.Comparison, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]riesz.Comparison, len(list))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(jobs)
	for i := range list {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cmp, err := a.compareOne(list[i], opts)
			if err != nil {
				return err
			}
			results[i] = cmp

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

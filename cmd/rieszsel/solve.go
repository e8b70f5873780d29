// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/rieszsel/dataset"
	"github.com/katalvlaran/rieszsel/report"
	"github.com/spf13/cobra"
)

func (a *app) newSolveCmd() *cobra.Command {
	var (
		path   string
		method string
		k      int
		s      float64
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve every dataset of a YAML file with the chosen method",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch method {
			case methodDP, methodBrute, methodBoth:
			default:
				return fmt.Errorf("unknown method %q (want dp|brute|both)", method)
			}
			opts, err := a.solverOptions()
			if err != nil {
				return err
			}
			list, err := dataset.Load(path)
			if err != nil {
				return err
			}
			var kFlag *int
			if cmd.Flags().Changed("k") {
				kFlag = &k
			}
			var sFlag *float64
			if cmd.Flags().Changed("s") {
				sFlag = &s
			}
			override(list, kFlag, sFlag)

			out := cmd.OutOrStdout()
			for _, ds := range list {
				fmt.Fprintf(out, "Dataset %s: n=%d, k=%d, s=%g\n", ds.Name, ds.Len(), ds.K, ds.S)
				if method == methodBoth {
					cmp, err := a.compareOne(ds, opts)
					if err != nil {
						return err
					}
					if err = report.WriteComparison(out, ds, cmp); err != nil {
						return err
					}
					continue
				}
				res, err := a.solveOne(ds, method, opts)
				if err != nil {
					return err
				}
				label := "DP"
				if method == methodBrute {
					label = "Brute Force"
				}
				if err = report.WriteResult(out, label, ds, res); err != nil {
					return err
				}
			}

			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&path, "file", "f", "", "YAML dataset file")
	f.StringVarP(&method, "method", "m", methodBoth, "solver: dp|brute|both")
	f.IntVar(&k, "k", 0, "override k of every dataset")
	f.Float64Var(&s, "s", 0, "override s of every dataset")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

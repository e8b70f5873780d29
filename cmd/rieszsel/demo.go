// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/rieszsel/dataset"
	"github.com/katalvlaran/rieszsel/report"
	"github.com/spf13/cobra"
)

func (a *app) newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the built-in worked examples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.solverOptions()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, ds := range dataset.Builtin() {
				fmt.Fprintf(out, "Example %d (%s): k=%d, s=%g\n", i+1, ds.Name, ds.K, ds.S)
				for j := 0; j < ds.Len(); j++ {
					fmt.Fprintf(out, "P%d: %s\n", j+1, ds.Point(j))
				}
				cmp, err := a.compareOne(ds, opts)
				if err != nil {
					return err
				}
				if err = report.WriteComparison(out, ds, cmp); err != nil {
					return err
				}
			}

			return nil
		},
	}
}

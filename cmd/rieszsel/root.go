// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"

	"github.com/katalvlaran/rieszsel/riesz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// app wires the command tree to one logger and one set of global flags.
type app struct {
	root *cobra.Command
	log  *logrus.Logger

	memory          string
	maxCombinations int64
	verbose         bool
	logFormat       string
}

func newApp(out, errOut io.Writer) *app {
	a := &app{log: logrus.New()}
	a.log.SetOutput(errOut)

	a.root = &cobra.Command{
		Use:           "rieszsel",
		Short:         "Select k points minimizing the Riesz s-energy",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setupLogging()
		},
	}
	a.root.SetOut(out)
	a.root.SetErr(errOut)

	pf := a.root.PersistentFlags()
	pf.StringVar(&a.memory, "memory", riesz.PairTable.String(), "pair energy storage: table|fly")
	pf.Int64Var(&a.maxCombinations, "max-combinations", 50_000_000, "brute-force budget on C(n,k), 0 = unlimited")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text|json")

	a.root.AddCommand(a.newSolveCmd(), a.newCompareCmd(), a.newDemoCmd())

	return a
}

func (a *app) setupLogging() error {
	level := logrus.InfoLevel
	if a.verbose {
		level = logrus.DebugLevel
	}
	a.log.SetLevel(level)

	switch a.logFormat {
	case "text":
		a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		a.log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %q", a.logFormat)
	}

	return nil
}

// solverOptions converts the global flags into riesz.Options.
func (a *app) solverOptions() (riesz.Options, error) {
	opts := riesz.DefaultOptions()
	switch a.memory {
	case riesz.PairTable.String():
		opts.MemoryMode = riesz.PairTable
	case riesz.OnTheFly.String():
		opts.MemoryMode = riesz.OnTheFly
	default:
		return opts, fmt.Errorf("unknown memory mode %q", a.memory)
	}
	opts.MaxCombinations = a.maxCombinations

	return opts, nil
}

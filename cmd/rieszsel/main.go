// SPDX-License-Identifier: MIT

// Command rieszsel picks minimum Riesz s-energy subsets of point sequences
// with the DP heuristic and the brute-force oracle.
//
//	rieszsel demo
//	rieszsel solve   -f points.yaml --method dp --k 5
//	rieszsel compare -f a.yaml -f b.yaml --jobs 4 --fail-on-divergence
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := newApp(os.Stdout, os.Stderr)
	if err := app.root.ExecuteContext(ctx); err != nil {
		app.log.WithError(err).Error("rieszsel failed")
		stop()
		os.Exit(1)
	}
}

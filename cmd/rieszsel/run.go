// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"time"

	"github.com/katalvlaran/rieszsel/dataset"
	"github.com/katalvlaran/rieszsel/riesz"
	"github.com/sirupsen/logrus"
)

const (
	methodDP    = "dp"
	methodBrute = "brute"
	methodBoth  = "both"
)

// fields describes a dataset in log entries.
func fields(ds dataset.Dataset) logrus.Fields {
	return logrus.Fields{
		"dataset": ds.Name,
		"dim":     ds.Dim(),
		"n":       ds.Len(),
		"k":       ds.K,
		"s":       ds.S,
	}
}

// solveOne runs a single solver and logs its timing.
func (a *app) solveOne(ds dataset.Dataset, method string, opts riesz.Options) (riesz.Result, error) {
	solve := riesz.SolveDP
	if method == methodBrute {
		solve = riesz.SolveBruteForce
	}

	start := time.Now()
	res, err := solve(ds.Space(), ds.K, ds.S, &opts)
	entry := a.log.WithFields(fields(ds)).WithField("method", method).WithField("elapsed", time.Since(start))
	if err != nil {
		return riesz.Result{}, fmt.Errorf("%s on %q: %w", method, ds.Name, err)
	}
	if !res.Found() {
		entry.Warn("no valid subset")
	} else {
		entry.WithField("energy", res.Energy).Debug("solved")
	}

	return res, nil
}

// compareOne runs the oracle comparison and logs divergence.
func (a *app) compareOne(ds dataset.Dataset, opts riesz.Options) (riesz.Comparison, error) {
	start := time.Now()
	cmp, err := riesz.Compare(ds.Space(), ds.K, ds.S, &opts)
	if err != nil {
		return riesz.Comparison{}, fmt.Errorf("compare on %q: %w", ds.Name, err)
	}
	entry := a.log.WithFields(fields(ds)).WithField("elapsed", time.Since(start))
	if cmp.Match {
		entry.Debug("dp matches brute force")
	} else {
		entry.WithFields(logrus.Fields{
			"dp_subset":    cmp.DP.Subset,
			"brute_subset": cmp.BruteForce.Subset,
			"gap":          cmp.EnergyGap,
		}).Warn("dp diverged from brute force")
	}

	return cmp, nil
}

// override replaces k and s of every dataset; nil leaves the file value.
// Values are copied as given so the solvers reject bad ones.
func override(list []dataset.Dataset, k *int, s *float64) {
	for i := range list {
		if k != nil {
			list[i].K = *k
		}
		if s != nil {
			list[i].S = *s
		}
	}
}

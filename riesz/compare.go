// SPDX-License-Identifier: MIT

package riesz

import (
	"math"
	"slices"
)

// Compare runs SolveDP and SolveBruteForce on the same input and reports
// whether they agree. It never reconciles the two results; it only exposes
// divergence of the DP heuristic from the exact oracle.
//
// Agreement means identical subsets and |E_dp − E_bf| < MatchTolerance.
// Two absent results also count as agreement.
//
// Errors: the first error returned by either solver.
//
// Complexity: that of SolveBruteForce.
func Compare(sp Space, k int, s float64, opts *Options) (Comparison, error) {
	dp, err := SolveDP(sp, k, s, opts)
	if err != nil {
		return Comparison{}, err
	}
	bf, err := SolveBruteForce(sp, k, s, opts)
	if err != nil {
		return Comparison{}, err
	}

	return compareResults(dp, bf), nil
}

// compareResults builds the Comparison of two solver results.
func compareResults(dp, bf Result) Comparison {
	c := Comparison{DP: dp, BruteForce: bf}
	if !dp.Found() && !bf.Found() {
		c.Match = true

		return c
	}

	c.EnergyGap = dp.Energy - bf.Energy
	c.Match = dp.Found() && bf.Found() &&
		slices.Equal(dp.Subset, bf.Subset) &&
		math.Abs(c.EnergyGap) < MatchTolerance

	return c
}

// SPDX-License-Identifier: MIT

// Package riesz_test holds small helpers shared across test files.
package riesz_test

import (
	"math/rand"

	"github.com/katalvlaran/rieszsel/riesz"
)

const (
	// seedDet keeps randomized property tests reproducible.
	seedDet = int64(42)

	// epsTiny is the tolerance for recomputed energies (summation order may differ).
	epsTiny = 1e-9
)

// randomLine returns n strictly increasing coordinates with gaps in [0.1, 1.1).
func randomLine(rng *rand.Rand, n int) riesz.Line {
	out := make(riesz.Line, n)
	x := rng.Float64()
	for i := range out {
		out[i] = x
		x += 0.1 + rng.Float64()
	}

	return out
}

// randomFront returns n points with X ascending and Y descending.
func randomFront(rng *rand.Rand, n int) riesz.Plane {
	out := make(riesz.Plane, n)
	x, y := 0.0, float64(2*n)
	for i := range out {
		out[i] = riesz.Point2D{X: x, Y: y}
		x += 0.1 + rng.Float64()
		y -= 0.1 + rng.Float64()
	}

	return out
}

// subsetsOfSize returns every k-subset of {0..n-1} (bitmask enumeration,
// independent of the solver's generator).
func subsetsOfSize(n, k int) [][]int {
	var out [][]int
	for mask := 0; mask < 1<<n; mask++ {
		var s []int
		for i := 0; i < n; i++ {
			if mask&(1<<i) != 0 {
				s = append(s, i)
			}
		}
		if len(s) == k {
			out = append(out, s)
		}
	}

	return out
}

// divergentLine is a hand-checked input where the DP keeps [0,2,3] in
// cell (3,3) and therefore misses the optimum [0,1,3,4] for k=4, s=1.
var divergentLine = riesz.Line{0, 0.8, 1.1, 2, 3}

// unitSquare has two diagonals of equal length: (0,3) and (1,2).
var unitSquare = riesz.Plane{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}}

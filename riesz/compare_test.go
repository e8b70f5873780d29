// SPDX-License-Identifier: MIT

package riesz_test

import (
	"testing"

	"github.com/katalvlaran/rieszsel/riesz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare_Match(t *testing.T) {
	cmp, err := riesz.Compare(riesz.Line{0, 1, 3, 6}, 2, 1, nil)
	require.NoError(t, err)
	assert.True(t, cmp.Match)
	assert.Equal(t, cmp.DP.Subset, cmp.BruteForce.Subset)
	assert.Equal(t, 0.0, cmp.EnergyGap)
}

// TestCompare_DetectsDivergence: the DP misses the optimum and Compare says so.
func TestCompare_DetectsDivergence(t *testing.T) {
	cmp, err := riesz.Compare(divergentLine, 4, 1, nil)
	require.NoError(t, err)
	assert.False(t, cmp.Match)
	assert.Equal(t, []int{0, 2, 3, 4}, cmp.DP.Subset)
	assert.Equal(t, []int{0, 1, 3, 4}, cmp.BruteForce.Subset)
	assert.Greater(t, cmp.EnergyGap, riesz.MatchTolerance)
}

// TestCompare_EqualEnergyDifferentSubset: energies agree but subsets do not.
func TestCompare_EqualEnergyDifferentSubset(t *testing.T) {
	cmp, err := riesz.Compare(unitSquare, 2, 1, nil)
	require.NoError(t, err)
	assert.False(t, cmp.Match)
	assert.Equal(t, 0.0, cmp.EnergyGap)
}

func TestCompare_BothAbsent(t *testing.T) {
	cmp, err := riesz.Compare(riesz.Line{1, 1}, 2, 1, nil)
	require.NoError(t, err)
	assert.True(t, cmp.Match)
	assert.False(t, cmp.DP.Found())
	assert.False(t, cmp.BruteForce.Found())
	assert.Equal(t, 0.0, cmp.EnergyGap)
}

func TestCompare_PropagatesErrors(t *testing.T) {
	_, err := riesz.Compare(riesz.Line{0, 1}, 0, 1, nil)
	assert.ErrorIs(t, err, riesz.ErrBadK)

	_, err = riesz.Compare(riesz.Line{0, 1, 2, 3}, 2, 1, &riesz.Options{MaxCombinations: 1})
	assert.ErrorIs(t, err, riesz.ErrTooManyCombinations)
}

// TestCompare_ParetoFronts runs the two bi-objective fronts of the demo.
func TestCompare_ParetoFronts(t *testing.T) {
	fronts := []riesz.Plane{
		{{X: 1, Y: 15}, {X: 5, Y: 10}, {X: 8, Y: 4}, {X: 13, Y: 3}, {X: 15, Y: 2}, {X: 17, Y: 1}},
		{{X: 2, Y: 20}, {X: 4, Y: 18}, {X: 6, Y: 16}, {X: 9, Y: 12}, {X: 11, Y: 8}, {X: 14, Y: 5}, {X: 17, Y: 3}},
	}
	for _, front := range fronts {
		cmp, err := riesz.Compare(front, 3, 1, nil)
		require.NoError(t, err)
		require.Len(t, cmp.BruteForce.Subset, 3)
		require.Len(t, cmp.DP.Subset, 3)
		assert.GreaterOrEqual(t, cmp.EnergyGap, -epsTiny)
	}
}

// SPDX-License-Identifier: MIT

package riesz_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/rieszsel/riesz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPairEnergy_Basic checks 1/d^s on simple values.
func TestPairEnergy_Basic(t *testing.T) {
	e, ok := riesz.PairEnergy(2, 1)
	require.True(t, ok)
	assert.Equal(t, 0.5, e)

	e, ok = riesz.PairEnergy(2, 2)
	require.True(t, ok)
	assert.Equal(t, 0.25, e)

	e, ok = riesz.PairEnergy(1, 7.5)
	require.True(t, ok)
	assert.Equal(t, 1.0, e)
}

// TestPairEnergy_InvalidDistance verifies zero, negative and NaN distances are rejected.
func TestPairEnergy_InvalidDistance(t *testing.T) {
	for _, d := range []float64{0, -1, math.NaN()} {
		_, ok := riesz.PairEnergy(d, 1)
		assert.False(t, ok, "distance %v must be rejected", d)
	}
}

// TestPairEnergy_MonotoneInExponent: for d<1 the contribution grows with s,
// for d>1 it shrinks.
func TestPairEnergy_MonotoneInExponent(t *testing.T) {
	exps := []float64{0.5, 1, 1.5, 2, 3, 5}

	prevNear, prevFar := -1.0, math.Inf(1)
	for _, s := range exps {
		near, ok := riesz.PairEnergy(0.5, s)
		require.True(t, ok)
		far, ok := riesz.PairEnergy(2, s)
		require.True(t, ok)

		assert.Greater(t, near, prevNear, "d=0.5, s=%v", s)
		assert.Less(t, far, prevFar, "d=2, s=%v", s)
		prevNear, prevFar = near, far
	}
}

// TestSubsetEnergy sums all pairs and flags zero gaps.
func TestSubsetEnergy(t *testing.T) {
	sp := riesz.Line{0, 1, 3, 6}

	e, ok := riesz.SubsetEnergy(sp, []int{0, 1, 3}, 1)
	require.True(t, ok)
	assert.InDelta(t, 1+1.0/6+1.0/5, e, epsTiny)

	e, ok = riesz.SubsetEnergy(sp, []int{2}, 1)
	require.True(t, ok)
	assert.Equal(t, 0.0, e, "a single point has no pairs")

	_, ok = riesz.SubsetEnergy(riesz.Line{0, 1, 1}, []int{0, 1, 2}, 1)
	assert.False(t, ok, "duplicate coordinates invalidate the subset")
}

// TestSpaces_Distance checks Line and Plane metrics.
func TestSpaces_Distance(t *testing.T) {
	l := riesz.Line{-1, 2.5}
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, 3.5, l.Distance(0, 1))
	assert.Equal(t, 3.5, l.Distance(1, 0))

	p := riesz.Plane{{X: 0, Y: 4}, {X: 3, Y: 0}}
	assert.Equal(t, 2, p.Len())
	assert.InDelta(t, 5.0, p.Distance(0, 1), epsTiny)
	assert.Equal(t, unitSquare.Distance(0, 3), unitSquare.Distance(1, 2), "diagonals are equal")
}

// TestMemoryMode_String covers the mode names used by the CLI.
func TestMemoryMode_String(t *testing.T) {
	assert.Equal(t, "table", riesz.PairTable.String())
	assert.Equal(t, "fly", riesz.OnTheFly.String())
	assert.Equal(t, "unknown", riesz.MemoryMode(9).String())
}

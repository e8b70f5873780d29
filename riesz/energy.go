// SPDX-License-Identifier: MIT

package riesz

import "math"

// PairEnergy returns the Riesz contribution 1/d^s of a single pair.
// ok is false when d is not strictly positive (zero, negative or NaN):
// such a pair has no defined energy and invalidates any subset holding it.
//
// Complexity: O(1).
func PairEnergy(d, s float64) (e float64, ok bool) {
	if !(d > 0) {
		return 0, false
	}

	return 1.0 / math.Pow(d, s), true
}

// SubsetEnergy sums PairEnergy over all unordered pairs of subset, visiting
// pairs in (a, b), a < b positional order. ok is false if any pair has a
// non-positive distance. Subsets with fewer than two indices have energy 0.
//
// Indices must be valid positions of sp; no bounds checks are made.
//
// Complexity: O(len(subset)²).
func SubsetEnergy(sp Space, subset []int, s float64) (float64, bool) {
	var (
		sum  float64
		a, b int
	)
	for a = 0; a < len(subset); a++ {
		for b = a + 1; b < len(subset); b++ {
			e, ok := PairEnergy(distance(sp, subset[a], subset[b]), s)
			if !ok {
				return 0, false
			}
			sum += e
		}
	}

	return sum, true
}

// distance calls sp.Distance with the smaller index first.
func distance(sp Space, i, j int) float64 {
	if i > j {
		i, j = j, i
	}

	return sp.Distance(i, j)
}

// pairSource yields the contribution of pair (i, j) during a solve.
type pairSource interface {
	at(i, j int) (float64, bool)
}

// newPairSource builds the source selected by mode. The mode must already
// be validated.
func newPairSource(sp Space, s float64, mode MemoryMode) pairSource {
	if mode == OnTheFly {
		return lazyPairs{sp: sp, s: s}
	}

	return newPairTable(sp, s)
}

// lazyPairs computes every contribution on demand.
type lazyPairs struct {
	sp Space
	s  float64
}

func (l lazyPairs) at(i, j int) (float64, bool) {
	return PairEnergy(distance(l.sp, i, j), l.s)
}

// pairTable is a symmetric n×n row-major table of pair contributions.
// Invalid pairs (and the diagonal) hold NaN: 1/d^s is never NaN for d > 0.
type pairTable struct {
	n    int
	data []float64
}

// newPairTable fills the table from the upper triangle and mirrors it.
//
// Complexity: O(n²) time and memory.
func newPairTable(sp Space, s float64) *pairTable {
	n := sp.Len()
	t := &pairTable{n: n, data: make([]float64, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		t.data[i*n+i] = math.NaN()
		for j = i + 1; j < n; j++ {
			e, ok := PairEnergy(sp.Distance(i, j), s)
			if !ok {
				e = math.NaN()
			}
			t.data[i*n+j] = e
			t.data[j*n+i] = e
		}
	}

	return t
}

func (t *pairTable) at(i, j int) (float64, bool) {
	e := t.data[i*t.n+j]
	if math.IsNaN(e) {
		return 0, false
	}

	return e, true
}

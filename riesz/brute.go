// SPDX-License-Identifier: MIT

package riesz

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// maxEnumerable bounds n·C(n,k) regardless of Options. The combination
// generator sizes itself with combin.Binomial, whose running product
// (n−k+i)·C(n−k+i−1, i−1) reaches up to n·C(n,k) and must fit in an int.
// The factor 2 absorbs the error of the float estimate.
const maxEnumerable = math.MaxInt / 2

// SolveBruteForce returns the exact minimum-energy k-subset.
//
// Every k-combination of {0..n−1} is visited in lexicographic order. A
// combination containing a pair at distance 0 is skipped (not priced).
// The minimum is tracked with a strict '<', so the first combination that
// reaches it wins ties.
//
// Returns an absent Result (no error) when k > n or every combination was
// skipped. Errors: those of SolveDP, plus ErrTooManyCombinations when
// C(n,k) exceeds opts.MaxCombinations (if set) or cannot be enumerated.
//
// Complexity: O(C(n,k)·k²) time, O(k) memory plus O(n²) for PairTable.
func SolveBruteForce(sp Space, k int, s float64, opts *Options) (Result, error) {
	o := resolveOptions(opts)
	n, err := validateInput(sp, k, s, o)
	if err != nil {
		return Result{}, err
	}
	if k > n {
		return absent(), nil
	}
	if err = checkCombinationBudget(n, k, o.MaxCombinations); err != nil {
		return Result{}, err
	}

	src := newPairSource(sp, s, o.MemoryMode)

	var (
		res    = absent()
		combo  = make([]int, k)
		energy float64
		valid  bool
		a, b   int
	)
	gen := combin.NewCombinationGenerator(n, k)
	for gen.Next() {
		gen.Combination(combo)

		energy = 0
		valid = true
		for a = 0; a < k && valid; a++ {
			for b = a + 1; b < k; b++ {
				e, ok := src.at(combo[a], combo[b])
				if !ok {
					valid = false
					break
				}
				energy += e
			}
		}
		if !valid {
			continue
		}
		if !res.Found() || energy < res.Energy {
			if res.Subset == nil {
				res.Subset = make([]int, k)
			}
			copy(res.Subset, combo)
			res.Energy = energy
		}
	}

	return res, nil
}

// CombinationCount estimates C(n,k) as a float64 (exact for small inputs).
// It returns 0 when k < 0, n < 0 or k > n.
func CombinationCount(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}

	return math.Round(combin.GeneralizedBinomial(float64(n), float64(k)))
}

// checkCombinationBudget enforces limit (0 = unlimited) and maxEnumerable.
func checkCombinationBudget(n, k int, limit int64) error {
	c := CombinationCount(n, k)
	if c*float64(n) > maxEnumerable {
		return ErrTooManyCombinations
	}
	if limit > 0 && c > float64(limit) {
		return ErrTooManyCombinations
	}

	return nil
}

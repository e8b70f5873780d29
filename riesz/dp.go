// SPDX-License-Identifier: MIT

package riesz

// cell is one DP entry (r, i): the best r-subset found whose largest
// index is i. ok is false when no valid r-subset ends at i.
type cell struct {
	energy float64
	subset []int
	ok     bool
}

// SolveDP selects k points with the order-based DP recursion.
//
// Recursion:
//  1. Base: cell(1, i) = (0, [i]) for every i.
//  2. For r = 2..k and i = r−1..n−1, for every p in [r−2, i−1] with a
//     valid cell(r−1, p):
//     extra = Σ_{q ∈ cell(r−1,p).subset} 1/d(q, i)^s
//     A member q at distance 0 rejects p outright.
//     cell(r, i) keeps the smallest prev+extra; on equal values the
//     earliest p stays.
//  3. Answer: the smallest cell(k, i) over i = k−1..n−1, earliest on ties.
//
// Each cell keeps a single surviving subset. The cost of appending i
// depends on which points that subset holds, not just on its energy, so
// the recursion may miss the global optimum. SolveBruteForce is the exact
// reference; Compare reports the divergence.
//
// Only rows r−1 and r are kept alive.
//
// Returns an absent Result (no error) when k > n or no valid k-subset is
// reachable. Errors: ErrNilSpace, ErrEmptySpace, ErrBadK, ErrBadExponent,
// ErrBadMemoryMode, ErrBadOption.
//
// Complexity: O(n²·k²) time; O(n·k) memory for the two live rows, plus
// O(n²) for the PairTable mode.
func SolveDP(sp Space, k int, s float64, opts *Options) (Result, error) {
	o := resolveOptions(opts)
	n, err := validateInput(sp, k, s, o)
	if err != nil {
		return Result{}, err
	}
	if k > n {
		return absent(), nil
	}

	src := newPairSource(sp, s, o.MemoryMode)

	// Stage 1: base row r = 1.
	prev := make([]cell, n)
	var i int
	for i = 0; i < n; i++ {
		prev[i] = cell{energy: 0, subset: []int{i}, ok: true}
	}

	// Stage 2: rows r = 2..k, each reading only the finished row r−1.
	var (
		r, p, q   int
		extra     float64
		candidate float64
		valid     bool
	)
	for r = 2; r <= k; r++ {
		curr := make([]cell, n)
		for i = r - 1; i < n; i++ {
			best := cell{}
			bestP := -1
			for p = r - 2; p < i; p++ {
				if !prev[p].ok {
					continue
				}
				extra = 0
				valid = true
				for _, q = range prev[p].subset {
					e, ok := src.at(q, i)
					if !ok {
						valid = false
						break
					}
					extra += e
				}
				if !valid {
					continue
				}
				candidate = prev[p].energy + extra
				if bestP < 0 || candidate < best.energy {
					best.energy = candidate
					bestP = p
				}
			}
			if bestP < 0 {
				continue // cell(r, i) stays absent
			}
			best.subset = extendSubset(prev[bestP].subset, i)
			best.ok = true
			curr[i] = best
		}
		prev = curr
	}

	// Stage 3: scan cell(k, i) for the smallest energy.
	res := absent()
	for i = k - 1; i < n; i++ {
		if !prev[i].ok {
			continue
		}
		if !res.Found() || prev[i].energy < res.Energy {
			res = Result{Subset: prev[i].subset, Energy: prev[i].energy}
		}
	}

	return res, nil
}

// extendSubset returns a fresh copy of subset with i appended.
func extendSubset(subset []int, i int) []int {
	out := make([]int, len(subset)+1)
	copy(out, subset)
	out[len(subset)] = i

	return out
}

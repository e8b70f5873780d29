// SPDX-License-Identifier: MIT

// Package riesz selects k points out of an ordered point sequence so that
// the Riesz s-energy of the chosen subset is as small as possible.
//
// 🚀 What is the Riesz s-energy?
//
//	For a subset S of points and an exponent s > 0:
//
//	    E(S) = Σ_{p<q ∈ S} 1 / d(p,q)^s
//
//	It is a repulsion potential: clustered points cost a lot, well spread
//	points cost little. Picking a low-energy k-subset of a Pareto front is
//	a classic way to obtain a small, evenly spaced representative set.
//
// ✨ Solvers:
//   - SolveBruteForce — enumerates all C(n,k) index combinations in
//     lexicographic order. Exact; the first minimum wins ties.
//     Time O(C(n,k)·k²). Use as the ground truth for n ≲ 20.
//   - SolveDP — order-based recursion over cells (r, i) = "r points chosen,
//     i is the largest index". Each cell keeps ONE surviving subset, so the
//     recursion is a heuristic: it usually, but not always, agrees with
//     brute force. Time O(n²·k²), memory O(n·k).
//   - Compare — runs both and reports whether they agree (same subset and
//     energies within MatchTolerance).
//
// Spaces:
//
//	Solvers see the input only through the Space interface. Line holds 1-D
//	coordinates (distance |x_i − x_j|), Plane holds 2-D points sorted along
//	a Pareto front (Euclidean distance). Any other metric can be plugged in
//	by implementing Space.
//
// Zero distances:
//
//	A pair at distance 0 has no defined energy. Such a pair never raises an
//	error: the candidate subset (or DP extension) containing it is dropped.
//	If nothing survives, the Result is absent (Found()==false, Energy=+Inf).
//
// ⚙️ Usage:
//
//	sp := riesz.Line{0, 1, 3, 6}
//	res, err := riesz.SolveBruteForce(sp, 2, 1, nil)
//	// res.Subset == []int{0, 3}, res.Energy == 1.0/6
//
//	cmp, err := riesz.Compare(sp, 2, 1, nil)
//	if !cmp.Match { /* DP diverged from the oracle */ }
package riesz

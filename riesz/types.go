// SPDX-License-Identifier: MIT

package riesz

import (
	"errors"
	"math"
)

// Sentinel errors. Every message is prefixed with "riesz:"; callers match
// them with errors.Is. Invalid distances and infeasible inputs are NOT
// errors: they surface as an absent Result.
var (
	// ErrNilSpace is returned when a nil Space is passed to a solver.
	ErrNilSpace = errors.New("riesz: nil space")

	// ErrEmptySpace is returned when the Space holds no points.
	ErrEmptySpace = errors.New("riesz: space must be non-empty")

	// ErrBadK is returned when the subset size k is smaller than 1.
	ErrBadK = errors.New("riesz: subset size k must be >= 1")

	// ErrBadExponent is returned when s is not a finite positive number.
	ErrBadExponent = errors.New("riesz: exponent s must be finite and > 0")

	// ErrBadMemoryMode is returned for an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("riesz: unknown memory mode")

	// ErrBadOption is returned when an Options field is out of range.
	ErrBadOption = errors.New("riesz: invalid option")

	// ErrTooManyCombinations is returned by SolveBruteForce when C(n,k)
	// exceeds Options.MaxCombinations (or cannot be enumerated at all).
	ErrTooManyCombinations = errors.New("riesz: too many combinations for brute force")
)

// MatchTolerance is the absolute energy tolerance used by Compare.
const MatchTolerance = 1e-6

// MemoryMode controls how pairwise energies are obtained during a solve.
//
//   - PairTable — precompute 1/d^s for every pair into a flat n×n table.
//     Memory O(n²); every lookup is O(1).
//
//   - OnTheFly  — compute each contribution when it is needed.
//     Memory O(1); pays one distance + math.Pow per lookup.
//
// Both modes produce bit-identical energies.
type MemoryMode int

const (
	// PairTable precomputes all pairwise contributions (default).
	PairTable MemoryMode = iota

	// OnTheFly computes contributions lazily.
	OnTheFly
)

// String returns a short name of the mode.
func (m MemoryMode) String() string {
	switch m {
	case PairTable:
		return "table"
	case OnTheFly:
		return "fly"
	default:
		return "unknown"
	}
}

// Options configures the solvers.
//
// Fields:
//   - MemoryMode      — PairTable or OnTheFly.
//   - MaxCombinations — upper bound on C(n,k) accepted by SolveBruteForce.
//     0 means unlimited. Negative values are rejected with ErrBadOption.
type Options struct {
	MemoryMode      MemoryMode
	MaxCombinations int64
}

// DefaultOptions returns the options used when a solver receives nil.
//
// Defaults:
//   - MemoryMode:      PairTable.
//   - MaxCombinations: 0 (unlimited).
func DefaultOptions() Options {
	return Options{
		MemoryMode:      PairTable,
		MaxCombinations: 0,
	}
}

// Result holds the outcome of one solver run.
type Result struct {
	// Subset lists the chosen indices in strictly increasing order,
	// len(Subset)==k. Nil when no valid k-subset exists.
	Subset []int

	// Energy is the Riesz s-energy of Subset, +Inf when Subset is nil.
	Energy float64
}

// Found reports whether the solver produced a subset.
func (r Result) Found() bool {
	return r.Subset != nil
}

// absent is the Result returned when no valid k-subset exists.
func absent() Result {
	return Result{Energy: math.Inf(1)}
}

// Comparison is the report produced by Compare.
type Comparison struct {
	DP         Result
	BruteForce Result

	// EnergyGap is DP.Energy − BruteForce.Energy (0 when both are absent,
	// +Inf when only brute force found a subset).
	EnergyGap float64

	// Match is true when both solvers returned the same subset and their
	// energies differ by less than MatchTolerance, or both found nothing.
	Match bool
}

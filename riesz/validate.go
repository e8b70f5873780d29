// SPDX-License-Identifier: MIT

package riesz

import "math"

// resolveOptions returns *opts, or DefaultOptions when opts is nil.
func resolveOptions(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}

// validateInput checks solver arguments in a fixed order and returns n.
//
// Order: space -> k -> exponent -> options. k > n is valid input and is
// reported by the solvers as an absent Result.
//
// Complexity: O(1).
func validateInput(sp Space, k int, s float64, opts Options) (int, error) {
	if sp == nil {
		return 0, ErrNilSpace
	}
	n := sp.Len()
	if n == 0 {
		return 0, ErrEmptySpace
	}
	if k < 1 {
		return 0, ErrBadK
	}
	if !(s > 0) || math.IsInf(s, 0) {
		return 0, ErrBadExponent
	}
	if err := validateOptions(opts); err != nil {
		return 0, err
	}

	return n, nil
}

// validateOptions checks Options fields independently of the input.
func validateOptions(opts Options) error {
	switch opts.MemoryMode {
	case PairTable, OnTheFly:
	default:
		return ErrBadMemoryMode
	}
	if opts.MaxCombinations < 0 {
		return ErrBadOption
	}

	return nil
}

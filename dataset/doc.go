// SPDX-License-Identifier: MIT

// Package dataset loads point sequences for the riesz solvers from YAML
// files and ships the worked examples used by the demo.
//
// A file holds either one dataset at the top level or a list:
//
//	name: line
//	k: 2
//	s: 1
//	points1d: [0, 1, 3, 6]
//
//	datasets:
//	  - name: front
//	    k: 3
//	    points2d: [[1, 15], [5, 10], [8, 4], [13, 3]]
//
// Exactly one of points1d / points2d must be set. A missing s defaults to
// DefaultExponent. Unknown keys are rejected.
package dataset

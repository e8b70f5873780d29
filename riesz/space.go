// SPDX-License-Identifier: MIT

package riesz

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Space is an ordered, 0-indexed point sequence seen through its metric.
//
// Contract:
//   - Len() is constant for the duration of a solve.
//   - Distance(i, j) is non-negative and symmetric for 0 ≤ i, j < Len().
//     Solvers always call it with i < j.
//
// The solvers never sort and never inspect coordinates: ordering is the
// caller's responsibility.
type Space interface {
	Len() int
	Distance(i, j int) float64
}

// Line is a 1-D point sequence, conventionally strictly increasing.
type Line []float64

var _ Space = Line(nil)

// Len returns the number of points.
func (l Line) Len() int { return len(l) }

// Distance returns |l[i] − l[j]|.
func (l Line) Distance(i, j int) float64 {
	return math.Abs(l[j] - l[i])
}

// Point2D is a point of a bi-objective front.
type Point2D struct {
	X, Y float64
}

// Plane is a 2-D point sequence, conventionally a Pareto front sorted by
// X ascending and Y descending.
type Plane []Point2D

var _ Space = Plane(nil)

// Len returns the number of points.
func (p Plane) Len() int { return len(p) }

// Distance returns the Euclidean distance between p[i] and p[j].
func (p Plane) Distance(i, j int) float64 {
	a := [2]float64{p[i].X, p[i].Y}
	b := [2]float64{p[j].X, p[j].Y}

	return floats.Distance(a[:], b[:], 2)
}

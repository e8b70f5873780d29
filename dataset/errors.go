// SPDX-License-Identifier: MIT

package dataset

import "errors"

var (
	// ErrNoDatasets is returned when a file describes no dataset at all.
	ErrNoDatasets = errors.New("dataset: no datasets in input")

	// ErrNoPoints is returned when neither points1d nor points2d is set.
	ErrNoPoints = errors.New("dataset: no points")

	// ErrMixedDimensions is returned when both points1d and points2d are set.
	ErrMixedDimensions = errors.New("dataset: points1d and points2d are mutually exclusive")

	// ErrMixedLayout is returned when a file has both top-level dataset
	// keys and a datasets list.
	ErrMixedLayout = errors.New("dataset: top-level dataset and datasets list are mutually exclusive")

	// ErrBadPoint is returned when a 2-D point does not have two coordinates.
	ErrBadPoint = errors.New("dataset: 2-D point must have exactly 2 coordinates")
)

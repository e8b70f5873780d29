// SPDX-License-Identifier: MIT

package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/rieszsel/riesz"
	"gopkg.in/yaml.v3"
)

// DefaultExponent is used when a dataset leaves s unset.
const DefaultExponent = 1.0

// Dataset is one solver input: an ordered point sequence, k and s.
type Dataset struct {
	Name     string      `yaml:"name"`
	K        int         `yaml:"k"`
	S        float64     `yaml:"s"`
	Points1D []float64   `yaml:"points1d,omitempty"`
	Points2D [][]float64 `yaml:"points2d,omitempty"`
}

// rawDataset mirrors Dataset as written on disk; a nil S means "not set".
type rawDataset struct {
	Name     string      `yaml:"name"`
	K        int         `yaml:"k"`
	S        *float64    `yaml:"s"`
	Points1D []float64   `yaml:"points1d,omitempty"`
	Points2D [][]float64 `yaml:"points2d,omitempty"`
}

// empty reports whether no key of the dataset was present.
func (r rawDataset) empty() bool {
	return r.Name == "" && r.K == 0 && r.S == nil && r.Points1D == nil && r.Points2D == nil
}

// file is the on-disk layout: a single inline dataset or a list.
type file struct {
	Top      rawDataset   `yaml:",inline"`
	Datasets []rawDataset `yaml:"datasets"`
}

// Load reads and parses the YAML file at path.
func Load(path string) ([]Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	out, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return out, nil
}

// Parse decodes YAML data into validated datasets with defaults applied.
//
// Stage 1: strict decode (unknown keys rejected).
// Stage 2: pick the list or the inline dataset, never both.
// Stage 3: defaults (name, unset s) and validation per dataset. An explicit
// s is kept as written, so s: 0 reaches the solvers and is rejected there.
func Parse(data []byte) ([]Dataset, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoDatasets
		}
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}

	list := f.Datasets
	switch {
	case len(list) > 0 && !f.Top.empty():
		return nil, ErrMixedLayout
	case len(list) == 0:
		if f.Top.Points1D == nil && f.Top.Points2D == nil {
			return nil, ErrNoDatasets
		}
		list = []rawDataset{f.Top}
	}

	out := make([]Dataset, len(list))
	for i, raw := range list {
		ds := Dataset{
			Name:     raw.Name,
			K:        raw.K,
			S:        DefaultExponent,
			Points1D: raw.Points1D,
			Points2D: raw.Points2D,
		}
		if ds.Name == "" {
			ds.Name = "dataset-" + strconv.Itoa(i+1)
		}
		if raw.S != nil {
			ds.S = *raw.S
		}
		if err := ds.Validate(); err != nil {
			return nil, fmt.Errorf("dataset %q: %w", ds.Name, err)
		}
		out[i] = ds
	}

	return out, nil
}

// Validate checks the point layout. k and s are left to the solvers.
func (d Dataset) Validate() error {
	switch {
	case len(d.Points1D) > 0 && len(d.Points2D) > 0:
		return ErrMixedDimensions
	case len(d.Points1D) == 0 && len(d.Points2D) == 0:
		return ErrNoPoints
	}
	for _, p := range d.Points2D {
		if len(p) != 2 {
			return ErrBadPoint
		}
	}

	return nil
}

// Dim returns 1 or 2.
func (d Dataset) Dim() int {
	if len(d.Points2D) > 0 {
		return 2
	}

	return 1
}

// Len returns the number of points.
func (d Dataset) Len() int {
	if d.Dim() == 2 {
		return len(d.Points2D)
	}

	return len(d.Points1D)
}

// Space returns the solver view of the points: riesz.Line or riesz.Plane.
// The dataset must be valid.
func (d Dataset) Space() riesz.Space {
	if d.Dim() == 1 {
		return riesz.Line(d.Points1D)
	}
	plane := make(riesz.Plane, len(d.Points2D))
	for i, p := range d.Points2D {
		plane[i] = riesz.Point2D{X: p[0], Y: p[1]}
	}

	return plane
}

// Point formats point i for display: "3" or "(1, 15)".
func (d Dataset) Point(i int) string {
	if d.Dim() == 1 {
		return strconv.FormatFloat(d.Points1D[i], 'g', -1, 64)
	}
	p := d.Points2D[i]

	return "(" + strconv.FormatFloat(p[0], 'g', -1, 64) + ", " +
		strconv.FormatFloat(p[1], 'g', -1, 64) + ")"
}

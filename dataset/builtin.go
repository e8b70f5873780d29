// SPDX-License-Identifier: MIT

package dataset

// Builtin returns the worked examples run by the demo: two lines and two
// bi-objective fronts (X ascending, Y descending), all with s = 1.
func Builtin() []Dataset {
	return []Dataset{
		{
			Name:     "line-small",
			K:        2,
			S:        1,
			Points1D: []float64{0, 1, 3, 6},
		},
		{
			Name:     "line-clustered",
			K:        7,
			S:        1,
			Points1D: []float64{0, 0.1, 0.2, 0.4, 2, 4, 7, 8.1, 8.2, 9},
		},
		{
			Name: "front-6",
			K:    3,
			S:    1,
			Points2D: [][]float64{
				{1, 15}, {5, 10}, {8, 4}, {13, 3}, {15, 2}, {17, 1},
			},
		},
		{
			Name: "front-7",
			K:    3,
			S:    1,
			Points2D: [][]float64{
				{2, 20}, {4, 18}, {6, 16}, {9, 12}, {11, 8}, {14, 5}, {17, 3},
			},
		},
	}
}

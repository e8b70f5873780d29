// SPDX-License-Identifier: MIT

// Package report renders solver results as plain console text.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/rieszsel/riesz"
)

// separator closes every result block.
var separator = strings.Repeat("-", 40)

// Points exposes display strings for the points of a sequence.
type Points interface {
	Point(i int) string
}

// WriteResult prints one solver result:
//
//	Method: DP
//	Chosen indices: [0 3]
//	Chosen points:  [0 6]
//	Total energy:   0.16666666666666666
//	----------------------------------------
func WriteResult(w io.Writer, method string, pts Points, res riesz.Result) error {
	var b strings.Builder
	writeResult(&b, method, pts, res)
	_, err := io.WriteString(w, b.String())

	return err
}

// WriteComparison prints both results of c followed by the agreement verdict.
func WriteComparison(w io.Writer, pts Points, c riesz.Comparison) error {
	var b strings.Builder
	writeResult(&b, "DP", pts, c.DP)
	writeResult(&b, "Brute Force", pts, c.BruteForce)
	if c.Match {
		b.WriteString("The DP solution matches the brute-force solution.\n")
	} else {
		fmt.Fprintf(&b, "The DP solution does NOT match the brute-force solution (gap %s).\n",
			formatEnergy(c.EnergyGap))
	}
	b.WriteString(separator + "\n")
	_, err := io.WriteString(w, b.String())

	return err
}

func writeResult(b *strings.Builder, method string, pts Points, res riesz.Result) {
	fmt.Fprintf(b, "Method: %s\n", method)
	if !res.Found() {
		b.WriteString("No valid subset.\n")
		b.WriteString(separator + "\n")

		return
	}
	labels := make([]string, len(res.Subset))
	for i, idx := range res.Subset {
		labels[i] = pts.Point(idx)
	}
	fmt.Fprintf(b, "Chosen indices: %v\n", res.Subset)
	fmt.Fprintf(b, "Chosen points:  [%s]\n", strings.Join(labels, " "))
	fmt.Fprintf(b, "Total energy:   %s\n", formatEnergy(res.Energy))
	b.WriteString(separator + "\n")
}

// formatEnergy prints the shortest representation that round-trips.
func formatEnergy(e float64) string {
	return strconv.FormatFloat(e, 'g', -1, 64)
}

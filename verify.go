package main

import (
	"fmt"
	"io"
	"math"
)

// pointError records one interior grid point whose absolute difference
// exceeded the verification threshold.
type pointError struct {
	row, col  int
	output    float32
	reference float32
	diff      float32
}

func (e pointError) String() string {
	return fmt.Sprintf("ERROR: %d, %d   %g   instead of %g  (|e|=%g)",
		e.col, e.row, e.output, e.reference, e.diff)
}

// verifyResult aggregates the outcome of an interior-region comparison.
type verifyResult struct {
	hasError bool
	norm2    float64
	points   []pointError
}

// withinEpsilon compares output against reference over the interior region,
// halo excluded on all four sides. Squared differences accumulate in float64
// to avoid cancellation on large grids; the Euclidean norm is reported
// whether or not any point exceeded delta. Each offending point is recorded
// in the result and, when errLog is non-nil, written to it as one
// diagnostic line. Both slices must describe a rows x cols grid.
func withinEpsilon(output, reference []float32, rows, cols, halo int, delta float32, errLog io.Writer) verifyResult {
	var res verifyResult
	var sum float64
	for row := halo; row < rows-halo; row++ {
		base := row * cols
		for col := halo; col < cols-halo; col++ {
			out := output[base+col]
			ref := reference[base+col]
			diff := out - ref
			if diff < 0 {
				diff = -diff
			}
			sum += float64(diff) * float64(diff)
			if diff > delta {
				res.hasError = true
				pe := pointError{row: row, col: col, output: out, reference: ref, diff: diff}
				res.points = append(res.points, pe)
				if errLog != nil {
					fmt.Fprintln(errLog, pe.String())
				}
			}
		}
	}
	res.norm2 = math.Sqrt(sum)
	return res
}

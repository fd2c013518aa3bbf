package main

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestWithinEpsilonIdenticalFields(t *testing.T) {
	const rows, cols = 8, 9
	output := make([]float32, rows*cols)
	reference := make([]float32, rows*cols)
	for i := range output {
		output[i] = float32(i) * 0.25
		reference[i] = output[i]
	}

	result := withinEpsilon(output, reference, rows, cols, halfLength, 0.01, nil)
	if result.hasError {
		t.Fatal("identical fields reported as divergent")
	}
	if result.norm2 != 0 {
		t.Fatalf("norm = %g for identical fields, want 0", result.norm2)
	}
	if len(result.points) != 0 {
		t.Fatalf("got %d diagnostics for identical fields", len(result.points))
	}
}

func TestWithinEpsilonDetectsInteriorMismatch(t *testing.T) {
	const rows, cols = 6, 5
	output := make([]float32, rows*cols)
	reference := make([]float32, rows*cols)
	output[2*cols+3] = 0.5 // interior point (row 2, col 3)
	output[0] = 100        // halo corner, must be ignored

	var sink bytes.Buffer
	result := withinEpsilon(output, reference, rows, cols, halfLength, 0.01, &sink)

	if !result.hasError {
		t.Fatal("interior mismatch not detected")
	}
	if len(result.points) != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1 (halo must be excluded)", len(result.points))
	}
	p := result.points[0]
	if p.row != 2 || p.col != 3 || p.output != 0.5 || p.reference != 0 || p.diff != 0.5 {
		t.Fatalf("diagnostic = %+v, want row=2 col=3 output=0.5 reference=0 diff=0.5", p)
	}
	if math.Abs(result.norm2-0.5) > 1e-9 {
		t.Fatalf("norm = %g, want 0.5", result.norm2)
	}
	if !strings.Contains(sink.String(), "ERROR: 3, 2") {
		t.Fatalf("error log missing diagnostic line: %q", sink.String())
	}
}

func TestWithinEpsilonNormBelowDelta(t *testing.T) {
	// Differences under delta still contribute to the norm but raise no
	// error.
	const rows, cols = 5, 5
	output := make([]float32, rows*cols)
	reference := make([]float32, rows*cols)
	output[2*cols+2] = 0.003

	result := withinEpsilon(output, reference, rows, cols, halfLength, 0.01, nil)
	if result.hasError {
		t.Fatal("difference below delta reported as error")
	}
	if math.Abs(result.norm2-0.003) > 1e-9 {
		t.Fatalf("norm = %g, want 0.003", result.norm2)
	}
}

func TestPointErrorLineFormat(t *testing.T) {
	p := pointError{row: 2, col: 3, output: 1.5, reference: 1, diff: 0.5}
	want := "ERROR: 3, 2   1.5   instead of 1  (|e|=0.5)"
	if got := p.String(); got != want {
		t.Fatalf("diagnostic line = %q, want %q", got, want)
	}
}

func TestWithinEpsilonTunableDelta(t *testing.T) {
	const rows, cols = 5, 5
	output := make([]float32, rows*cols)
	reference := make([]float32, rows*cols)
	output[2*cols+2] = 0.05

	if res := withinEpsilon(output, reference, rows, cols, halfLength, 0.01, nil); !res.hasError {
		t.Fatal("0.05 difference must exceed delta 0.01")
	}
	if res := withinEpsilon(output, reference, rows, cols, halfLength, 0.1, nil); res.hasError {
		t.Fatal("0.05 difference must pass with delta 0.1")
	}
}

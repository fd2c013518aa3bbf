package main

import (
	"math"
	"testing"
)

func TestInitializeClearsFieldsAndSetsVelocity(t *testing.T) {
	f := newWaveField(20, 17)
	// Dirty every buffer first so initialize has to do real work.
	for i := range f.prev {
		f.prev[i] = 5
		f.next[i] = -3
		f.vel[i] = 1
	}
	f.initialize()

	const v2 = waveVelocity * waveVelocity
	for i := range f.next {
		if f.next[i] != 0 {
			t.Fatalf("next[%d] = %g after initialize, want 0", i, f.next[i])
		}
		if f.vel[i] != v2 {
			t.Fatalf("vel[%d] = %g, want %g", i, f.vel[i], float32(v2))
		}
	}
}

func TestWaveletStampingOrder(t *testing.T) {
	// On an 11x11 grid the innermost stamp must win at the center: the
	// pulse is applied outside-in, so the strongest coefficient is last.
	f := newWaveField(11, 11)
	f.initialize()

	if got := f.readPrev(5, 5); got != sourceWavelet[0] {
		t.Fatalf("center = %g, want wavelet[0] = %g", got, sourceWavelet[0])
	}
	// The radius-1 box covers rows/cols 4..5; (4,4) must keep wavelet[1].
	if got := f.readPrev(4, 4); got != sourceWavelet[1] {
		t.Fatalf("(4,4) = %g, want wavelet[1] = %g", got, sourceWavelet[1])
	}
	// The corner is last touched by the radius-5 stamp (radius 4 covers
	// rows 1..8 and no longer reaches row 0).
	if got := f.readPrev(0, 0); got != sourceWavelet[5] {
		t.Fatalf("corner = %g, want wavelet[5] = %g", got, sourceWavelet[5])
	}
}

func TestWaveletStampClampsToSmallGrids(t *testing.T) {
	// A 5x5 grid is smaller than the wavelet radius; the stamp must be
	// truncated at the edges instead of indexing outside the field.
	f := newWaveField(5, 5)
	f.initialize()

	if got := f.readPrev(2, 2); got != sourceWavelet[0] {
		t.Fatalf("center = %g, want wavelet[0] = %g", got, sourceWavelet[0])
	}
	if got := f.readPrev(0, 0); got != sourceWavelet[2] {
		t.Fatalf("(0,0) = %g, want wavelet[2] = %g", got, sourceWavelet[2])
	}
	// Row and column 4 sit outside the radius-2 box (rows 0..3), so the
	// radius-3 stamp is the last to touch them.
	if got := f.readPrev(4, 4); got != sourceWavelet[3] {
		t.Fatalf("(4,4) = %g, want wavelet[3] = %g", got, sourceWavelet[3])
	}
}

func TestSwapExchangesReferencesNotData(t *testing.T) {
	f := newWaveField(4, 4)
	f.prev[0] = 1
	f.next[0] = 2
	prevStorage := &f.prev[0]
	nextStorage := &f.next[0]

	f.swap()

	if &f.prev[0] != nextStorage || &f.next[0] != prevStorage {
		t.Fatal("swap must exchange the slice headers, not copy data")
	}
	if f.prev[0] != 2 || f.next[0] != 1 {
		t.Fatalf("values after swap: prev[0]=%g next[0]=%g, want 2 and 1", f.prev[0], f.next[0])
	}
}

func TestInteriorPredicate(t *testing.T) {
	f := newWaveField(6, 8)
	cases := []struct {
		row, col int
		want     bool
	}{
		{0, 0, false},
		{0, 3, false},
		{5, 7, false},
		{1, 1, true},
		{4, 6, true},
		{1, 7, false},
		{5, 1, false},
	}
	for _, c := range cases {
		if got := f.interior(c.row, c.col); got != c.want {
			t.Errorf("interior(%d,%d) = %v, want %v", c.row, c.col, got, c.want)
		}
	}
}

func TestDtDIVdxyValue(t *testing.T) {
	want := float32((0.002 * 0.002) / (20.0 * 20.0))
	if math.Float32bits(dtDIVdxy) != math.Float32bits(want) {
		t.Fatalf("dtDIVdxy = %g, want %g", dtDIVdxy, want)
	}
}

package main

// waveField stores the two wavefield buffers and the velocity model required
// by the finite difference solver. prev and next trade roles every timestep:
// after each full-grid pass the buffers are swapped so that prev always
// references the newest completed timestep.
type waveField struct {
	rows, cols int
	halo       int
	prev       []float32
	next       []float32
	vel        []float32
}

// newWaveField allocates a waveField with properly sized buffers. The grid
// must leave at least one interior point inside the halo.
func newWaveField(rows, cols int) *waveField {
	size := rows * cols
	return &waveField{
		rows: rows, cols: cols,
		halo: halfLength,
		prev: make([]float32, size),
		next: make([]float32, size),
		vel:  make([]float32, size),
	}
}

// initialize fills both wavefield buffers with zero, sets the uniform squared
// velocity model, and stamps the source wavelet into the previous-timestep
// buffer. Safe to call again to restart a simulation.
func (f *waveField) initialize() {
	for i := range f.prev {
		f.prev[i] = 0
		f.next[i] = 0
		f.vel[i] = waveVelocity * waveVelocity
	}
	f.stampWavelet()
}

// stampWavelet overlays the source pulse as nested squares of decreasing
// radius centered on the grid midpoint. Each radius s covers a (2s)x(2s)
// box; smaller boxes are stamped last, so stronger coefficients overwrite
// weaker ones toward the center and the center cell ends up holding
// sourceWavelet[0]. Box bounds are clamped to the grid so small grids stamp
// a truncated pulse instead of indexing outside the field.
func (f *waveField) stampWavelet() {
	midRow := f.rows / 2
	midCol := f.cols / 2
	for s := len(sourceWavelet) - 1; s >= 1; s-- {
		r0 := clampCoord(midRow-s, 0, f.rows)
		r1 := clampCoord(midRow+s, 0, f.rows)
		c0 := clampCoord(midCol-s, 0, f.cols)
		c1 := clampCoord(midCol+s, 0, f.cols)
		for i := r0; i < r1; i++ {
			base := i * f.cols
			for k := c0; k < c1; k++ {
				f.prev[base+k] = sourceWavelet[s]
			}
		}
	}
	if midRow < f.rows && midCol < f.cols {
		f.prev[midRow*f.cols+midCol] = sourceWavelet[0]
	}
}

// readPrev returns the value in the previous-timestep buffer at the given
// row and column.
func (f *waveField) readPrev(row, col int) float32 {
	return f.prev[row*f.cols+col]
}

// swap exchanges the roles of the two wavefield buffers. This is a reference
// swap; no grid data is copied.
func (f *waveField) swap() {
	f.prev, f.next = f.next, f.prev
}

// interior reports whether the given point lies outside the halo margin and
// therefore participates in stencil updates and verification.
func (f *waveField) interior(row, col int) bool {
	return row >= f.halo && row < f.rows-f.halo &&
		col >= f.halo && col < f.cols-f.halo
}

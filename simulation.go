package main

// stepSequential advances the wavefield by one timestep, visiting interior
// points one at a time in row-major scan order. The caller is responsible
// for swapping the buffers between passes.
func stepSequential(f *waveField, coeff float32) {
	for row := f.halo; row < f.rows-f.halo; row++ {
		for col := f.halo; col < f.cols-f.halo; col++ {
			updatePoint(f.next, f.prev, f.vel, coeff, row, col, f.rows, f.cols)
		}
	}
}

// runSequential executes the single-thread reference driver for the given
// number of iterations. After every pass the buffer roles are swapped, so
// when it returns f.prev holds the newest timestep.
func runSequential(f *waveField, coeff float32, iterations int) {
	for k := 0; k < iterations; k++ {
		stepSequential(f, coeff)
		f.swap()
	}
}

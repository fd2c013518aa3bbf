package main

// updatePoint computes the next-timestep value for a single grid point from
// its 4-point Von Neumann neighborhood:
//
//	laplacian = prev[right] - 2*prev[here] + prev[left]
//	          + prev[down]  - 2*prev[here] + prev[up]
//	next[here] = 2*prev[here] - next[here] + laplacian * coeff * vel[here]
//
// The buffer being written still holds the value from two timesteps back,
// which is why it participates in the update. Points inside the halo margin
// are left untouched.
func updatePoint(next, prev, vel []float32, coeff float32, row, col, rows, cols int) {
	if row < halfLength || row >= rows-halfLength ||
		col < halfLength || col >= cols-halfLength {
		return
	}
	gid := gridIndex(row, col, cols)
	value := prev[gid+1] - 2*prev[gid] + prev[gid-1]
	value += prev[gid+cols] - 2*prev[gid] + prev[gid-cols]
	value *= coeff * vel[gid]
	next[gid] = 2*prev[gid] - next[gid] + value
}

// updateRow applies the stencil across the interior columns of one row. The
// arithmetic is kept identical to updatePoint, expression for expression, so
// row-based and point-based scheduling produce bit-equal results.
func updateRow(next, prev, vel []float32, coeff float32, row, cols int) {
	base := row * cols
	for col := halfLength; col < cols-halfLength; col++ {
		gid := base + col
		value := prev[gid+1] - 2*prev[gid] + prev[gid-1]
		value += prev[gid+cols] - 2*prev[gid] + prev[gid-cols]
		value *= coeff * vel[gid]
		next[gid] = 2*prev[gid] - next[gid] + value
	}
}

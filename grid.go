package main

// clampCoord constrains v to lie within the inclusive [min, max] range.
func clampCoord(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// gridIndex maps a row and column to the row-major buffer offset.
func gridIndex(row, col, cols int) int {
	return row*cols + col
}

package shape

// SquareSide returns floor(sqrt(n)) computed exactly on integers.
func SquareSide(n int) int {
	if n <= 0 {
		return 0
	}
	side := 0
	for (side+1)*(side+1) <= n {
		side++
	}
	return side
}

// ReshapeSquare slices seq into an n×n row-major matrix with n = floor(sqrt(len(seq))).
// Elements beyond n*n are discarded. An empty sequence returns nil.
func ReshapeSquare(seq []float64) [][]float64 {
	n := SquareSide(len(seq))
	if n == 0 {
		return nil
	}
	matrix := make([][]float64, n)
	for i := range matrix {
		row := make([]float64, n)
		copy(row, seq[i*n:(i+1)*n])
		matrix[i] = row
	}
	return matrix
}

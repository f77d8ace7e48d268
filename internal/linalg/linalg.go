package linalg

import (
	"math"

	"statviz/internal/errors"
)

// Vandermonde builds the design matrix V[i][j] = xs[i]^j for j = 0..degree.
func Vandermonde(xs []float64, degree int) [][]float64 {
	v := make([][]float64, len(xs))
	for i, x := range xs {
		row := make([]float64, degree+1)
		p := 1.0
		for j := 0; j <= degree; j++ {
			row[j] = p
			p *= x
		}
		v[i] = row
	}
	return v
}

// Transpose returns the transpose of m.
func Transpose(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return nil
	}
	rows, cols := len(m), len(m[0])
	t := make([][]float64, cols)
	for i := 0; i < cols; i++ {
		t[i] = make([]float64, rows)
		for j := 0; j < rows; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// MatMul computes a·b. Dimensions must agree; the caller guarantees this
// since both operands come from Vandermonde construction.
func MatMul(a, b [][]float64) [][]float64 {
	rows, inner, cols := len(a), len(b), len(b[0])
	out := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]float64, cols)
		for k := 0; k < inner; k++ {
			aik := a[i][k]
			if aik == 0 {
				continue
			}
			for j := 0; j < cols; j++ {
				out[i][j] += aik * b[k][j]
			}
		}
	}
	return out
}

// MatVec computes m·v.
func MatVec(m [][]float64, v []float64) []float64 {
	out := make([]float64, len(m))
	for i, row := range m {
		s := 0.0
		for j, val := range row {
			s += val * v[j]
		}
		out[i] = s
	}
	return out
}

// SolveGaussian solves a·x = b by Gaussian elimination with partial pivoting
// followed by back-substitution. The inputs are copied, not mutated.
//
// Adequate for the small, well-conditioned systems produced by low-degree
// polynomial fits; not intended for ill-conditioned or large systems.
func SolveGaussian(a [][]float64, b []float64) ([]float64, error) {
	n := len(a)
	if n == 0 || len(b) != n {
		return nil, errors.InvalidInput("system dimensions do not match")
	}

	// Augmented working copy
	m := make([][]float64, n)
	for i := range a {
		m[i] = make([]float64, n+1)
		copy(m[i], a[i])
		m[i][n] = b[i]
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: swap in the row with the largest pivot magnitude
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(m[r][col]) > math.Abs(m[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(m[pivot][col]) < 1e-12 {
			return nil, errors.SingularSystem("matrix is singular or near-singular")
		}
		m[col], m[pivot] = m[pivot], m[col]

		for r := col + 1; r < n; r++ {
			factor := m[r][col] / m[col][col]
			if factor == 0 {
				continue
			}
			for c := col; c <= n; c++ {
				m[r][c] -= factor * m[col][c]
			}
		}
	}

	// Back-substitution
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		s := m[i][n]
		for j := i + 1; j < n; j++ {
			s -= m[i][j] * x[j]
		}
		x[i] = s / m[i][i]
	}
	return x, nil
}

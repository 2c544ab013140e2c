package smooth

import "gonum.org/v1/gonum/mat"

// DiffOp is the first-order forward-difference operator D(n): it maps a
// length-n sequence to its n-1 consecutive differences. Row i holds -1
// at column i and +1 at column i+1. For n <= 1 the operator has no rows
// and contributes no roughness penalty.
type DiffOp struct {
	n int
}

// NewDiffOp returns the difference operator for a sequence of length n.
func NewDiffOp(n int) DiffOp {
	return DiffOp{n: n}
}

// Dims returns the operator's shape (max(n-1, 0), n).
func (d DiffOp) Dims() (rows, cols int) {
	if d.n <= 1 {
		return 0, d.n
	}
	return d.n - 1, d.n
}

// Apply writes the forward differences of src into dst, which must have
// length max(n-1, 0).
func (d DiffOp) Apply(dst, src []float64) {
	rows, _ := d.Dims()
	for i := 0; i < rows; i++ {
		dst[i] = src[i+1] - src[i]
	}
}

// Gram returns DᵀD as a symmetric banded n×n matrix. For n >= 2 it is
// tridiagonal: 1 at the two corner diagonal entries, 2 on the interior
// diagonal, -1 on the off-diagonals. For n == 1 it is the 1×1 zero
// matrix.
func (d DiffOp) Gram() *mat.SymBandDense {
	n := d.n
	if n <= 1 {
		return mat.NewSymBandDense(1, 0, []float64{0})
	}
	g := mat.NewSymBandDense(n, 1, nil)
	for i := 0; i < n; i++ {
		diag := 2.0
		if i == 0 || i == n-1 {
			diag = 1.0
		}
		g.SetSymBand(i, i, diag)
		if i < n-1 {
			g.SetSymBand(i, i+1, -1)
		}
	}
	return g
}

package smooth

import "gonum.org/v1/gonum/mat"

// bandwidth returns the half-bandwidth of the regularization operator
// over an (n1w, n2w) window under axis-1-fastest flattening: axis-1
// neighbours sit at offset 1, axis-2 neighbours at offset n1w.
func bandwidth(n1w, n2w int) int {
	switch {
	case n2w > 1:
		return n1w
	case n1w > 1:
		return 1
	default:
		return 0
	}
}

// Regularization assembles the roughness-penalty operator
//
//	R = r1*(I_{n2w} ⊗ D1ᵀD1) + r2*(D2ᵀD2 ⊗ I_{n1w})
//
// over an (n1w, n2w) window as a symmetric banded matrix of order
// n1w*n2w. The Kronecker products are never materialised densely: the
// left term couples samples at flat-index offset 1 within a trace, the
// right term at offset n1w across traces, so R has at most five
// non-zero entries per row. R is positive semi-definite for any
// r1, r2 >= 0; negative coefficients are rejected.
func Regularization(n1w, n2w int, r1, r2 float64) (*mat.SymBandDense, error) {
	if r1 < 0 {
		return nil, &InvalidParameterError{Name: "r1", Value: r1}
	}
	if r2 < 0 {
		return nil, &InvalidParameterError{Name: "r2", Value: r2}
	}

	g1 := NewDiffOp(n1w).Gram()
	g2 := NewDiffOp(n2w).Gram()

	n := n1w * n2w
	r := mat.NewSymBandDense(n, bandwidth(n1w, n2w), nil)
	for i2 := 0; i2 < n2w; i2++ {
		for i1 := 0; i1 < n1w; i1++ {
			k := i1 + n1w*i2
			r.SetSymBand(k, k, r1*g1.At(i1, i1)+r2*g2.At(i2, i2))
			if i1+1 < n1w {
				r.SetSymBand(k, k+1, r1*g1.At(i1, i1+1))
			}
			if i2+1 < n2w {
				r.SetSymBand(k, k+n1w, r2*g2.At(i2, i2+1))
			}
		}
	}
	return r, nil
}

// addIdentity turns R into the system matrix A = I + R in place.
func addIdentity(r *mat.SymBandDense) {
	n, _ := r.Dims()
	for i := 0; i < n; i++ {
		r.SetSymBand(i, i, r.At(i, i)+1)
	}
}

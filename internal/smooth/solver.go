package smooth

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Solve solves the symmetric positive definite banded system a*x = f by
// direct Cholesky factorization. It rejects non-finite right-hand sides
// and never returns a partial result: on any failure the returned slice
// is nil and the error is a *SolveError.
func Solve(a *mat.SymBandDense, f []float64) ([]float64, error) {
	for _, v := range f {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &SolveError{Reason: "right-hand side contains a non-finite value"}
		}
	}

	var ch mat.BandCholesky
	if ok := ch.Factorize(a); !ok {
		return nil, &SolveError{Reason: "matrix is not positive definite"}
	}

	var x mat.VecDense
	if err := ch.SolveVecTo(&x, mat.NewVecDense(len(f), f)); err != nil {
		return nil, &SolveError{Reason: err.Error()}
	}

	out := make([]float64, len(f))
	for i := range out {
		v := x.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &SolveError{Reason: "solution contains a non-finite value"}
		}
		out[i] = v
	}
	return out, nil
}

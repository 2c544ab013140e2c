package smooth

import (
	"gonum.org/v1/gonum/floats"

	"github.com/Dai411/ISTRICI-tools/internal/grid"
)

// RelativeError returns the relative L2 deviation between two grids of
// identical shape: ||original - smoothed||₂ / ||original||₂ over every
// sample. An all-zero original grid yields a *DivideByZeroError.
func RelativeError(original, smoothed *grid.Grid) (float64, error) {
	if !original.SameShape(smoothed) {
		return 0, &grid.ShapeError{N1: original.N1, N2: original.N2, Len: len(smoothed.Data)}
	}
	ref := floats.Norm(original.Data, 2)
	if ref == 0 {
		return 0, &DivideByZeroError{}
	}
	return floats.Distance(original.Data, smoothed.Data, 2) / ref, nil
}

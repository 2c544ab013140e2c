package smooth

import "github.com/Dai411/ISTRICI-tools/internal/grid"

// Smooth returns a smoothed copy of g. r1 controls smoothing along
// axis 1 (depth), r2 along axis 2 (trace); either may be zero for no
// smoothing on that axis. If win is non-nil only the windowed samples
// are smoothed, using data from inside the window only, and every
// sample outside the window is copied verbatim. g is never modified.
func Smooth(g *grid.Grid, r1, r2 float64, win *grid.Window) (*grid.Grid, error) {
	if g.N1 <= 0 || g.N2 <= 0 || len(g.Data) != g.N1*g.N2 {
		return nil, &grid.ShapeError{N1: g.N1, N2: g.N2, Len: len(g.Data)}
	}
	if r1 < 0 {
		return nil, &InvalidParameterError{Name: "r1", Value: r1}
	}
	if r2 < 0 {
		return nil, &InvalidParameterError{Name: "r2", Value: r2}
	}

	w := grid.Full(g.N1, g.N2)
	if win != nil {
		w = *win
	}

	sub, err := grid.Extract(g, w)
	if err != nil {
		return nil, err
	}
	n1w, n2w := w.Dims()

	// The window's samples are already flattened axis-1-fastest, the
	// ordering the operator assembly assumes.
	a, err := Regularization(n1w, n2w, r1, r2)
	if err != nil {
		return nil, err
	}
	addIdentity(a)

	x, err := Solve(a, sub.Data)
	if err != nil {
		return nil, err
	}

	smoothed, err := grid.NewFrom(n1w, n2w, x)
	if err != nil {
		return nil, err
	}
	return grid.Reinsert(g, w, smoothed)
}

package grid

import "fmt"

// ShapeError reports a mismatch between a grid's declared dimensions and
// the number of samples backing it, or two grids whose dimensions differ.
type ShapeError struct {
	N1, N2 int
	Len    int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("grid shape (%d, %d) requires %d samples, have %d", e.N1, e.N2, e.N1*e.N2, e.Len)
}

// WindowError reports a window whose bounds fall outside the grid or are
// degenerate (start >= end on either axis).
type WindowError struct {
	Window Window
	N1, N2 int
}

func (e *WindowError) Error() string {
	w := e.Window
	return fmt.Sprintf("window [%d:%d, %d:%d] invalid for grid (%d, %d)",
		w.I1Start, w.I1End, w.I2Start, w.I2End, e.N1, e.N2)
}

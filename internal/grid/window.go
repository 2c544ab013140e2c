package grid

// Window is a half-open rectangular sub-range of a grid:
// depth indices [I1Start, I1End), trace indices [I2Start, I2End).
type Window struct {
	I1Start, I1End int
	I2Start, I2End int
}

// Full returns the window covering an entire (n1, n2) grid.
func Full(n1, n2 int) Window {
	return Window{I1Start: 0, I1End: n1, I2Start: 0, I2End: n2}
}

// Dims returns the window's extent along each axis.
func (w Window) Dims() (n1w, n2w int) {
	return w.I1End - w.I1Start, w.I2End - w.I2Start
}

// Validate checks the window against grid dimensions (n1, n2).
func (w Window) Validate(n1, n2 int) error {
	if w.I1Start < 0 || w.I1End > n1 || w.I1Start >= w.I1End ||
		w.I2Start < 0 || w.I2End > n2 || w.I2Start >= w.I2End {
		return &WindowError{Window: w, N1: n1, N2: n2}
	}
	return nil
}

// Extract copies the samples inside w out of g into a new (n1w, n2w)
// grid. g is not modified.
func Extract(g *Grid, w Window) (*Grid, error) {
	if err := w.Validate(g.N1, g.N2); err != nil {
		return nil, err
	}
	n1w, n2w := w.Dims()
	sub := New(n1w, n2w)
	for i2 := 0; i2 < n2w; i2++ {
		src := g.Data[w.I1Start+g.N1*(w.I2Start+i2):]
		copy(sub.Data[n1w*i2:n1w*(i2+1)], src[:n1w])
	}
	return sub, nil
}

// Reinsert returns a copy of g with the samples inside w replaced by
// sub. Samples outside w are copied verbatim; neither argument is
// modified.
func Reinsert(g *Grid, w Window, sub *Grid) (*Grid, error) {
	if err := w.Validate(g.N1, g.N2); err != nil {
		return nil, err
	}
	n1w, n2w := w.Dims()
	if sub.N1 != n1w || sub.N2 != n2w {
		return nil, &ShapeError{N1: n1w, N2: n2w, Len: len(sub.Data)}
	}
	out := g.Clone()
	for i2 := 0; i2 < n2w; i2++ {
		dst := out.Data[w.I1Start+out.N1*(w.I2Start+i2):]
		copy(dst[:n1w], sub.Data[n1w*i2:n1w*(i2+1)])
	}
	return out, nil
}

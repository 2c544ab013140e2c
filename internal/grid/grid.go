package grid

// Grid is a 2D block of samples with dimensions (n1, n2), stored
// axis-1-fastest: sample (i1, i2) is Data[i1 + n1*i2].
type Grid struct {
	N1   int
	N2   int
	Data []float64
}

// New returns a zero-filled grid of the given dimensions.
func New(n1, n2 int) *Grid {
	return &Grid{N1: n1, N2: n2, Data: make([]float64, n1*n2)}
}

// NewFrom wraps an existing axis-1-fastest sample slice. The slice is
// not copied; it must have exactly n1*n2 entries.
func NewFrom(n1, n2 int, data []float64) (*Grid, error) {
	if n1 <= 0 || n2 <= 0 || len(data) != n1*n2 {
		return nil, &ShapeError{N1: n1, N2: n2, Len: len(data)}
	}
	return &Grid{N1: n1, N2: n2, Data: data}, nil
}

// At returns the sample at depth index i1, trace index i2.
func (g *Grid) At(i1, i2 int) float64 { return g.Data[i1+g.N1*i2] }

// Set writes the sample at depth index i1, trace index i2.
func (g *Grid) Set(i1, i2 int, v float64) { g.Data[i1+g.N1*i2] = v }

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	data := make([]float64, len(g.Data))
	copy(data, g.Data)
	return &Grid{N1: g.N1, N2: g.N2, Data: data}
}

// SameShape reports whether g and other have identical dimensions.
func (g *Grid) SameShape(other *Grid) bool {
	return g.N1 == other.N1 && g.N2 == other.N2
}

// Fill sets every sample to v.
func (g *Grid) Fill(v float64) {
	for i := range g.Data {
		g.Data[i] = v
	}
}

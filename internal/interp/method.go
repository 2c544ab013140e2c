// Package interp selects horizon interpolation methods and
// velocity-depth profile shapes. Both selections are enums validated
// at construction, with the numeric interpolation itself delegated to
// gonum/interp.
package interp

import (
	"fmt"
	"math"
	"sort"

	gointerp "gonum.org/v1/gonum/interp"
)

// Method identifies a horizon interpolation scheme.
type Method int

const (
	Linear Method = iota
	Cubic
	Akima
	FritschButland
	Nearest
)

var methodNames = map[Method]string{
	Linear:         "linear",
	Cubic:          "cubic",
	Akima:          "akima",
	FritschButland: "fritschbutland",
	Nearest:        "nearest",
}

func (m Method) String() string {
	if s, ok := methodNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Method(%d)", int(m))
}

// ParseMethod resolves a method name or menu number ("1".."5").
func ParseMethod(s string) (Method, error) {
	switch s {
	case "linear", "1":
		return Linear, nil
	case "cubic", "2":
		return Cubic, nil
	case "akima", "3":
		return Akima, nil
	case "fritschbutland", "4":
		return FritschButland, nil
	case "nearest", "5":
		return Nearest, nil
	}
	return 0, fmt.Errorf("unknown interpolation method %q (valid: linear, cubic, akima, fritschbutland, nearest)", s)
}

func (m Method) predictor() (gointerp.FittablePredictor, error) {
	switch m {
	case Linear:
		return &gointerp.PiecewiseLinear{}, nil
	case Cubic:
		return &gointerp.NaturalCubic{}, nil
	case Akima:
		return &gointerp.AkimaSpline{}, nil
	case FritschButland:
		return &gointerp.FritschButland{}, nil
	case Nearest:
		return &gointerp.PiecewiseConstant{}, nil
	}
	return nil, fmt.Errorf("unknown interpolation method %d", int(m))
}

// Resample interpolates the horizon (xs, zs) onto the regular axis
// fx, fx+dx, ..., lx using the given method. Input points are sorted by
// x and duplicate abscissae collapsed before fitting; query points
// outside the input range are clamped to the endpoint depths rather
// than extrapolated.
func Resample(xs, zs []float64, fx, lx, dx float64, m Method) (xi, zi []float64, err error) {
	if len(xs) != len(zs) {
		return nil, nil, fmt.Errorf("resample: %d x values but %d z values", len(xs), len(zs))
	}
	if len(xs) < 2 {
		return nil, nil, fmt.Errorf("resample: need at least 2 points, have %d", len(xs))
	}
	if dx <= 0 || lx < fx {
		return nil, nil, fmt.Errorf("resample: invalid axis fx=%g lx=%g dx=%g", fx, lx, dx)
	}

	sx, sz := sortedUnique(xs, zs)
	if len(sx) < 2 {
		return nil, nil, fmt.Errorf("resample: fewer than 2 distinct x values")
	}

	p, err := m.predictor()
	if err != nil {
		return nil, nil, err
	}
	if err := p.Fit(sx, sz); err != nil {
		return nil, nil, fmt.Errorf("resample: fit %s: %w", m, err)
	}

	n := int(math.Floor((lx-fx)/dx+1e-9)) + 1
	xi = make([]float64, n)
	zi = make([]float64, n)
	lo, hi := sx[0], sx[len(sx)-1]
	for i := 0; i < n; i++ {
		x := fx + float64(i)*dx
		xi[i] = x
		switch {
		case x <= lo:
			zi[i] = sz[0]
		case x >= hi:
			zi[i] = sz[len(sz)-1]
		default:
			zi[i] = p.Predict(x)
		}
	}
	return xi, zi, nil
}

// sortedUnique returns the points ordered by x with exact duplicate
// abscissae collapsed (last value wins).
func sortedUnique(xs, zs []float64) ([]float64, []float64) {
	idx := make([]int, len(xs))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	sx := make([]float64, 0, len(xs))
	sz := make([]float64, 0, len(zs))
	for _, i := range idx {
		if n := len(sx); n > 0 && sx[n-1] == xs[i] {
			sz[n-1] = zs[i]
			continue
		}
		sx = append(sx, xs[i])
		sz = append(sz, zs[i])
	}
	return sx, sz
}

package interp

import (
	"fmt"
	"math"

	"github.com/Dai411/ISTRICI-tools/internal/formula"
)

// Shape identifies a velocity-depth profile between a layer's top and
// bottom velocities.
type Shape int

const (
	ShapeLinear Shape = iota
	ShapeLog
	ShapeExp
	ShapeSqrt
	ShapeSquare
	ShapeSigmoid
	ShapeBell
	ShapeCustom
)

var shapeNames = map[Shape]string{
	ShapeLinear:  "linear",
	ShapeLog:     "log",
	ShapeExp:     "exp",
	ShapeSqrt:    "sqrt",
	ShapeSquare:  "square",
	ShapeSigmoid: "sigmoid",
	ShapeBell:    "bell",
	ShapeCustom:  "custom",
}

func (s Shape) String() string {
	if n, ok := shapeNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// ParseShape resolves a shape name or menu number ("1".."8").
func ParseShape(s string) (Shape, error) {
	switch s {
	case "linear", "1":
		return ShapeLinear, nil
	case "log", "2":
		return ShapeLog, nil
	case "exp", "3":
		return ShapeExp, nil
	case "sqrt", "4":
		return ShapeSqrt, nil
	case "square", "5":
		return ShapeSquare, nil
	case "sigmoid", "6":
		return ShapeSigmoid, nil
	case "bell", "7":
		return ShapeBell, nil
	case "custom", "8":
		return ShapeCustom, nil
	}
	return 0, fmt.Errorf("unknown profile shape %q (valid: linear, log, exp, sqrt, square, sigmoid, bell, custom)", s)
}

// Profile samples a velocity profile of npts values between vTop and
// vBottom over normalized depth t in [0, 1]. For ShapeCustom the
// formula gives the velocity directly as a function of t, and vTop and
// vBottom are ignored.
func Profile(shape Shape, npts int, vTop, vBottom float64, custom *formula.Expr) ([]float64, error) {
	if npts < 2 {
		return nil, fmt.Errorf("profile: need at least 2 points, have %d", npts)
	}
	if shape == ShapeCustom && custom == nil {
		return nil, fmt.Errorf("profile: custom shape requires a formula")
	}

	dv := vBottom - vTop
	out := make([]float64, npts)
	for i := range out {
		t := float64(i) / float64(npts-1)
		switch shape {
		case ShapeLinear:
			out[i] = vTop + dv*t
		case ShapeLog:
			out[i] = vTop + dv*math.Log1p(9*t)/math.Log(10)
		case ShapeExp:
			out[i] = vTop + dv*(math.Exp(2*t)-1)/(math.E*math.E-1)
		case ShapeSqrt:
			out[i] = vTop + dv*math.Sqrt(t)
		case ShapeSquare:
			out[i] = vTop + dv*t*t
		case ShapeSigmoid:
			out[i] = vTop + dv/(1+math.Exp(-10*(t-0.5)))
		case ShapeBell:
			out[i] = vTop + dv*(1-math.Abs(2*t-1))
		case ShapeCustom:
			out[i] = custom.Eval(t)
		default:
			return nil, fmt.Errorf("unknown profile shape %d", int(shape))
		}
	}
	return out, nil
}

package interp

import (
	"math"
	"testing"

	"github.com/Dai411/ISTRICI-tools/internal/formula"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		in   string
		want Method
	}{
		{"linear", Linear},
		{"1", Linear},
		{"cubic", Cubic},
		{"akima", Akima},
		{"5", Nearest},
	}
	for _, tt := range tests {
		got, err := ParseMethod(tt.in)
		if err != nil {
			t.Errorf("ParseMethod(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMethod(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseMethod("bspline"); err == nil {
		t.Error("ParseMethod(bspline) succeeded, want error")
	}
}

func TestResampleLinear(t *testing.T) {
	xs := []float64{0, 100, 200}
	zs := []float64{50, 70, 60}

	xi, zi, err := Resample(xs, zs, 0, 200, 50, Linear)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if len(xi) != 5 {
		t.Fatalf("len(xi) = %d, want 5", len(xi))
	}
	want := []float64{50, 60, 70, 65, 60}
	for i := range want {
		if math.Abs(zi[i]-want[i]) > 1e-12 {
			t.Errorf("zi[%d] = %v, want %v", i, zi[i], want[i])
		}
	}
}

func TestResampleUnsortedInput(t *testing.T) {
	// Picks arrive in picking order, not x order.
	xs := []float64{200, 0, 100}
	zs := []float64{60, 50, 70}

	_, zi, err := Resample(xs, zs, 0, 200, 100, Linear)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	for i, want := range []float64{50, 70, 60} {
		if math.Abs(zi[i]-want) > 1e-12 {
			t.Errorf("zi[%d] = %v, want %v", i, zi[i], want)
		}
	}
}

func TestResampleClampsOutOfRange(t *testing.T) {
	xs := []float64{100, 200}
	zs := []float64{10, 20}

	_, zi, err := Resample(xs, zs, 0, 300, 100, Cubic)
	if err != nil {
		t.Fatalf("Resample: %v", err)
	}
	if zi[0] != 10 {
		t.Errorf("left of range = %v, want clamped 10", zi[0])
	}
	if zi[3] != 20 {
		t.Errorf("right of range = %v, want clamped 20", zi[3])
	}
}

func TestResampleInterpolatesThroughPoints(t *testing.T) {
	xs := []float64{0, 50, 100, 150, 200}
	zs := []float64{100, 120, 90, 95, 110}
	for _, m := range []Method{Linear, Cubic, Akima, FritschButland} {
		_, zi, err := Resample(xs, zs, 0, 200, 50, m)
		if err != nil {
			t.Fatalf("Resample(%v): %v", m, err)
		}
		for i := range xs {
			if math.Abs(zi[i]-zs[i]) > 1e-9 {
				t.Errorf("%v: zi[%d] = %v, want knot value %v", m, i, zi[i], zs[i])
			}
		}
	}
}

func TestResampleRejectsDegenerateInput(t *testing.T) {
	if _, _, err := Resample([]float64{1}, []float64{2}, 0, 10, 1, Linear); err == nil {
		t.Error("single point accepted")
	}
	if _, _, err := Resample([]float64{1, 2}, []float64{3, 4}, 0, 10, -1, Linear); err == nil {
		t.Error("negative dx accepted")
	}
	if _, _, err := Resample([]float64{5, 5}, []float64{1, 2}, 0, 10, 1, Linear); err == nil {
		t.Error("duplicate-only abscissae accepted")
	}
}

func TestProfileShapes(t *testing.T) {
	const vTop, vBottom = 1500.0, 2500.0
	for _, shape := range []Shape{ShapeLinear, ShapeLog, ShapeExp, ShapeSqrt, ShapeSquare, ShapeBell} {
		p, err := Profile(shape, 11, vTop, vBottom, nil)
		if err != nil {
			t.Fatalf("Profile(%v): %v", shape, err)
		}
		if len(p) != 11 {
			t.Fatalf("Profile(%v) len = %d, want 11", shape, len(p))
		}
		if math.Abs(p[0]-vTop) > 1e-9 {
			t.Errorf("%v: p[0] = %v, want %v", shape, p[0], vTop)
		}
		// bell returns to the top velocity at the bottom; all other
		// non-custom shapes end at vBottom.
		wantEnd := vBottom
		if shape == ShapeBell {
			wantEnd = vTop
		}
		if math.Abs(p[10]-wantEnd) > 1e-9 {
			t.Errorf("%v: p[10] = %v, want %v", shape, p[10], wantEnd)
		}
	}
}

func TestProfileSigmoidMidpoint(t *testing.T) {
	p, err := Profile(ShapeSigmoid, 11, 1000, 2000, nil)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(p[5]-1500) > 1e-9 {
		t.Errorf("sigmoid midpoint = %v, want 1500", p[5])
	}
}

func TestProfileCustom(t *testing.T) {
	expr, err := formula.Parse("x^0.5 + 1550")
	if err != nil {
		t.Fatal(err)
	}
	p, err := Profile(ShapeCustom, 5, 0, 0, expr)
	if err != nil {
		t.Fatal(err)
	}
	if p[0] != 1550 {
		t.Errorf("p[0] = %v, want 1550", p[0])
	}
	if math.Abs(p[4]-1551) > 1e-12 {
		t.Errorf("p[4] = %v, want 1551", p[4])
	}

	if _, err := Profile(ShapeCustom, 5, 0, 0, nil); err == nil {
		t.Error("custom shape without formula accepted")
	}
}

package velmodel

import (
	"math"
	"testing"

	"github.com/Dai411/ISTRICI-tools/internal/formula"
	"github.com/Dai411/ISTRICI-tools/internal/interp"
)

func flatHorizon(nx int, z float64) []float64 {
	h := make([]float64, nx)
	for i := range h {
		h[i] = z
	}
	return h
}

func TestBuildConstantLayer(t *testing.T) {
	m, err := New(10, 4, 10, 25, 1500)
	if err != nil {
		t.Fatal(err)
	}
	// One horizon at 50m: background above, constant 2000 below.
	if err := m.AddHorizon(flatHorizon(4, 50)); err != nil {
		t.Fatal(err)
	}

	g, err := m.Build([]Layer{{Constant: true, V: 2000}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for j := 0; j < 4; j++ {
		for i := 0; i < 5; i++ {
			if got := g.At(i, j); got != 1500 {
				t.Errorf("above horizon At(%d,%d) = %v, want 1500", i, j, got)
			}
		}
		for i := 5; i < 10; i++ {
			if got := g.At(i, j); got != 2000 {
				t.Errorf("below horizon At(%d,%d) = %v, want 2000", i, j, got)
			}
		}
	}
}

func TestBuildProfiledLayer(t *testing.T) {
	m, err := New(11, 2, 10, 25, 1500)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddHorizon(flatHorizon(2, 0)); err != nil {
		t.Fatal(err)
	}

	g, err := m.Build([]Layer{{VTop: 1600, VBottom: 2600, Shape: interp.ShapeLinear}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.At(0, 0); got != 1600 {
		t.Errorf("top of layer = %v, want 1600", got)
	}
	if got := g.At(10, 0); got != 2600 {
		t.Errorf("bottom of layer = %v, want 2600", got)
	}
	if got := g.At(5, 1); math.Abs(got-2100) > 1e-9 {
		t.Errorf("mid layer = %v, want 2100", got)
	}
}

func TestBuildCustomFormulaLayer(t *testing.T) {
	expr, err := formula.Parse("1500 + 500*x")
	if err != nil {
		t.Fatal(err)
	}
	m, err := New(6, 2, 10, 25, 1000)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddHorizon(flatHorizon(2, 0)); err != nil {
		t.Fatal(err)
	}

	g, err := m.Build([]Layer{{Shape: interp.ShapeCustom, Formula: expr}})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := g.At(0, 0); got != 1500 {
		t.Errorf("top = %v, want 1500", got)
	}
	if got := g.At(5, 0); got != 2000 {
		t.Errorf("bottom = %v, want 2000", got)
	}
}

func TestBuildSlopedHorizon(t *testing.T) {
	m, err := New(10, 3, 10, 25, 1500)
	if err != nil {
		t.Fatal(err)
	}
	// Horizon deepens across traces: 20m, 50m, 80m.
	if err := m.AddHorizon([]float64{20, 50, 80}); err != nil {
		t.Fatal(err)
	}
	g, err := m.Build([]Layer{{Constant: true, V: 3000}})
	if err != nil {
		t.Fatal(err)
	}
	for j, topIdx := range []int{2, 5, 8} {
		if got := g.At(topIdx-1, j); got != 1500 {
			t.Errorf("trace %d above horizon = %v, want 1500", j, got)
		}
		if got := g.At(topIdx, j); got != 3000 {
			t.Errorf("trace %d at horizon = %v, want 3000", j, got)
		}
	}
}

func TestValidation(t *testing.T) {
	if _, err := New(0, 4, 10, 25, 1500); err == nil {
		t.Error("nz = 0 accepted")
	}
	if _, err := New(10, 4, -1, 25, 1500); err == nil {
		t.Error("negative dz accepted")
	}

	m, err := New(10, 4, 10, 25, 1500)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.AddHorizon(flatHorizon(3, 50)); err == nil {
		t.Error("wrong-length horizon accepted")
	}
	if _, err := m.Build([]Layer{{Constant: true, V: 1}}); err == nil {
		t.Error("layer count mismatch accepted")
	}
}

package main

import (
	"testing"

	"github.com/Dai411/ISTRICI-tools/internal/grid"
)

func TestDetectOrderColumnMajor(t *testing.T) {
	// Depth-fastest layout: each column is a smooth ramp, traces differ
	// by a constant offset. Consecutive flat samples step gently.
	g := grid.New(50, 20)
	for i2 := 0; i2 < g.N2; i2++ {
		for i1 := 0; i1 < g.N1; i1++ {
			g.Set(i1, i2, 1500+10*float64(i1)+500*float64(i2))
		}
	}
	order, _, _ := detectOrder(g)
	if order != "column-major" {
		t.Fatalf("detectOrder = %q, want column-major", order)
	}
}

func TestDetectOrderRowMajor(t *testing.T) {
	// The same field stored trace-fastest: consecutive flat samples jump
	// between traces, while samples n2 apart step gently down one trace.
	g := grid.New(50, 20)
	for i2 := 0; i2 < g.N2; i2++ {
		for i1 := 0; i1 < g.N1; i1++ {
			// Value that would sit at flat index i1+N1*i2 if the file had
			// been written row-major.
			row := (i1 + g.N1*i2) / g.N2
			col := (i1 + g.N1*i2) % g.N2
			g.Set(i1, i2, 1500+10*float64(row)+500*float64(col))
		}
	}
	order, _, _ := detectOrder(g)
	if order != "row-major" {
		t.Fatalf("detectOrder = %q, want row-major", order)
	}
}

func TestRunRoughnessConstant(t *testing.T) {
	data := []float64{3, 3, 3, 3, 3, 3}
	if got := runRoughness(data, 3); got != 0 {
		t.Fatalf("runRoughness of constant data = %v, want 0", got)
	}
}

func TestStrideRoughness(t *testing.T) {
	// Stride-2 pairs each differ by 4: (1,5), (3,7), (5,9), (7,11).
	data := []float64{1, 3, 5, 7, 9, 11}
	if got := strideRoughness(data, 2); got != 4 {
		t.Fatalf("strideRoughness = %v, want 4", got)
	}
	// A stride beyond the stream length has no pairs to score.
	if got := strideRoughness(data, 6); got != 0 {
		t.Fatalf("strideRoughness past end = %v, want 0", got)
	}
}

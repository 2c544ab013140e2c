package formula

import (
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		src  string
		x    float64
		want float64
	}{
		{"1500", 0.3, 1500},
		{"x", 0.25, 0.25},
		{"t", 0.25, 0.25},
		{"x^0.5 + 1550", 0.25, 1550.5},
		{"x**0.5 + 1550", 0.25, 1550.5},
		{"1500 + 100*x^2", 0.5, 1525},
		{"2^3^2", 0, 512},
		{"-x^2", 3, -9},
		{"x^-1", 4, 0.25},
		{"(1 + x) * 2", 2, 6},
		{"sqrt(x)", 16, 4},
		{"exp(0)", 1, 1},
		{"log1p(0)", 1, 0},
		{"abs(-3) + cos(0)", 0, 4},
		{"2*pi", 0, 2 * math.Pi},
		{"e", 0, math.E},
		{"1500 + 250*log1p(9*x)/log(10)", 1, 1500 + 250*math.Log1p(9)/math.Log(10)},
		{"1e3 + x", 1, 1001},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			got := e.Eval(tt.x)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Eval(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	bad := []string{
		"",
		"x +",
		"(x",
		"import os",
		"__builtins__",
		"open(x)",
		"x; y",
		"y + 1",
		"sqrt(x, 2)",
		"x & 1",
		"1..2",
	}
	for _, src := range bad {
		if _, err := Parse(src); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", src)
		}
	}
}

func TestPrecedence(t *testing.T) {
	// a + b^c must bind the power before the sum.
	e, err := Parse("1 + 2^3")
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Eval(0); got != 9 {
		t.Errorf("1 + 2^3 = %v, want 9", got)
	}

	e, err = Parse("2*x**2")
	if err != nil {
		t.Fatal(err)
	}
	if got := e.Eval(3); got != 18 {
		t.Errorf("2*x**2 at x=3 = %v, want 18", got)
	}
}

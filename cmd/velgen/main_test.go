package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Dai411/ISTRICI-tools/internal/prompt"
	"github.com/Dai411/ISTRICI-tools/internal/velio"
)

func TestRunBuildsLayeredModel(t *testing.T) {
	dir := t.TempDir()
	picks := filepath.Join(dir, "horizon.txt")
	// Flat horizon at depth 4 given as sparse (z, x) picks.
	if err := os.WriteFile(picks, []byte("4 0\n4 4\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "model.bin")

	// nz, nx, dz (default), dx (default), background (default),
	// add first horizon (default yes), file, raw picks (default yes),
	// method (default linear), save interpolated (default no),
	// add another (no), preview (no),
	// layer 1 constant (default yes) at 3000, PNG (no), HTML (no).
	script := strings.Join([]string{
		"10", "5", "", "", "",
		"", picks, "", "", "",
		"n", "",
		"", "3000",
		"", "",
	}, "\n") + "\n"

	p := prompt.New(strings.NewReader(script), io.Discard)
	if err := run(p, out); err != nil {
		t.Fatalf("run: %v", err)
	}

	g, err := velio.ReadGrid(out, 10, 5)
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	for i2 := 0; i2 < g.N2; i2++ {
		for i1 := 0; i1 < g.N1; i1++ {
			want := 1500.0
			if i1 >= 4 {
				want = 3000.0
			}
			if got := g.At(i1, i2); got != want {
				t.Fatalf("model[%d,%d] = %v, want %v", i1, i2, got, want)
			}
		}
	}
}

func TestRunProfileLayer(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "model.bin")
	horizon := filepath.Join(dir, "horizon.txt")
	// Interpolated horizon file: one (x, z) row per trace, depth 0, so a
	// single layer spans the whole model.
	if err := os.WriteFile(horizon, []byte("0 0\n1 0\n2 0\n3 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	script := strings.Join([]string{
		"8", "4", "", "", "",
		"", horizon, "n",
		"n", "",
		"n", "1500", "3000", "linear",
		"", "",
	}, "\n") + "\n"

	p := prompt.New(strings.NewReader(script), io.Discard)
	if err := run(p, out); err != nil {
		t.Fatalf("run: %v", err)
	}

	g, err := velio.ReadGrid(out, 8, 4)
	if err != nil {
		t.Fatalf("ReadGrid: %v", err)
	}
	// Linear ramp from 1500 at the top sample to 3000 at the bottom one.
	if got := g.At(0, 0); got != 1500 {
		t.Fatalf("top sample = %v, want 1500", got)
	}
	if got := g.At(7, 0); got != 3000 {
		t.Fatalf("bottom sample = %v, want 3000", got)
	}
	if top, mid := g.At(0, 2), g.At(4, 2); mid <= top {
		t.Fatalf("profile not increasing: top %v, mid %v", top, mid)
	}
}

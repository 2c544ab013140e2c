// Package testutil provides shared test utilities and fixtures.
//
// This package centralises common test helpers to reduce code duplication
// across test files and improve test maintainability.
package testutil

import (
	"testing"

	"github.com/Dai411/ISTRICI-tools/internal/grid"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t testing.TB, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// RampGrid returns an n1 by n2 grid with velocities increasing from a
// water-like 1500 m/s, varied per sample so neighbouring values differ.
func RampGrid(n1, n2 int) *grid.Grid {
	g := grid.New(n1, n2)
	for i := range g.Data {
		g.Data[i] = 1500 + float64(i%13)*50
	}
	return g
}

// ConstantGrid returns an n1 by n2 grid filled with v.
func ConstantGrid(n1, n2 int, v float64) *grid.Grid {
	g := grid.New(n1, n2)
	g.Fill(v)
	return g
}

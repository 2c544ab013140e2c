// Package smooth implements regularized 2D grid smoothing in the style
// of Seismic Unix smooth2.
//
// Given a grid f over a window of size (n1w, n2w), the smoothed grid x
// minimises ||x - f||^2 plus a first-difference roughness penalty with
// per-axis weights r1 and r2. The minimiser solves the sparse linear
// system
//
//	(I + r1*(I ⊗ D1ᵀD1) + r2*(D2ᵀD2 ⊗ I)) x = f
//
// with samples flattened axis-1-fastest, so the system matrix is
// symmetric positive definite with half-bandwidth n1w. The solve is a
// direct banded Cholesky factorization (gonum mat.BandCholesky); with
// the identity term the system is always well conditioned and solution
// values are accurate to well below 1e-8 relative, the tolerance used
// by the package tests.
//
// All entry points are pure: inputs are never mutated, nothing is
// logged, and no state persists between calls.
package smooth

// Package grid owns the 2D velocity-grid data model.
//
// A Grid is a rectangular block of float64 samples with dimensions
// (n1, n2): axis 1 is depth (samples per trace), axis 2 is distance
// (trace index). Samples are stored axis-1-fastest, the same layout as
// the on-disk Fortran-order binary format, so index (i1, i2) lives at
// Data[i1 + n1*i2].
//
// Windows select a rectangular half-open sub-range of a grid for
// processing in isolation. Extract and Reinsert never mutate their
// inputs; callers always get an independent grid back.
package grid

// Package numeric provides shared numerical helpers for baseline
// estimation: the relative-difference convergence metric, a
// scalar-or-array parameter union, and smoothing kernels.
//
// All functions operate on float64 slices and never modify their
// inputs.
package numeric

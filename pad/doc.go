// Package pad extends 1-D sequences at both ends so that windowed
// scans and convolutions do not read out of bounds or shrink near the
// edges.
//
// Built-in modes:
//
//   - [ModeReflect]:     mirror about the edge sample, without
//     repeating it (the default)
//   - [ModeEdge]:        repeat the edge sample
//   - [ModeConstant]:    fill with a constant value
//   - [ModeExtrapolate]: fit a line to a boundary window and extend
//     the trend outward
//
// A user-supplied [FillFunc] replaces the built-in modes entirely.
//
// [PaddedConvolve] combines edge extension with linear convolution and
// trims the result back to the input length, avoiding the
// edge-darkening artifacts of naive same-mode convolution.
package pad

// Package morph provides greyscale morphological operators over 1-D
// sequences with a flat structuring element of configurable
// half-window.
//
// Erosion and dilation are the elementary sliding-window minimum and
// maximum; opening and closing compose them. All operators extend the
// input by the half-window (reflected) before scanning, so windows
// near the edges never shrink or read out of bounds.
//
// [OptimizeWindow] estimates a usable half-window for a signal when
// the caller does not supply one.
package morph

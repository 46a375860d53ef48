package pad

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
)

// ErrEmptyKernel is returned when a convolution kernel has no
// coefficients.
var ErrEmptyKernel = errors.New("pad: empty kernel")

// Kernels at or below this length use direct convolution; longer
// kernels go through the FFT path.
const directThreshold = 64

// PaddedConvolve convolves data with kernel after extending the data
// by len(kernel) samples on each side, then trims the result back to
// len(data) with the kernel centered. The padding options are the same
// as for PadEdges; the default is ModeReflect.
//
// The output always has the same length as the input.
func PaddedConvolve(data, kernel []float64, opts ...Option) ([]float64, error) {
	if len(kernel) == 0 {
		return nil, ErrEmptyKernel
	}

	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	padded, err := PadEdges(data, len(kernel), opts...)
	if err != nil {
		return nil, err
	}

	full, err := convolveFull(padded, kernel)
	if err != nil {
		return nil, err
	}

	// Center the kernel and drop the pad: the "same"-mode offset into
	// the full result is (len(kernel)-1)/2, shifted by the pad length.
	start := len(kernel) + (len(kernel)-1)/2
	out := make([]float64, len(data))
	copy(out, full[start:start+len(data)])
	return out, nil
}

// convolveFull computes the full linear convolution of a and b,
// length len(a)+len(b)-1. Short kernels use the direct algorithm;
// longer ones an FFT product.
func convolveFull(a, b []float64) ([]float64, error) {
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return directFull(a, b), nil
	}

	return fftFull(a, b)
}

// directFull is the O(N*M) time-domain convolution.
func directFull(a, b []float64) []float64 {
	out := make([]float64, len(a)+len(b)-1)
	for i, av := range a {
		for j, bv := range b {
			out[i+j] += av * bv
		}
	}

	return out
}

// fftFull convolves via a zero-padded FFT product.
func fftFull(a, b []float64) ([]float64, error) {
	n := len(a) + len(b) - 1
	size := nextPowerOf2(n)

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("pad: failed to create FFT plan: %w", err)
	}

	fa := make([]complex128, size)
	for i, v := range a {
		fa[i] = complex(v, 0)
	}

	fb := make([]complex128, size)
	for i, v := range b {
		fb[i] = complex(v, 0)
	}

	if err := plan.Forward(fa, fa); err != nil {
		return nil, fmt.Errorf("pad: forward FFT failed: %w", err)
	}

	if err := plan.Forward(fb, fb); err != nil {
		return nil, fmt.Errorf("pad: forward FFT failed: %w", err)
	}

	for i := range fa {
		fa[i] *= fb[i]
	}

	if err := plan.Inverse(fa, fa); err != nil {
		return nil, fmt.Errorf("pad: inverse FFT failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(fa[i])
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}

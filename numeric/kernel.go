package numeric

import "math"

// GaussianKernel returns a normalized Gaussian smoothing kernel of
// size 2*halfWindow + 1. The kernel coefficients sum to 1, so
// convolution preserves the signal mean. A half-window of 0 (or less)
// yields the identity kernel [1].
func GaussianKernel(halfWindow int, sigma float64) []float64 {
	if halfWindow <= 0 {
		return []float64{1}
	}

	if sigma <= 0 {
		sigma = 1
	}

	size := 2*halfWindow + 1
	kernel := make([]float64, size)

	for i := range kernel {
		t := float64(i-halfWindow) / sigma
		kernel[i] = math.Exp(-0.5 * t * t)
	}

	normalize(kernel)
	return kernel
}

// MollifierKernel returns a normalized compact-support mollifier of
// size 2*halfWindow + 1: exp(-1/(1-t^2)) on (-1, 1), zero at the
// endpoints. A half-window of 0 (or less) yields the identity
// kernel [1].
func MollifierKernel(halfWindow int) []float64 {
	if halfWindow <= 0 {
		return []float64{1}
	}

	size := 2*halfWindow + 1
	kernel := make([]float64, size)

	for i := 1; i < size-1; i++ {
		t := float64(i-halfWindow) / float64(halfWindow)
		kernel[i] = math.Exp(-1 / (1 - t*t))
	}

	normalize(kernel)
	return kernel
}

// UniformKernel returns a moving-average kernel of size
// 2*halfWindow + 1 with equal coefficients summing to 1.
func UniformKernel(halfWindow int) []float64 {
	if halfWindow <= 0 {
		return []float64{1}
	}

	size := 2*halfWindow + 1
	kernel := make([]float64, size)
	v := 1 / float64(size)

	for i := range kernel {
		kernel[i] = v
	}

	return kernel
}

// normalize scales the kernel to unit area.
func normalize(kernel []float64) {
	var sum float64
	for _, v := range kernel {
		sum += v
	}

	if sum == 0 {
		return
	}

	inv := 1 / sum
	for i := range kernel {
		kernel[i] *= inv
	}
}

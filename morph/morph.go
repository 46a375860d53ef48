package morph

import "github.com/cwbudde/algo-baseline/pad"

// Erosion returns the sliding-window minimum of data with a flat
// structuring element of the given half-window. A half-window of 0 or
// less returns a copy of the input.
func Erosion(data []float64, halfWindow int) []float64 {
	return slidingExtrema(data, halfWindow, true)
}

// Dilation returns the sliding-window maximum of data with a flat
// structuring element of the given half-window. A half-window of 0 or
// less returns a copy of the input.
func Dilation(data []float64, halfWindow int) []float64 {
	return slidingExtrema(data, halfWindow, false)
}

// Opening is the dilation of the erosion. It removes peaks narrower
// than the structuring element while preserving broad trends.
func Opening(data []float64, halfWindow int) []float64 {
	return Dilation(Erosion(data, halfWindow), halfWindow)
}

// Closing is the erosion of the dilation, the dual of Opening.
func Closing(data []float64, halfWindow int) []float64 {
	return Erosion(Dilation(data, halfWindow), halfWindow)
}

// RollingBallPass simulates a rolling-ball filter as a minimum-filter
// pass followed by a maximum-filter pass with the same half-window.
func RollingBallPass(data []float64, halfWindow int) []float64 {
	return Dilation(Erosion(data, halfWindow), halfWindow)
}

// slidingExtrema computes the windowed minimum (or maximum) over a
// window of 2*halfWindow+1 samples, using a monotonic index deque for
// an O(n) scan. The input is reflect-padded by the half-window first.
func slidingExtrema(data []float64, halfWindow int, min bool) []float64 {
	out := make([]float64, len(data))
	if halfWindow <= 0 || len(data) == 0 {
		copy(out, data)
		return out
	}

	padded, err := pad.PadEdges(data, halfWindow)
	if err != nil {
		// Unreachable: halfWindow > 0 and data non-empty.
		copy(out, data)
		return out
	}

	window := 2*halfWindow + 1
	deque := make([]int, 0, window)

	// better reports whether a should replace b at the window extreme.
	better := func(a, b float64) bool {
		if min {
			return a <= b
		}
		return a >= b
	}

	for i, v := range padded {
		for len(deque) > 0 && better(v, padded[deque[len(deque)-1]]) {
			deque = deque[:len(deque)-1]
		}

		deque = append(deque, i)

		if deque[0] <= i-window {
			deque = deque[1:]
		}

		if i >= window-1 {
			out[i-window+1] = padded[deque[0]]
		}
	}

	return out
}

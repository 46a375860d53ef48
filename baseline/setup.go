package baseline

import (
	"fmt"
	"math"
	"sort"

	"github.com/cwbudde/algo-baseline/morph"
)

// prepare validates the input, copies it so the caller's slice is
// never mutated, and resolves the morphological half-window.
func prepare(y []float64, cfg *config) (data []float64, halfWindow int, err error) {
	if len(y) == 0 {
		return nil, 0, ErrEmptyData
	}

	if cfg.halfWindow < 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidHalfWindow, cfg.halfWindow)
	}

	data = make([]float64, len(y))
	copy(data, y)

	halfWindow = cfg.halfWindow
	if halfWindow == 0 {
		halfWindow = morph.OptimizeWindow(data)
	}

	return data, halfWindow, nil
}

// minSlices returns the elementwise minimum of a and b.
func minSlices(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = math.Min(v, b[i])
	}

	return out
}

// subSlices returns a - b.
func subSlices(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i, v := range a {
		out[i] = v - b[i]
	}

	return out
}

// median returns the middle value of data without modifying it.
func median(data []float64) float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}

	return 0.5 * (sorted[n/2-1] + sorted[n/2])
}

// morphWeights seeds the reweighted least-squares methods: points on
// flat segments of the morphological opening act as baseline anchors
// with weight 1-p, the remaining (peak-influenced) points get p.
func morphWeights(data []float64, halfWindow int, p float64) []float64 {
	rough := morph.Opening(data, halfWindow)
	weights := make([]float64, len(data))

	for i := range weights {
		flat := (i > 0 && rough[i] == rough[i-1]) ||
			(i+1 < len(rough) && rough[i] == rough[i+1])

		if flat {
			weights[i] = 1 - p
		} else {
			weights[i] = p
		}
	}

	return weights
}

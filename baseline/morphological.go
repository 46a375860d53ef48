package baseline

import (
	"github.com/cwbudde/algo-baseline/morph"
	"github.com/cwbudde/algo-baseline/numeric"
	"github.com/cwbudde/algo-baseline/pad"
)

// Mor estimates the baseline as the averaged morphological opening of
// the signal, clipped from above by the signal itself.
func Mor(y []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	data, halfWindow, err := prepare(y, &cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Baseline:   minSlices(data, averagedOpening(data, halfWindow)),
		HalfWindow: halfWindow,
	}, nil
}

// averagedOpening averages the dilation and erosion of the opening,
// smearing the staircase artifacts of a plain opening.
func averagedOpening(data []float64, halfWindow int) []float64 {
	opening := morph.Opening(data, halfWindow)
	dilated := morph.Dilation(opening, halfWindow)
	eroded := morph.Erosion(opening, halfWindow)

	out := make([]float64, len(data))
	for i := range out {
		out[i] = 0.5 * (dilated[i] + eroded[i])
	}

	return out
}

// IMor iteratively refines the Mor estimate: each round takes the
// elementwise minimum of the data and a fresh opening of the current
// baseline, until the relative change drops below the tolerance or
// the iteration cap is hit.
func IMor(y []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	data, halfWindow, err := prepare(y, &cfg)
	if err != nil {
		return nil, err
	}

	baseline := make([]float64, len(data))
	copy(baseline, data)

	history := make([]float64, 0, cfg.maxIter+1)

	for i := 0; i <= cfg.maxIter; i++ {
		next := minSlices(data, morph.Opening(baseline, halfWindow))

		diff := numeric.RelativeDifference(baseline, next)
		history = append(history, diff)
		baseline = next

		if diff < cfg.tol {
			break
		}
	}

	return &Result{
		Baseline:   baseline,
		HalfWindow: halfWindow,
		TolHistory: history,
	}, nil
}

// MorMol iterates a mollified opening: the input is smoothed with a
// compact-support mollifier kernel, and each round lifts the current
// baseline by the opening of the remaining residual, clips it by the
// smoothed data, and re-mollifies. The mollifier half-window defaults
// to 1.
func MorMol(y []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	data, halfWindow, err := prepare(y, &cfg)
	if err != nil {
		return nil, err
	}

	smoothHalf := 1
	if cfg.smoothSet {
		smoothHalf = cfg.smoothHalfWindow
	}

	kernel := numeric.MollifierKernel(smoothHalf)

	smooth, err := pad.PaddedConvolve(data, kernel, cfg.padOpts...)
	if err != nil {
		return nil, err
	}

	baseline := make([]float64, len(data))
	history := make([]float64, 0, cfg.maxIter+1)

	for i := 0; i <= cfg.maxIter; i++ {
		lifted := morph.Opening(subSlices(smooth, baseline), halfWindow)
		for j := range lifted {
			lifted[j] += baseline[j]
		}

		next, err := pad.PaddedConvolve(minSlices(smooth, lifted), kernel, cfg.padOpts...)
		if err != nil {
			return nil, err
		}

		diff := numeric.RelativeDifference(baseline, next)
		history = append(history, diff)
		baseline = next

		if diff < cfg.tol {
			break
		}
	}

	return &Result{
		Baseline:   baseline,
		HalfWindow: halfWindow,
		TolHistory: history,
	}, nil
}

// AMorMol iterates an averaged, mollified morphology: each round
// clips the current baseline by the smoothed data, averages the
// opening and closing of the clipped estimate, and mollifies the
// average. The mollifier half-window defaults to the morphological
// half-window.
func AMorMol(y []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	data, halfWindow, err := prepare(y, &cfg)
	if err != nil {
		return nil, err
	}

	smoothHalf := halfWindow
	if cfg.smoothSet {
		smoothHalf = cfg.smoothHalfWindow
	}

	kernel := numeric.MollifierKernel(smoothHalf)

	smooth, err := pad.PaddedConvolve(data, kernel, cfg.padOpts...)
	if err != nil {
		return nil, err
	}

	baseline := make([]float64, len(smooth))
	copy(baseline, smooth)

	history := make([]float64, 0, cfg.maxIter+1)

	for i := 0; i <= cfg.maxIter; i++ {
		clipped := minSlices(smooth, baseline)
		opened := morph.Opening(clipped, halfWindow)
		closed := morph.Closing(clipped, halfWindow)

		avg := make([]float64, len(clipped))
		for j := range avg {
			avg[j] = 0.5 * (opened[j] + closed[j])
		}

		next, err := pad.PaddedConvolve(avg, kernel, cfg.padOpts...)
		if err != nil {
			return nil, err
		}

		diff := numeric.RelativeDifference(baseline, next)
		history = append(history, diff)
		baseline = next

		if diff < cfg.tol {
			break
		}
	}

	return &Result{
		Baseline:   baseline,
		HalfWindow: halfWindow,
		TolHistory: history,
	}, nil
}

// MWMV estimates the baseline as the morphological opening smoothed
// with a Gaussian kernel. The smoothing half-window defaults to the
// morphological half-window; zero disables smoothing.
func MWMV(y []float64, opts ...Option) (*Result, error) {
	return smoothedOpening(y, opts, morph.Opening, func(halfWindow int) []float64 {
		return numeric.GaussianKernel(halfWindow, float64(halfWindow)/2)
	})
}

// RollingBall simulates a rolling-ball filter: a minimum-filter pass
// followed by a maximum-filter pass, then moving-average smoothing
// exactly as in MWMV.
func RollingBall(y []float64, opts ...Option) (*Result, error) {
	return smoothedOpening(y, opts, morph.RollingBallPass, numeric.UniformKernel)
}

// smoothedOpening is the shared body of MWMV and RollingBall.
func smoothedOpening(
	y []float64,
	opts []Option,
	rough func([]float64, int) []float64,
	kernel func(int) []float64,
) (*Result, error) {
	cfg := newConfig(opts)

	data, halfWindow, err := prepare(y, &cfg)
	if err != nil {
		return nil, err
	}

	baseline := rough(data, halfWindow)

	smoothHalf := halfWindow
	if cfg.smoothSet {
		smoothHalf = cfg.smoothHalfWindow
	}

	if smoothHalf > 0 {
		baseline, err = pad.PaddedConvolve(baseline, kernel(smoothHalf), cfg.padOpts...)
		if err != nil {
			return nil, err
		}
	}

	return &Result{
		Baseline:   baseline,
		HalfWindow: halfWindow,
	}, nil
}

// TopHat estimates the baseline as the plain morphological opening,
// so that subtracting it leaves the white top-hat of the signal.
func TopHat(y []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	data, halfWindow, err := prepare(y, &cfg)
	if err != nil {
		return nil, err
	}

	return &Result{
		Baseline:   morph.Opening(data, halfWindow),
		HalfWindow: halfWindow,
	}, nil
}

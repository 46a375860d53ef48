package baseline

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-baseline/banded"
	"github.com/cwbudde/algo-baseline/morph"
	"github.com/cwbudde/algo-baseline/numeric"
)

// JBCD jointly estimates the baseline b and a denoised signal s for
// data y ≈ b + s + noise, alternating two updates per round:
//
//  1. s solves the banded system (I + beta·DᵀD) s = y - b, smoothing
//     the residual signal.
//  2. b blends the morphological opening of y - s with the residual
//     itself: b = (opening + gamma·(y-s)) / (1 + gamma).
//
// beta must be a positive scalar; gamma must be non-negative. A gamma
// of exactly 0 skips the denoising step and reduces to plain
// morphological baseline correction — the blend is continuous there
// and never divides by zero. WithRobustOpening (the default) caps
// outlier spikes before opening so isolated extrema cannot drag the
// window extrema.
//
// The loop stops when the relative change between successive baseline
// estimates falls below the tolerance or the iteration cap is hit.
func JBCD(y []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	if cfg.beta <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidBeta, cfg.beta)
	}

	if cfg.gamma < 0 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidGamma, cfg.gamma)
	}

	if cfg.diffOrder < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDiffOrder, cfg.diffOrder)
	}

	data, halfWindow, err := prepare(y, &cfg)
	if err != nil {
		return nil, err
	}

	n := len(data)

	diff, err := banded.DifferenceMatrix(n, cfg.diffOrder, banded.FormatDIA)
	if err != nil {
		return nil, err
	}

	// Identity weights: the signal solve is (I + beta D'D) s = y - b.
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	var sys *banded.System
	if cfg.gamma > 0 {
		sys, err = banded.NewSystem(ones, cfg.beta, diff)
		if err != nil {
			return nil, err
		}
	}

	open := func(v []float64) []float64 {
		if cfg.robustOpening {
			return robustOpening(v, halfWindow)
		}
		return morph.Opening(v, halfWindow)
	}

	baseline := morph.Opening(data, halfWindow)
	signal := make([]float64, n)
	history := make([]float64, 0, cfg.maxIter+1)

	blend := 1 / (1 + cfg.gamma)

	for i := 0; i <= cfg.maxIter; i++ {
		if cfg.gamma > 0 {
			signal, err = cfg.solver.Solve(sys, subSlices(data, baseline))
			if err != nil {
				return nil, err
			}
		}

		residual := subSlices(data, signal)
		opened := open(residual)

		next := make([]float64, n)
		for j := range next {
			next[j] = (opened[j] + cfg.gamma*residual[j]) * blend
		}

		d := numeric.RelativeDifference(baseline, next)
		history = append(history, d)
		baseline = next

		if d < cfg.tol {
			break
		}
	}

	if cfg.gamma == 0 {
		// No denoising: the signal is the baseline-corrected data.
		signal = subSlices(data, baseline)
	}

	return &Result{
		Baseline:   baseline,
		HalfWindow: halfWindow,
		TolHistory: history,
		Signal:     signal,
	}, nil
}

// robustOpening downweights outlier-influenced window extrema: spikes
// more than three scaled median absolute deviations above the plain
// opening are capped before re-opening.
func robustOpening(data []float64, halfWindow int) []float64 {
	opened := morph.Opening(data, halfWindow)

	residual := subSlices(data, opened)
	center := median(residual)

	deviation := make([]float64, len(residual))
	for i, v := range residual {
		deviation[i] = math.Abs(v - center)
	}

	// 1.4826 rescales the MAD to the standard deviation of a normal
	// distribution.
	scale := 1.4826 * median(deviation)
	if scale == 0 {
		return opened
	}

	limit := center + 3*scale
	clipped := make([]float64, len(data))
	for i, v := range data {
		clipped[i] = math.Min(v, opened[i]+limit)
	}

	return morph.Opening(clipped, halfWindow)
}

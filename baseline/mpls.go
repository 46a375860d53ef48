package baseline

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-baseline/banded"
	"github.com/cwbudde/algo-baseline/numeric"
)

// MPLS estimates the baseline by morphology-seeded asymmetric
// penalized least squares: the flat segments of a morphological
// opening anchor the initial weights, then the estimator alternates a
// penalized banded solve with an asymmetric reweighting until the
// baseline stabilizes.
//
// The asymmetry parameter p must lie in [0, 1]; points above the
// current baseline get weight p, points at or below it 1-p. The
// penalty strength defaults to 1e6 and the difference order to 2.
func MPLS(y []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	if cfg.p < 0 || cfg.p > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidP, cfg.p)
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

	weights, err := initialWeights(&cfg, data, halfWindow)
	if err != nil {
		return nil, err
	}

	lam := cfg.lamOr(1e6)

	baseline := make([]float64, n)
	copy(baseline, data)

	rhs := make([]float64, n)

	for i := 0; i <= cfg.maxIter; i++ {
		sys, err := banded.NewSystem(weights, lam, diff)
		if err != nil {
			return nil, err
		}

		vecmath.MulBlock(rhs, weights, data)

		next, err := cfg.solver.Solve(sys, rhs)
		if err != nil {
			return nil, err
		}

		converged := numeric.RelativeDifference(baseline, next) < cfg.tol
		baseline = next

		if converged {
			break
		}

		for j := range weights {
			if data[j] > baseline[j] {
				weights[j] = cfg.p
			} else {
				weights[j] = 1 - cfg.p
			}
		}
	}

	return &Result{
		Baseline:   baseline,
		HalfWindow: halfWindow,
		Weights:    weights,
	}, nil
}

// initialWeights resolves user-supplied weights or seeds them from
// the morphological opening.
func initialWeights(cfg *config, data []float64, halfWindow int) ([]float64, error) {
	if !cfg.weightsSet {
		return morphWeights(data, halfWindow, cfg.p), nil
	}

	weights, _, err := cfg.weights.Resolve(len(data), true)
	return weights, err
}

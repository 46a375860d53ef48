// Package baseline estimates the slowly varying background of a
// sampled 1-D signal, so that callers can isolate the residual peak
// signal from instrument drift.
//
// The estimators fall into three families:
//
//   - Morphology-based: [Mor], [IMor], [MorMol], [AMorMol], [MWMV],
//     [RollingBall], [TopHat] — openings and closings with a flat
//     structuring element, optionally iterated and smoothed.
//   - Penalized least squares: [MPLS], [MPSpline] — iterative
//     asymmetric reweighting over a banded difference penalty, seeded
//     by morphological anchor points.
//   - Joint: [JBCD] — alternating estimation of baseline, denoised
//     signal, and residual noise.
//
// Every estimator is a pure function over its inputs: the input slice
// is copied and never mutated, repeated calls with the same arguments
// return bit-identical results, and no state is shared between calls.
//
// # Usage
//
//	res, err := baseline.IMor(y, baseline.WithHalfWindow(25))
//	if err != nil {
//		...
//	}
//	corrected := make([]float64, len(y))
//	for i := range y {
//		corrected[i] = y[i] - res.Baseline[i]
//	}
//
// Reaching the iteration cap before the tolerance is met is not an
// error; inspect [Result.TolHistory] to see whether an iterative
// method converged.
package baseline

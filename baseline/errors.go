package baseline

import "errors"

// Errors returned by estimator parameter validation. Numerical solve
// failures are reported separately via the banded package sentinels.
var (
	ErrEmptyData         = errors.New("baseline: data must not be empty")
	ErrInvalidP          = errors.New("baseline: p must be within [0, 1]")
	ErrInvalidBeta       = errors.New("baseline: beta must be > 0")
	ErrInvalidGamma      = errors.New("baseline: gamma must be >= 0")
	ErrInvalidHalfWindow = errors.New("baseline: half window must be >= 0")
	ErrInvalidDiffOrder  = errors.New("baseline: difference order must be >= 1")
	ErrInvalidDegree     = errors.New("baseline: spline degree must be >= 1")
	ErrInvalidKnots      = errors.New("baseline: at least 2 knots are required")
	ErrXLength           = errors.New("baseline: x length must match data length")
)

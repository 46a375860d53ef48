package baseline

import (
	"github.com/cwbudde/algo-baseline/banded"
	"github.com/cwbudde/algo-baseline/numeric"
	"github.com/cwbudde/algo-baseline/pad"
)

type config struct {
	halfWindow       int
	smoothHalfWindow int
	smoothSet        bool
	maxIter          int
	tol              float64
	lam              float64
	lamSet           bool
	p                float64
	diffOrder        int
	beta             float64
	gamma            float64
	robustOpening    bool
	splineDegree     int
	numKnots         int
	x                []float64
	weights          numeric.Param
	weightsSet       bool
	solver           banded.Solver
	padOpts          []pad.Option
}

// Option configures an estimator call. Invalid values are not
// clamped; they surface as validation errors from the estimator.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{
		maxIter:       50,
		tol:           1e-3,
		p:             0,
		diffOrder:     2,
		beta:          10,
		gamma:         1,
		robustOpening: true,
		splineDegree:  3,
		numKnots:      100,
		solver:        banded.Auto,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// lamOr returns the penalty strength, falling back to the method
// default when the caller did not set one.
func (c *config) lamOr(def float64) float64 {
	if c.lamSet {
		return c.lam
	}

	return def
}

// WithHalfWindow sets the structuring-element half-window. Without
// this option the half-window is auto-selected per call (see
// morph.OptimizeWindow).
func WithHalfWindow(halfWindow int) Option {
	return func(c *config) {
		c.halfWindow = halfWindow
	}
}

// WithSmoothHalfWindow sets the smoothing half-window for MWMV,
// RollingBall, MorMol and AMorMol. Zero disables smoothing; without
// this option each method derives a default from the morphological
// half-window.
func WithSmoothHalfWindow(halfWindow int) Option {
	return func(c *config) {
		c.smoothHalfWindow = halfWindow
		c.smoothSet = true
	}
}

// WithMaxIter caps the number of iterations of iterative methods.
func WithMaxIter(maxIter int) Option {
	return func(c *config) {
		c.maxIter = maxIter
	}
}

// WithTol sets the relative-difference convergence tolerance.
func WithTol(tol float64) Option {
	return func(c *config) {
		c.tol = tol
	}
}

// WithLambda sets the roughness-penalty strength for MPLS and
// MPSpline (defaults 1e6 and 1e4 respectively).
func WithLambda(lam float64) Option {
	return func(c *config) {
		c.lam = lam
		c.lamSet = true
	}
}

// WithP sets the asymmetry parameter for MPLS and MPSpline; it must
// lie in [0, 1].
func WithP(p float64) Option {
	return func(c *config) {
		c.p = p
	}
}

// WithDiffOrder sets the difference order of the roughness penalty.
func WithDiffOrder(order int) Option {
	return func(c *config) {
		c.diffOrder = order
	}
}

// WithBeta sets JBCD's signal-smoothness strength; it must be > 0.
func WithBeta(beta float64) Option {
	return func(c *config) {
		c.beta = beta
	}
}

// WithGamma sets JBCD's baseline-fidelity strength; it must be >= 0.
// Zero disables the denoising step.
func WithGamma(gamma float64) Option {
	return func(c *config) {
		c.gamma = gamma
	}
}

// WithRobustOpening toggles JBCD's robust morphological opening,
// which caps outlier-influenced window extrema before opening.
func WithRobustOpening(robust bool) Option {
	return func(c *config) {
		c.robustOpening = robust
	}
}

// WithSplineDegree sets MPSpline's B-spline degree.
func WithSplineDegree(degree int) Option {
	return func(c *config) {
		c.splineDegree = degree
	}
}

// WithKnots sets MPSpline's knot count.
func WithKnots(numKnots int) Option {
	return func(c *config) {
		c.numKnots = numKnots
	}
}

// WithX supplies abscissa values for MPSpline's knot placement. Other
// methods ignore x entirely; results do not depend on it.
func WithX(x []float64) Option {
	return func(c *config) {
		c.x = x
	}
}

// WithWeights supplies initial weights for MPLS and MPSpline, either
// a scalar broadcast to the data length or a full-length array.
func WithWeights(weights numeric.Param) Option {
	return func(c *config) {
		c.weights = weights
		c.weightsSet = true
	}
}

// WithSolver injects the banded solver strategy; the default is
// banded.Auto.
func WithSolver(solver banded.Solver) Option {
	return func(c *config) {
		if solver != nil {
			c.solver = solver
		}
	}
}

// WithPadOptions forwards padding options to the internal
// convolution and morphology steps, e.g. to change the edge mode.
func WithPadOptions(opts ...pad.Option) Option {
	return func(c *config) {
		c.padOpts = opts
	}
}

package baseline

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"

	"github.com/cwbudde/algo-baseline/banded"
	"github.com/cwbudde/algo-baseline/numeric"
)

// MPSpline is the penalized-spline variant of MPLS: the baseline is a
// B-spline of configurable degree whose coefficients solve the
// weighted normal equations with a difference penalty on the
// coefficient vector, inside the same asymmetric reweighting loop.
//
// The optional x values (WithX) place the spline knots; without them
// the knots are uniform over the sample indices, which matches a
// uniformly sampled x grid. The penalty strength defaults to 1e4.
func MPSpline(y []float64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)

	if cfg.p < 0 || cfg.p > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidP, cfg.p)
	}

	if cfg.diffOrder < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDiffOrder, cfg.diffOrder)
	}

	if cfg.splineDegree < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, cfg.splineDegree)
	}

	if cfg.numKnots < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKnots, cfg.numKnots)
	}

	data, halfWindow, err := prepare(y, &cfg)
	if err != nil {
		return nil, err
	}

	n := len(data)

	x := cfg.x
	if x == nil {
		x = make([]float64, n)
		for i := range x {
			x[i] = float64(i)
		}
	} else if len(x) != n {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrXLength, len(x), n)
	}

	basis, err := newSplineBasis(x, cfg.numKnots, cfg.splineDegree)
	if err != nil {
		return nil, err
	}

	diff, err := banded.DifferenceMatrix(basis.count, cfg.diffOrder, banded.FormatDIA)
	if err != nil {
		return nil, err
	}
	gram := diff.GramBands()

	weights, err := initialWeights(&cfg, data, halfWindow)
	if err != nil {
		return nil, err
	}

	lam := cfg.lamOr(1e4)

	baseline := make([]float64, n)
	copy(baseline, data)

	weighted := make([]float64, n)

	for i := 0; i <= cfg.maxIter; i++ {
		vecmath.MulBlock(weighted, weights, data)

		next, err := basis.fit(weights, weighted, gram, lam, cfg.diffOrder)
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

// splineBasis holds the nonzero B-spline basis values per data point.
// Each data point touches degree+1 consecutive basis functions.
type splineBasis struct {
	degree int
	count  int         // number of basis functions
	starts []int       // first nonzero basis index per point
	values [][]float64 // degree+1 values per point
}

// newSplineBasis builds a clamped uniform-knot B-spline basis over
// the range of x. x must be ascending.
func newSplineBasis(x []float64, numKnots, degree int) (*splineBasis, error) {
	n := len(x)
	xmin, xmax := x[0], x[n-1]
	if xmax <= xmin {
		xmax = xmin + 1
	}

	// Clamped knot vector: degree copies of each endpoint around
	// numKnots uniform breakpoints.
	knots := make([]float64, numKnots+2*degree)
	step := (xmax - xmin) / float64(numKnots-1)
	for i := range knots {
		switch {
		case i < degree:
			knots[i] = xmin
		case i >= degree+numKnots:
			knots[i] = xmax
		default:
			knots[i] = xmin + float64(i-degree)*step
		}
	}

	b := &splineBasis{
		degree: degree,
		count:  numKnots + degree - 1,
		starts: make([]int, n),
		values: make([][]float64, n),
	}

	left := make([]float64, degree+1)
	right := make([]float64, degree+1)

	for i, xv := range x {
		span := findSpan(knots, degree, numKnots, xv)
		vals := make([]float64, degree+1)

		// Cox-de Boor recursion for the degree+1 nonzero basis
		// functions at xv.
		vals[0] = 1
		for j := 1; j <= degree; j++ {
			left[j] = xv - knots[span+1-j]
			right[j] = knots[span+j] - xv

			var saved float64
			for r := 0; r < j; r++ {
				den := right[r+1] + left[j-r]
				temp := vals[r] / den
				vals[r] = saved + right[r+1]*temp
				saved = left[j-r] * temp
			}
			vals[j] = saved
		}

		b.starts[i] = span - degree
		b.values[i] = vals
	}

	return b, nil
}

// findSpan locates the knot span containing xv, clamping the right
// boundary into the last span.
func findSpan(knots []float64, degree, numKnots int, xv float64) int {
	low := degree
	high := degree + numKnots - 2

	if xv >= knots[high+1] {
		return high
	}

	for s := low; s <= high; s++ {
		if xv >= knots[s] && xv < knots[s+1] {
			return s
		}
	}

	return high
}

// fit solves (BᵀWB + lam·DᵀD) c = Bᵀ(Wy) with gonum's banded
// Cholesky and evaluates the spline at the data points. weighted must
// already hold W·y.
func (b *splineBasis) fit(
	weights, weighted []float64,
	gram [][]float64,
	lam float64,
	diffOrder int,
) ([]float64, error) {
	m := b.count
	k := b.degree
	if diffOrder > k {
		k = diffOrder
	}
	if k > m-1 {
		k = m - 1
	}

	// Upper-triangle row-major band storage for SymBandDense.
	band := make([]float64, m*(k+1))
	rhs := make([]float64, m)

	for j := 0; j <= diffOrder && j <= k; j++ {
		for i, v := range gram[j] {
			band[i*(k+1)+j] += lam * v
		}
	}

	for i, vals := range b.values {
		start := b.starts[i]
		w := weights[i]

		for p, vp := range vals {
			row := start + p
			rhs[row] += vp * weighted[i]

			for q := p; q < len(vals); q++ {
				col := start + q
				band[row*(k+1)+(col-row)] += w * vp * vals[q]
			}
		}
	}

	a := mat.NewSymBandDense(m, k, band)

	var ch mat.BandCholesky
	if ok := ch.Factorize(a); !ok {
		return nil, banded.ErrNotPositiveDefinite
	}

	var coefs mat.VecDense
	if err := ch.SolveVecTo(&coefs, mat.NewVecDense(m, rhs)); err != nil {
		return nil, fmt.Errorf("baseline: spline solve failed: %w", err)
	}

	out := make([]float64, len(b.values))
	for i, vals := range b.values {
		start := b.starts[i]
		var sum float64
		for p, vp := range vals {
			sum += vp * coefs.AtVec(start+p)
		}
		out[i] = sum
	}

	return out, nil
}

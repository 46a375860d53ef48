package banded

import "fmt"

// pentaSolver factorizes a symmetric pentadiagonal (or narrower)
// system as L·D·Lᵀ with a unit-lower-bidiagonal-plus-one-band L, then
// solves by substitution. It covers bandwidths 0, 1, and 2 and runs
// in O(n) time without allocating beyond the factor arrays.
type pentaSolver struct{}

func (pentaSolver) Solve(sys *System, rhs []float64) ([]float64, error) {
	n := sys.Len()
	if len(rhs) != n {
		return nil, fmt.Errorf("%w: rhs has %d entries for %d unknowns",
			ErrLengthMismatch, len(rhs), n)
	}

	if sys.Bandwidth() > 2 {
		return nil, fmt.Errorf("%w: bandwidth %d", ErrBandwidth, sys.Bandwidth())
	}

	d := sys.Band(0)
	e := sys.Band(1)
	f := sys.Band(2)

	sub1 := func(i int) float64 {
		if e == nil || i >= len(e) {
			return 0
		}
		return e[i]
	}
	sub2 := func(i int) float64 {
		if f == nil || i >= len(f) {
			return 0
		}
		return f[i]
	}

	// L·D·Lᵀ factorization: a is D, b the first and c the second
	// sub-diagonal of L.
	a := make([]float64, n)
	b := make([]float64, n)
	c := make([]float64, n)

	if n == 0 {
		return []float64{}, nil
	}

	a[0] = d[0]
	if a[0] <= 0 {
		return nil, fmt.Errorf("%w: pivot 0", ErrNotPositiveDefinite)
	}

	if n > 1 {
		b[0] = sub1(0) / a[0]
		a[1] = d[1] - b[0]*b[0]*a[0]
		if a[1] <= 0 {
			return nil, fmt.Errorf("%w: pivot 1", ErrNotPositiveDefinite)
		}
	}

	for i := 2; i < n; i++ {
		c[i-2] = sub2(i-2) / a[i-2]
		b[i-1] = (sub1(i-1) - c[i-2]*b[i-2]*a[i-2]) / a[i-1]
		a[i] = d[i] - b[i-1]*b[i-1]*a[i-1] - c[i-2]*c[i-2]*a[i-2]
		if a[i] <= 0 {
			return nil, fmt.Errorf("%w: pivot %d", ErrNotPositiveDefinite, i)
		}
	}

	// Forward substitution L z = rhs.
	x := make([]float64, n)
	copy(x, rhs)
	if n > 1 {
		x[1] -= b[0] * x[0]
	}
	for i := 2; i < n; i++ {
		x[i] -= b[i-1]*x[i-1] + c[i-2]*x[i-2]
	}

	// Diagonal scaling D w = z.
	for i := range x {
		x[i] /= a[i]
	}

	// Back substitution Lᵀ out = w.
	if n > 1 {
		x[n-2] -= b[n-2] * x[n-1]
	}
	for i := n - 3; i >= 0; i-- {
		x[i] -= b[i]*x[i+1] + c[i]*x[i+2]
	}

	return x, nil
}

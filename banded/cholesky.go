package banded

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// choleskySolver is the general path: it hands the system to gonum's
// banded Cholesky factorization. It accepts any bandwidth, so
// difference orders above 2 simply widen the band.
type choleskySolver struct{}

func (choleskySolver) Solve(sys *System, rhs []float64) ([]float64, error) {
	n := sys.Len()
	if len(rhs) != n {
		return nil, fmt.Errorf("%w: rhs has %d entries for %d unknowns",
			ErrLengthMismatch, len(rhs), n)
	}

	if n == 0 {
		return []float64{}, nil
	}

	k := sys.Bandwidth()
	if k > n-1 {
		k = n - 1
	}

	// SymBandDense wants the upper triangle row-major: row i holds
	// A[i, i..i+k]. By symmetry A[i, i+j] equals the lower band entry
	// Band(j)[i].
	data := make([]float64, n*(k+1))
	for i := 0; i < n; i++ {
		for j := 0; j <= k && i+j < n; j++ {
			band := sys.Band(j)
			if band != nil {
				data[i*(k+1)+j] = band[i]
			}
		}
	}

	a := mat.NewSymBandDense(n, k, data)

	var ch mat.BandCholesky
	if ok := ch.Factorize(a); !ok {
		return nil, ErrNotPositiveDefinite
	}

	b := make([]float64, n)
	copy(b, rhs)

	var x mat.VecDense
	if err := ch.SolveVecTo(&x, mat.NewVecDense(n, b)); err != nil {
		return nil, fmt.Errorf("banded: cholesky solve failed: %w", err)
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = x.AtVec(i)
	}

	return out, nil
}

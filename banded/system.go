package banded

import (
	"errors"
	"fmt"
)

// Errors returned by system assembly and solving.
var (
	ErrLengthMismatch      = errors.New("banded: length mismatch")
	ErrNegativeLambda      = errors.New("banded: penalty must be >= 0")
	ErrBandwidth           = errors.New("banded: bandwidth exceeds pentadiagonal form")
	ErrNotPositiveDefinite = errors.New("banded: system is not positive definite")
)

// System is the symmetric banded normal-equations matrix
// diag(weights) + lam*DᵀD built from a difference matrix and a
// diagonal weight matrix. Bands are stored lower-first: Band(k)[i]
// holds A[i+k, i].
type System struct {
	n         int
	bandwidth int
	bands     [][]float64
}

// NewSystem assembles the penalized system for the given per-point
// weights, penalty strength lam, and difference matrix. The weight
// vector length must match the difference-matrix column count, and
// lam must be non-negative.
func NewSystem(weights []float64, lam float64, diff *DiffMatrix) (*System, error) {
	_, cols := diff.Dims()
	if len(weights) != cols {
		return nil, fmt.Errorf("%w: %d weights for %d columns",
			ErrLengthMismatch, len(weights), cols)
	}

	if lam < 0 {
		return nil, fmt.Errorf("%w: %g", ErrNegativeLambda, lam)
	}

	gram := diff.GramBands()
	bands := make([][]float64, len(gram))

	for k, g := range gram {
		band := make([]float64, len(g))
		for i, v := range g {
			band[i] = lam * v
		}
		bands[k] = band
	}

	for i, w := range weights {
		bands[0][i] += w
	}

	return &System{
		n:         cols,
		bandwidth: diff.Order(),
		bands:     bands,
	}, nil
}

// Len returns the system dimension.
func (s *System) Len() int {
	return s.n
}

// Bandwidth returns the number of sub-diagonals.
func (s *System) Bandwidth() int {
	return s.bandwidth
}

// Band returns the k-th lower band, with Band(0) the main diagonal.
// Bands beyond the bandwidth are nil. The returned slice is shared;
// solvers must not modify it.
func (s *System) Band(k int) []float64 {
	if k < 0 || k >= len(s.bands) {
		return nil
	}

	return s.bands[k]
}

// Solver solves a penalized banded system for a right-hand side.
// Implementations must not modify the system or the right-hand side.
type Solver interface {
	Solve(sys *System, rhs []float64) ([]float64, error)
}

// Solver strategies. Auto uses the pentadiagonal fast path when the
// bandwidth allows it and the general Cholesky path otherwise.
var (
	Pentadiagonal Solver = pentaSolver{}
	Cholesky      Solver = choleskySolver{}
	Auto          Solver = autoSolver{}
)

type autoSolver struct{}

func (autoSolver) Solve(sys *System, rhs []float64) ([]float64, error) {
	if sys.Bandwidth() <= 2 {
		return Pentadiagonal.Solve(sys, rhs)
	}

	return Cholesky.Solve(sys, rhs)
}

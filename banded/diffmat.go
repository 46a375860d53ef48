package banded

import (
	"errors"
	"fmt"
)

// Errors returned by difference-matrix construction.
var (
	ErrNegativeSize  = errors.New("banded: data size must be >= 0")
	ErrNegativeOrder = errors.New("banded: difference order must be >= 0")
	ErrUnknownFormat = errors.New("banded: unknown storage format")
)

// Format selects the sparse storage layout of a difference matrix.
// The numerical content is identical across formats; only the storage
// differs.
type Format int

const (
	// FormatDIA stores the matrix as constant diagonals with offsets.
	FormatDIA Format = iota

	// FormatCSR stores the matrix in compressed sparse row layout.
	FormatCSR

	// FormatCSC stores the matrix in compressed sparse column layout.
	FormatCSC
)

// DiffMatrix is the order-d finite-difference operator over a grid of
// given size, shaped (max(size-d, 0), size). Applying it to a
// polynomial sequence of degree below d yields zero.
type DiffMatrix struct {
	rows   int
	cols   int
	order  int
	format Format
	coeffs []float64

	// DIA storage
	offsets []int
	diags   [][]float64

	// CSR/CSC storage
	indptr  []int
	indices []int
	values  []float64
}

// DifferenceMatrix constructs the order-d difference matrix for a
// sequence of the given size in the requested storage format.
//
// Order 0 yields the identity; an order of size or more yields a
// matrix with zero rows, mirroring the "no valid differences" case.
// Negative size or order is an error.
func DifferenceMatrix(size, order int, format Format) (*DiffMatrix, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, size)
	}

	if order < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeOrder, order)
	}

	rows := size - order
	if rows < 0 {
		rows = 0
	}

	m := &DiffMatrix{
		rows:   rows,
		cols:   size,
		order:  order,
		format: format,
		coeffs: diffCoefficients(order),
	}

	switch format {
	case FormatDIA:
		m.buildDIA()
	case FormatCSR:
		m.buildCSR()
	case FormatCSC:
		m.buildCSC()
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, format)
	}

	return m, nil
}

// diffCoefficients returns the row stencil of the order-d difference
// operator: the d-fold convolution of [-1, 1], e.g. [1 -2 1] for
// order 2. Order 0 yields [1].
func diffCoefficients(order int) []float64 {
	coeffs := []float64{1}
	for k := 0; k < order; k++ {
		next := make([]float64, len(coeffs)+1)
		for i, c := range coeffs {
			next[i] -= c
			next[i+1] += c
		}
		coeffs = next
	}

	return coeffs
}

func (m *DiffMatrix) buildDIA() {
	m.offsets = make([]int, m.order+1)
	m.diags = make([][]float64, m.order+1)

	for j := 0; j <= m.order; j++ {
		m.offsets[j] = j
		diag := make([]float64, m.rows)
		for i := range diag {
			diag[i] = m.coeffs[j]
		}
		m.diags[j] = diag
	}
}

func (m *DiffMatrix) buildCSR() {
	nnz := m.rows * (m.order + 1)
	m.indptr = make([]int, m.rows+1)
	m.indices = make([]int, 0, nnz)
	m.values = make([]float64, 0, nnz)

	for r := 0; r < m.rows; r++ {
		for j := 0; j <= m.order; j++ {
			m.indices = append(m.indices, r+j)
			m.values = append(m.values, m.coeffs[j])
		}
		m.indptr[r+1] = len(m.indices)
	}
}

func (m *DiffMatrix) buildCSC() {
	m.indptr = make([]int, m.cols+1)
	m.indices = m.indices[:0]
	m.values = m.values[:0]

	for c := 0; c < m.cols; c++ {
		lo := c - m.order
		if lo < 0 {
			lo = 0
		}
		hi := c
		if hi > m.rows-1 {
			hi = m.rows - 1
		}

		for r := lo; r <= hi; r++ {
			m.indices = append(m.indices, r)
			m.values = append(m.values, m.coeffs[c-r])
		}
		m.indptr[c+1] = len(m.indices)
	}
}

// Dims returns the matrix shape.
func (m *DiffMatrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Order returns the difference order.
func (m *DiffMatrix) Order() int {
	return m.order
}

// Storage returns the storage format chosen at construction.
func (m *DiffMatrix) Storage() Format {
	return m.format
}

// Coefficients returns a copy of the row stencil.
func (m *DiffMatrix) Coefficients() []float64 {
	out := make([]float64, len(m.coeffs))
	copy(out, m.coeffs)
	return out
}

// At returns the element at (i, j). It panics when the indices are
// out of range.
func (m *DiffMatrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("banded: index out of range")
	}

	if j < i || j > i+m.order {
		return 0
	}

	return m.coeffs[j-i]
}

// Dense materializes the matrix as row slices. The result has
// Dims() rows, possibly zero.
func (m *DiffMatrix) Dense() [][]float64 {
	out := make([][]float64, m.rows)
	for i := range out {
		row := make([]float64, m.cols)
		for j := i; j <= i+m.order; j++ {
			row[j] = m.coeffs[j-i]
		}
		out[i] = row
	}

	return out
}

// DIA returns the diagonal-storage arrays. ok is false when the
// matrix was built in another format.
func (m *DiffMatrix) DIA() (offsets []int, diagonals [][]float64, ok bool) {
	if m.format != FormatDIA {
		return nil, nil, false
	}

	return m.offsets, m.diags, true
}

// CSR returns the compressed-row arrays. ok is false when the matrix
// was built in another format.
func (m *DiffMatrix) CSR() (indptr, indices []int, values []float64, ok bool) {
	if m.format != FormatCSR {
		return nil, nil, nil, false
	}

	return m.indptr, m.indices, m.values, true
}

// CSC returns the compressed-column arrays. ok is false when the
// matrix was built in another format.
func (m *DiffMatrix) CSC() (indptr, indices []int, values []float64, ok bool) {
	if m.format != FormatCSC {
		return nil, nil, nil, false
	}

	return m.indptr, m.indices, m.values, true
}

// GramBands returns the lower bands of DᵀD: bands[k][i] holds
// (DᵀD)[i+k, i] for k in 0..order. Near the boundaries the sums
// truncate, so the bands are not constant.
func (m *DiffMatrix) GramBands() [][]float64 {
	bands := make([][]float64, m.order+1)

	for k := 0; k <= m.order; k++ {
		length := m.cols - k
		if length < 0 {
			length = 0
		}
		band := make([]float64, length)

		for i := range band {
			// Rows touching both columns i and i+k.
			lo := i + k - m.order
			if lo < 0 {
				lo = 0
			}
			hi := i
			if hi > m.rows-1 {
				hi = m.rows - 1
			}

			var sum float64
			for r := lo; r <= hi; r++ {
				sum += m.coeffs[i-r] * m.coeffs[i+k-r]
			}
			band[i] = sum
		}

		bands[k] = band
	}

	return bands
}

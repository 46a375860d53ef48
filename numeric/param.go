package numeric

import (
	"errors"
	"fmt"
)

// ErrParamLength is returned when an array-valued parameter does not
// match the required length.
var ErrParamLength = errors.New("numeric: parameter length mismatch")

// Param holds a parameter that callers may supply either as a single
// scalar or as a full-length array. The zero value is the scalar 0.
type Param struct {
	values  []float64
	scalar  float64
	isArray bool
}

// Scalar wraps a single value.
func Scalar(v float64) Param {
	return Param{scalar: v}
}

// Array wraps a full array of values. The slice is not copied until
// Resolve is called.
func Array(values []float64) Param {
	return Param{values: values, isArray: true}
}

// Resolve normalizes the parameter against the desired length.
//
// A scalar (or a length-1 array, which is treated as a scalar) is
// broadcast to a slice of the desired length when fill is true, or
// returned as a single-element slice otherwise; wasScalar is true.
// An array of exactly the desired length is copied through unchanged
// with wasScalar false. Any other array length returns ErrParamLength.
func (p Param) Resolve(length int, fill bool) (values []float64, wasScalar bool, err error) {
	scalar := p.scalar
	if p.isArray {
		if len(p.values) != 1 {
			if len(p.values) != length {
				return nil, false, fmt.Errorf("%w: got %d, want %d",
					ErrParamLength, len(p.values), length)
			}

			out := make([]float64, length)
			copy(out, p.values)
			return out, false, nil
		}

		scalar = p.values[0]
	}

	if !fill {
		return []float64{scalar}, true, nil
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = scalar
	}

	return out, true, nil
}

// IsArray reports whether the parameter was supplied as an array of
// length other than one.
func (p Param) IsArray() bool {
	return p.isArray && len(p.values) != 1
}

package numeric

import (
	"errors"
	"testing"
)

func TestParamResolveScalar(t *testing.T) {
	values, wasScalar, err := Scalar(5).Resolve(10, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !wasScalar {
		t.Error("expected wasScalar=true")
	}

	if len(values) != 10 {
		t.Fatalf("len=%d, want 10", len(values))
	}

	for i, v := range values {
		if v != 5 {
			t.Fatalf("values[%d] = %v, want 5", i, v)
		}
	}
}

func TestParamResolveScalarNoFill(t *testing.T) {
	values, wasScalar, err := Scalar(2.5).Resolve(10, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !wasScalar {
		t.Error("expected wasScalar=true")
	}

	if len(values) != 1 || values[0] != 2.5 {
		t.Errorf("values = %v, want [2.5]", values)
	}
}

func TestParamResolveArray(t *testing.T) {
	in := []float64{1, 2, 3}

	values, wasScalar, err := Array(in).Resolve(3, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if wasScalar {
		t.Error("expected wasScalar=false")
	}

	for i := range in {
		if values[i] != in[i] {
			t.Fatalf("values[%d] = %v, want %v", i, values[i], in[i])
		}
	}

	// Resolve copies, so mutating the result leaves the input alone.
	values[0] = 99
	if in[0] != 1 {
		t.Error("input mutated through resolved values")
	}
}

func TestParamResolveArrayLengthMismatch(t *testing.T) {
	_, _, err := Array([]float64{1, 2}).Resolve(3, true)
	if !errors.Is(err, ErrParamLength) {
		t.Errorf("expected ErrParamLength, got %v", err)
	}
}

func TestParamResolveSingleElementArray(t *testing.T) {
	values, wasScalar, err := Array([]float64{7}).Resolve(4, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !wasScalar {
		t.Error("length-1 array should resolve as scalar")
	}

	if len(values) != 4 {
		t.Fatalf("len=%d, want 4", len(values))
	}

	for i, v := range values {
		if v != 7 {
			t.Fatalf("values[%d] = %v, want 7", i, v)
		}
	}
}

func TestParamIsArray(t *testing.T) {
	if Scalar(1).IsArray() {
		t.Error("scalar reported as array")
	}

	if Array([]float64{1}).IsArray() {
		t.Error("length-1 array reported as array")
	}

	if !Array([]float64{1, 2}).IsArray() {
		t.Error("length-2 array not reported as array")
	}
}

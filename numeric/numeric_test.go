package numeric

import (
	"math"
	"testing"
)

func TestRelativeDifferenceScalar(t *testing.T) {
	tests := []struct {
		name     string
		old      float64
		new      float64
		expected float64
	}{
		{name: "simple", old: 2, new: 1, expected: 0.5},
		{name: "identical", old: 3, new: 3, expected: 0},
		{name: "negative old", old: -2, new: -1, expected: 0.5},
		{name: "sign flip", old: 1, new: -1, expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RelativeDifferenceScalar(tt.old, tt.new)
			if math.Abs(got-tt.expected) > 1e-14 {
				t.Errorf("got %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestRelativeDifferenceScalarZeroDenominator(t *testing.T) {
	got := RelativeDifferenceScalar(0, 1)
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("expected finite value, got %v", got)
	}

	want := 1 / Eps
	if math.Abs(got-want) > 1e-3*want {
		t.Errorf("got %v, expected %v", got, want)
	}
}

func TestRelativeDifference(t *testing.T) {
	old := []float64{3, 4}
	new := []float64{3, 4}

	if got := RelativeDifference(old, new); got != 0 {
		t.Errorf("identical slices: got %v, expected 0", got)
	}

	// ||new-old|| = 5, ||old|| = 5.
	old = []float64{3, 4}
	new = []float64{6, 8}

	if got := RelativeDifference(old, new); math.Abs(got-1) > 1e-14 {
		t.Errorf("got %v, expected 1", got)
	}
}

func TestRelativeDifferenceZeroDenominator(t *testing.T) {
	got := RelativeDifference([]float64{0, 0, 0}, []float64{4, 5, 6})
	if math.IsInf(got, 0) || math.IsNaN(got) {
		t.Fatalf("expected finite value, got %v", got)
	}

	if got <= 0 {
		t.Errorf("expected large positive value, got %v", got)
	}
}

func TestRelativeDifferenceNormOrders(t *testing.T) {
	old := []float64{1, 1, 1, 1}
	new := []float64{2, 2, 2, 2}

	l1 := RelativeDifferenceNorm(old, new, 1)
	if math.Abs(l1-1) > 1e-14 {
		t.Errorf("L1: got %v, expected 1", l1)
	}

	l2 := RelativeDifferenceNorm(old, new, 2)
	if math.Abs(l2-1) > 1e-14 {
		t.Errorf("L2: got %v, expected 1", l2)
	}

	linf := RelativeDifferenceNorm(old, new, math.Inf(1))
	if math.Abs(linf-1) > 1e-14 {
		t.Errorf("Linf: got %v, expected 1", linf)
	}
}

func TestNorm(t *testing.T) {
	x := []float64{-3, 4}

	if got := Norm(x, 1); math.Abs(got-7) > 1e-14 {
		t.Errorf("L1: got %v, expected 7", got)
	}

	if got := Norm(x, 2); math.Abs(got-5) > 1e-14 {
		t.Errorf("L2: got %v, expected 5", got)
	}

	if got := Norm(x, math.Inf(1)); math.Abs(got-4) > 1e-14 {
		t.Errorf("Linf: got %v, expected 4", got)
	}

	if got := Norm(x, 3); math.Abs(got-math.Cbrt(27+64)) > 1e-12 {
		t.Errorf("L3: got %v, expected %v", got, math.Cbrt(91))
	}
}

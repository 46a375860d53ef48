package baseline

import (
	"errors"
	"math"
	"testing"
)

func TestJBCDValidation(t *testing.T) {
	data := makeSpectrum(100)

	for _, beta := range []float64{0, -1} {
		_, err := JBCD(data, WithBeta(beta))
		if !errors.Is(err, ErrInvalidBeta) {
			t.Errorf("beta=%g: expected ErrInvalidBeta, got %v", beta, err)
		}
	}

	_, err := JBCD(data, WithGamma(-0.5))
	if !errors.Is(err, ErrInvalidGamma) {
		t.Errorf("expected ErrInvalidGamma, got %v", err)
	}

	_, err = JBCD(data, WithDiffOrder(0))
	if !errors.Is(err, ErrInvalidDiffOrder) {
		t.Errorf("expected ErrInvalidDiffOrder, got %v", err)
	}
}

func TestJBCDBasic(t *testing.T) {
	data := makeSpectrum(300)

	result, err := JBCD(data, WithHalfWindow(15))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Baseline) != len(data) {
		t.Fatalf("baseline len=%d, want %d", len(result.Baseline), len(data))
	}

	if len(result.Signal) != len(data) {
		t.Fatalf("signal len=%d, want %d", len(result.Signal), len(data))
	}

	if len(result.TolHistory) == 0 {
		t.Fatal("empty TolHistory")
	}
}

func TestJBCDZeroGamma(t *testing.T) {
	data := makeSpectrum(250)

	result, err := JBCD(data, WithHalfWindow(12), WithGamma(0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Without denoising the signal is exactly the corrected data.
	for i := range data {
		want := data[i] - result.Baseline[i]
		if result.Signal[i] != want {
			t.Fatalf("signal[%d] = %v, want %v", i, result.Signal[i], want)
		}
	}
}

func TestJBCDRobustOpening(t *testing.T) {
	data := makeSpectrum(250)

	// An isolated spike on a smooth region.
	data[50] += 40

	robust, err := JBCD(data, WithHalfWindow(12), WithRobustOpening(true))
	if err != nil {
		t.Fatalf("robust: unexpected error: %v", err)
	}

	plain, err := JBCD(data, WithHalfWindow(12), WithRobustOpening(false))
	if err != nil {
		t.Fatalf("plain: unexpected error: %v", err)
	}

	if len(robust.Baseline) != len(plain.Baseline) {
		t.Fatalf("length mismatch: %d vs %d", len(robust.Baseline), len(plain.Baseline))
	}

	// The spike must not drag the robust baseline upward.
	if robust.Baseline[50] > data[50]-30 {
		t.Errorf("robust baseline %v too close to spike %v",
			robust.Baseline[50], data[50])
	}
}

func TestJBCDDiffOrders(t *testing.T) {
	data := makeSpectrum(200)

	for _, order := range []int{1, 2, 3} {
		result, err := JBCD(data, WithHalfWindow(10), WithDiffOrder(order))
		if err != nil {
			t.Fatalf("order %d: unexpected error: %v", order, err)
		}

		for i, v := range result.Baseline {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("order %d: baseline[%d] invalid: %v", order, i, v)
			}
		}
	}
}

func TestJBCDGammaBlend(t *testing.T) {
	data := makeSpectrum(250)

	// Larger gamma pulls the baseline toward the residual; both
	// settings must stay finite and below the main peak.
	for _, gamma := range []float64{0.1, 1, 10} {
		result, err := JBCD(data, WithHalfWindow(12), WithGamma(gamma))
		if err != nil {
			t.Fatalf("gamma=%g: unexpected error: %v", gamma, err)
		}

		peak := 62 // n/4
		if result.Baseline[peak] > data[peak]-3 {
			t.Errorf("gamma=%g: baseline %v too close to peak %v",
				gamma, result.Baseline[peak], data[peak])
		}
	}
}

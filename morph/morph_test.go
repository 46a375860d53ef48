package morph

import (
	"math"
	"testing"
)

func noisyPeaks(n int) []float64 {
	data := make([]float64, n)
	for i := range data {
		x := float64(i)
		data[i] = 0.01*x + 5*math.Exp(-(x-float64(n)/2)*(x-float64(n)/2)/50) +
			0.1*math.Sin(13.7*x)
	}

	return data
}

func TestErosionDilationKnown(t *testing.T) {
	data := []float64{1, 3, 2, 5, 1}

	eroded := Erosion(data, 1)
	expectedErosion := []float64{1, 1, 2, 1, 1}
	for i := range expectedErosion {
		if eroded[i] != expectedErosion[i] {
			t.Errorf("erosion[%d] = %v, expected %v", i, eroded[i], expectedErosion[i])
		}
	}

	dilated := Dilation(data, 1)
	expectedDilation := []float64{3, 3, 5, 5, 5}
	for i := range expectedDilation {
		if dilated[i] != expectedDilation[i] {
			t.Errorf("dilation[%d] = %v, expected %v", i, dilated[i], expectedDilation[i])
		}
	}
}

func TestErosionDilationOrdering(t *testing.T) {
	data := noisyPeaks(200)

	for _, hw := range []int{1, 3, 10, 50} {
		eroded := Erosion(data, hw)
		dilated := Dilation(data, hw)

		for i := range data {
			if eroded[i] > data[i] {
				t.Fatalf("hw=%d: erosion[%d] = %v above data %v", hw, i, eroded[i], data[i])
			}

			if dilated[i] < data[i] {
				t.Fatalf("hw=%d: dilation[%d] = %v below data %v", hw, i, dilated[i], data[i])
			}
		}
	}
}

func TestOpeningClosing(t *testing.T) {
	data := noisyPeaks(200)
	hw := 5

	opened := Opening(data, hw)
	closed := Closing(data, hw)

	for i := range data {
		if opened[i] > data[i] {
			t.Fatalf("opening[%d] = %v above data %v", i, opened[i], data[i])
		}

		if closed[i] < data[i] {
			t.Fatalf("closing[%d] = %v below data %v", i, closed[i], data[i])
		}
	}
}

func TestOpeningIdempotent(t *testing.T) {
	data := noisyPeaks(300)
	hw := 7

	once := Opening(data, hw)
	twice := Opening(once, hw)

	for i := range once {
		if math.Abs(once[i]-twice[i]) > 1e-12 {
			t.Fatalf("opening not idempotent at %d: %v vs %v", i, once[i], twice[i])
		}
	}
}

func TestZeroHalfWindowIdentity(t *testing.T) {
	data := noisyPeaks(50)

	for name, fn := range map[string]func([]float64, int) []float64{
		"erosion":  Erosion,
		"dilation": Dilation,
		"opening":  Opening,
		"closing":  Closing,
	} {
		out := fn(data, 0)
		for i := range data {
			if out[i] != data[i] {
				t.Fatalf("%s: out[%d] = %v, expected %v", name, i, out[i], data[i])
			}
		}

		// The result is a copy, not an alias.
		out[0] = math.NaN()
		if math.IsNaN(data[0]) {
			t.Fatalf("%s: result aliases input", name)
		}
	}
}

func TestRollingBallPass(t *testing.T) {
	data := noisyPeaks(200)
	hw := 10

	out := RollingBallPass(data, hw)

	if len(out) != len(data) {
		t.Fatalf("len=%d, want %d", len(out), len(data))
	}

	// Minimum then maximum filtering never exceeds the data.
	for i := range data {
		if out[i] > data[i]+1e-12 {
			t.Fatalf("out[%d] = %v above data %v", i, out[i], data[i])
		}
	}
}

func TestOptimizeWindow(t *testing.T) {
	data := noisyPeaks(500)

	hw := OptimizeWindow(data)
	if hw < 1 || hw > (len(data)-1)/2 {
		t.Fatalf("half-window %d out of range", hw)
	}

	if again := OptimizeWindow(data); again != hw {
		t.Errorf("not deterministic: %d vs %d", hw, again)
	}
}

func TestOptimizeWindowShortInput(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4} {
		hw := OptimizeWindow(noisyPeaks(n))
		if hw < 1 {
			t.Errorf("n=%d: half-window %d, want >= 1", n, hw)
		}
	}
}

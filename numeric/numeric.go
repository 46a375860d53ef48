package numeric

import "math"

// Eps is the double-precision machine epsilon, 2^-52.
const Eps = 2.220446049250313e-16

// RelativeDifferenceScalar computes |old - new| / |old|.
// A zero denominator is replaced by Eps so the result stays finite.
func RelativeDifferenceScalar(old, new float64) float64 {
	denom := math.Abs(old)
	if denom == 0 {
		denom = Eps
	}

	return math.Abs(old-new) / denom
}

// Norm computes the order-norm of x. Order 1 is the sum of absolute
// values, order 2 the Euclidean norm; other positive orders use the
// general p-norm formula. math.Inf(1) gives the maximum norm.
func Norm(x []float64, order float64) float64 {
	switch {
	case order == 1:
		var sum float64
		for _, v := range x {
			sum += math.Abs(v)
		}
		return sum
	case order == 2:
		var sum float64
		for _, v := range x {
			sum += v * v
		}
		return math.Sqrt(sum)
	case math.IsInf(order, 1):
		var max float64
		for _, v := range x {
			if a := math.Abs(v); a > max {
				max = a
			}
		}
		return max
	default:
		var sum float64
		for _, v := range x {
			sum += math.Pow(math.Abs(v), order)
		}
		return math.Pow(sum, 1/order)
	}
}

// RelativeDifference computes norm(old - new) / norm(old) using the
// Euclidean norm. Both slices must have the same length.
// A zero denominator is replaced by Eps so the result stays finite.
func RelativeDifference(old, new []float64) float64 {
	return RelativeDifferenceNorm(old, new, 2)
}

// RelativeDifferenceNorm is RelativeDifference with a selectable norm
// order.
func RelativeDifferenceNorm(old, new []float64, order float64) float64 {
	diff := make([]float64, len(old))
	for i, v := range old {
		diff[i] = v - new[i]
	}

	denom := Norm(old, order)
	if denom == 0 {
		denom = Eps
	}

	return Norm(diff, order) / denom
}

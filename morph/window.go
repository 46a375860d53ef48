package morph

import "github.com/cwbudde/algo-baseline/numeric"

const (
	windowTol     = 1e-6
	windowMaxHits = 3
)

// OptimizeWindow estimates a half-window for morphological baseline
// operators when the caller does not supply one.
//
// Policy: grow the half-window from 1 and recompute the opening each
// step; once the relative difference between successive openings stays
// below 1e-6 for 3 consecutive increments, keep the first half-window
// of that run. If the spread never stabilizes the search caps at
// (len(data)-1)/2. The result is deterministic for a given input.
//
// This heuristic is a replaceable policy, not a contract; callers that
// need an exact window should pass one explicitly.
func OptimizeWindow(data []float64) int {
	maxHalf := (len(data) - 1) / 2
	if maxHalf < 1 {
		return 1
	}

	opening := Opening(data, 1)
	best := 1
	hits := 0

	for hw := 2; hw <= maxHalf; hw++ {
		next := Opening(data, hw)

		if numeric.RelativeDifference(opening, next) < windowTol {
			if hits == 0 {
				best = hw
			}

			hits++
			if hits >= windowMaxHits {
				return best
			}
		} else {
			hits = 0
			best = hw
		}

		opening = next
	}

	return best
}

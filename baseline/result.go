package baseline

// Result holds an estimated baseline together with the diagnostics a
// method promises. Fields that a method does not produce are nil:
//
//	Method       | Populated fields
//	-------------+---------------------------------------
//	Mor          | Baseline, HalfWindow
//	IMor         | Baseline, HalfWindow, TolHistory
//	MorMol       | Baseline, HalfWindow, TolHistory
//	AMorMol      | Baseline, HalfWindow, TolHistory
//	MWMV         | Baseline, HalfWindow
//	RollingBall  | Baseline, HalfWindow
//	TopHat       | Baseline, HalfWindow
//	MPLS         | Baseline, HalfWindow, Weights
//	MPSpline     | Baseline, HalfWindow, Weights
//	JBCD         | Baseline, HalfWindow, TolHistory, Signal
type Result struct {
	// Baseline is the estimated background, same length as the input.
	Baseline []float64

	// HalfWindow is the structuring-element half-window that was
	// used, whether supplied or auto-selected.
	HalfWindow int

	// Weights is the final per-point weight vector of reweighted
	// least-squares methods.
	Weights []float64

	// TolHistory records one relative-difference value per executed
	// iteration. When the tolerance is never met it has exactly
	// maxIter+1 entries.
	TolHistory []float64

	// Signal is JBCD's final denoised signal estimate.
	Signal []float64
}

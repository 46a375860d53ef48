// Package banded builds finite-difference operators and solves the
// penalized banded systems that baseline estimators produce.
//
// [DifferenceMatrix] constructs the d-th order discrete difference
// operator as a sparse banded matrix in a selectable storage layout.
// [NewSystem] assembles the symmetric banded normal-equations matrix
// diag(w) + lam*DᵀD, and a [Solver] strategy solves it: the
// [Pentadiagonal] fast path for difference orders up to 2, the gonum
// banded-Cholesky [Cholesky] path for wider bands, or [Auto] to pick
// between them.
//
// The solver is an injected strategy rather than a module-level
// toggle, so callers (and tests) can select a path per call without
// shared state.
package banded

package matching

import "github.com/gowaypoint/slc/slcerr"

// ErrNoPerfectMatching is returned by SolveMinimumCostPerfectMatching when
// the underlying graph, ignoring costs, admits no perfect matching at all.
var ErrNoPerfectMatching = slcerr.ErrNoPerfectMatching

// ErrNumericalFailure is returned when the primal-dual loop exceeds its
// iteration safety cap, or when the retrieved matching's primal objective
// fails to agree with the computed dual objective within tolerance.
var ErrNumericalFailure = slcerr.ErrNumericalFailure

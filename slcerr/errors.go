// Package slcerr defines the abstract error kinds shared across every
// layer of the solver. Each layer wraps one of these sentinels with its own
// context via fmt.Errorf("...: %w", ...), so errors.Is resolves to the
// abstract kind no matter which package raised it.
package slcerr

import "errors"

var (
	// ErrNoPerfectMatching: the cost-matching engine was asked for a perfect
	// matching on a graph that has none.
	ErrNoPerfectMatching = errors.New("no perfect matching exists")

	// ErrNumericalFailure: the primal-dual loop exceeded its iteration cap,
	// or the LP backend reported numerical trouble.
	ErrNumericalFailure = errors.New("numerical failure")

	// ErrLPInfeasible: the LP backend reported infeasibility.
	ErrLPInfeasible = errors.New("lp infeasible")

	// ErrLPUnbounded: the LP backend reported an unbounded objective.
	ErrLPUnbounded = errors.New("lp unbounded")

	// ErrNotEulerian: the Euler constructor received a graph with imbalanced
	// in/out degrees; indicates a bug upstream (post-repair, C5 should
	// always hand C6 an Eulerian graph).
	ErrNotEulerian = errors.New("graph is not eulerian")

	// ErrInvalidInput: negative costs, malformed edge list, missing depot,
	// or any other caller-supplied input that fails validation.
	ErrInvalidInput = errors.New("invalid input")
)

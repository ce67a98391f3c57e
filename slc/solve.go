package slc

import (
	"github.com/gowaypoint/slc/core"
	"github.com/gowaypoint/slc/coverage"
	"github.com/gowaypoint/slc/lp"
	"github.com/gowaypoint/slc/route"
	"github.com/gowaypoint/slc/slcconfig"
)

// Request describes a single-robot line coverage problem: an undirected
// weighted graph, the subset of its edges that must be serviced, the
// vertex a route must start and end at, and a cost oracle for both
// servicing and deadheading each edge.
type Request struct {
	Graph           *core.Graph       `validate:"required"`
	RequiredEdgeIDs []string          `validate:"required,min=1,dive,required"`
	Depot           string            `validate:"required"`
	Cost            coverage.EdgeCost `validate:"required"`
}

// Validate runs the same struct-tag and semantic checks coverage.Input.Validate
// applies, by delegating to it directly: Request carries the same fields as
// Input, and duplicating the validator.v10 rules here would let the two drift.
func (r Request) Validate() error {
	return coverage.Input{
		Graph:           r.Graph,
		RequiredEdgeIDs: r.RequiredEdgeIDs,
		Depot:           r.Depot,
		Cost:            r.Cost,
	}.Validate()
}

// Result is the full solved output of a Request: the induced coverage
// multigraph, the total objective value, the per-edge traversal counts, and
// the ordered closed walk realizing them.
type Result struct {
	SolutionGraph *coverage.CoverageGraph
	Objective     float64
	Multiplicity  map[int]int
	Route         []route.Step

	// TurnCost is the sum of turn penalties charged along Route, per an
	// optional coverage.TurnAwareCost on req.Cost. It is zero for cost
	// oracles that do not implement that interface and is not included in
	// Objective, since the LP formulation minimizing Objective has no
	// notion of edge traversal order.
	TurnCost float64
}

// Solve builds the coverage multigraph for req, solves the mixed-integer
// service/deadhead formulation with connectivity repair, and constructs the
// resulting Eulerian route from the depot. Errors from any stage are
// returned unwrapped so callers can match against slcerr sentinels with
// errors.Is.
func Solve(req Request, opts ...slcconfig.Option) (*Result, error) {
	in := coverage.Input{
		Graph:           req.Graph,
		RequiredEdgeIDs: req.RequiredEdgeIDs,
		Depot:           req.Depot,
		Cost:            req.Cost,
	}
	cg, err := coverage.NewCoverageGraph(in)
	if err != nil {
		return nil, err
	}

	sol, err := lp.Solve(cg, opts...)
	if err != nil {
		return nil, err
	}

	steps, err := route.Construct(cg, sol)
	if err != nil {
		return nil, err
	}

	return &Result{
		SolutionGraph: cg,
		Objective:     sol.Objective,
		Multiplicity:  sol.Multiplicity,
		Route:         steps,
		TurnCost:      route.TurnCost(cg, steps),
	}, nil
}

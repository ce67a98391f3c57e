package lp

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gowaypoint/slc/coverage"
	"github.com/gowaypoint/slc/slcconfig"
	"github.com/gowaypoint/slc/slcerr"
)

// Solution is the LP formulation's output: the directed multigraph induced
// by the chosen service orientations and deadhead traversal counts.
type Solution struct {
	Objective float64
	// Multiplicity maps a coverage.CoverageGraph edge index to how many
	// times it is traversed in the solution (1 for a chosen service edge, a
	// positive integer for a deadhead edge); edges that are not traversed
	// have no entry.
	Multiplicity map[int]int
}

// Solve builds the mixed-integer program described by cg (service and
// symmetry constraints), solves it, repairs connectivity by pairing
// disconnected components with a minimum-cost T-join computed via matching
// whenever the induced support is disconnected, and returns the resulting
// solution graph.
func Solve(cg *coverage.CoverageGraph, opts ...slcconfig.Option) (*Solution, error) {
	cfg := slcconfig.New(opts...)
	maxRepairs := cfg.MaxConnectivityRepairs
	if maxRepairs <= 0 {
		maxRepairs = cg.NumVertices()
	}

	solver := NewSolver(WithEpsilon(cfg.Epsilon), WithLogger(cfg.Logger))
	colOfEdge := make([]int, len(cg.Edges()))
	for i := range colOfEdge {
		colOfEdge[i] = -1
	}

	for _, pair := range cg.RequiredPairs() {
		fwdEdge := cg.Edges()[pair.Forward]
		revEdge := cg.Edges()[pair.Reverse]
		colOfEdge[pair.Forward] = solver.AddColumn(Binary, 0, 1, fwdEdge.Cost)
		colOfEdge[pair.Reverse] = solver.AddColumn(Binary, 0, 1, revEdge.Cost)
		solver.AddRow(1, 1, []Coef{
			{VarID: colOfEdge[pair.Forward], Coef: 1},
			{VarID: colOfEdge[pair.Reverse], Coef: 1},
		})
	}
	for i, e := range cg.Edges() {
		if e.Servicing {
			continue
		}
		colOfEdge[i] = solver.AddColumn(Integer, 0, float64(cg.NumVertices()), e.Cost)
	}

	addSymmetryRows(solver, cg, colOfEdge)

	var sol *Solution
	for round := 0; ; round++ {
		status, err := solver.Solve()
		if err != nil {
			return nil, err
		}
		switch status {
		case StatusInfeasible:
			return nil, fmt.Errorf("%w", slcerr.ErrLPInfeasible)
		case StatusUnbounded:
			return nil, fmt.Errorf("%w", slcerr.ErrLPUnbounded)
		case StatusNumericalFailure:
			return nil, fmt.Errorf("%w", slcerr.ErrNumericalFailure)
		}

		mult, err := multiplicities(solver, cg, colOfEdge, cfg.Epsilon)
		if err != nil {
			return nil, err
		}
		connected, err := repairConnectivity(solver, cg, colOfEdge, mult, cfg)
		if err != nil {
			return nil, err
		}
		if connected {
			sol = &Solution{Objective: solver.ObjectiveValue(), Multiplicity: mult}
			break
		}
		if round >= maxRepairs {
			return nil, fmt.Errorf("%w: connectivity not repaired after %d rounds", slcerr.ErrNumericalFailure, maxRepairs)
		}
		if cfg.Logger != nil {
			cfg.Logger.Warn("connectivity repair round consumed", slog.Int("round", round))
		}
	}

	return sol, nil
}

func addSymmetryRows(solver *Solver, cg *coverage.CoverageGraph, colOfEdge []int) {
	for v := 0; v < cg.NumVertices(); v++ {
		var coefs []Coef
		for i, e := range cg.Edges() {
			switch v {
			case e.From:
				coefs = append(coefs, Coef{VarID: colOfEdge[i], Coef: 1})
			case e.To:
				coefs = append(coefs, Coef{VarID: colOfEdge[i], Coef: -1})
			}
		}
		if len(coefs) > 0 {
			solver.AddRow(0, 0, coefs)
		}
	}
}

// multiplicities reads back the solver's column values as edge traversal
// counts. Each value must land within eps of the integer it rounds to;
// a larger deviation means the relaxation the solver returned as
// "optimal" is not actually integral, which is reported as
// slcerr.ErrNumericalFailure rather than silently rounding away the
// discrepancy.
func multiplicities(solver *Solver, cg *coverage.CoverageGraph, colOfEdge []int, eps float64) (map[int]int, error) {
	mult := make(map[int]int)
	for i := range cg.Edges() {
		v := solver.Value(colOfEdge[i])
		count := math.Round(v)
		if math.Abs(v-count) > eps {
			return nil, fmt.Errorf("%w: column %d value %.9f is not within %.2g of an integer", slcerr.ErrNumericalFailure, colOfEdge[i], v, eps)
		}
		if n := int(count); n > 0 {
			mult[i] = n
		}
	}

	return mult, nil
}

package lp

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"

	"github.com/gowaypoint/slc/slcerr"
)

// Solver accumulates columns and rows, then solves the resulting
// mixed-integer program via a gonum simplex relaxation wrapped in
// branch-and-bound over the Integer/Binary columns.
type Solver struct {
	columns []column
	rows    []row

	values    []float64
	objective float64
	eps       float64
	nodeLimit int
	nodes     int // branch-and-bound nodes explored by the current Solve
	logger    *slog.Logger
}

// Option configures a Solver.
type Option func(*Solver)

// WithEpsilon overrides the tolerance used for integrality and feasibility checks.
func WithEpsilon(eps float64) Option {
	return func(s *Solver) { s.eps = eps }
}

// WithNodeLimit overrides the branch-and-bound node exploration cap.
func WithNodeLimit(n int) Option {
	return func(s *Solver) { s.nodeLimit = n }
}

// WithLogger attaches a structured logger for Debug-level solve events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Solver) { s.logger = l }
}

// NewSolver returns an empty Solver.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{eps: 1e-9, nodeLimit: 10000}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddColumn adds a decision variable and returns its id.
func (s *Solver) AddColumn(kind VarKind, lb, ub, obj float64) int {
	if kind == Binary {
		lb, ub = 0, 1
	}
	id := len(s.columns)
	s.columns = append(s.columns, column{kind: kind, lb: lb, ub: ub, obj: obj})
	return id
}

// AddRow adds a constraint lb <= sum(coefs) <= ub and returns its id.
func (s *Solver) AddRow(lb, ub float64, coefs []Coef) int {
	id := len(s.rows)
	s.rows = append(s.rows, row{lb: lb, ub: ub, coefs: append([]Coef(nil), coefs...)})
	return id
}

// Value returns the solved value of varID. Valid only after a Solve call
// that returned StatusOptimal.
func (s *Solver) Value(varID int) float64 { return s.values[varID] }

// ObjectiveValue returns the solved objective. Valid only after a Solve
// call that returned StatusOptimal.
func (s *Solver) ObjectiveValue() float64 { return s.objective }

// Solve relaxes every Integer/Binary column to continuous, solves via
// simplex, and if the relaxation's solution is already integral, accepts
// it; otherwise it branches on a fractional integer column and recurses,
// keeping the better integral solution of every branch. Exploring more
// than the node limit returns StatusNumericalFailure with an error.
func (s *Solver) Solve() (Status, error) {
	bounds := make([][2]float64, len(s.columns))
	for i, c := range s.columns {
		bounds[i] = [2]float64{c.lb, c.ub}
	}

	s.nodes = 0
	best, status, err := s.branchAndBound(bounds, 0)
	if err != nil {
		return StatusNumericalFailure, err
	}
	if status != StatusOptimal {
		return status, nil
	}

	s.values = best
	s.objective = 0
	for i, c := range s.columns {
		s.objective += c.obj * best[i]
	}
	return StatusOptimal, nil
}

func (s *Solver) branchAndBound(bounds [][2]float64, depth int) ([]float64, Status, error) {
	s.nodes++
	if s.nodes > s.nodeLimit {
		return nil, StatusNumericalFailure, fmt.Errorf("%w: branch-and-bound exceeded %d nodes", slcerr.ErrNumericalFailure, s.nodeLimit)
	}

	x, status, err := s.solveRelaxation(bounds)
	if err != nil {
		return nil, StatusNumericalFailure, err
	}
	if status != StatusOptimal {
		return nil, status, nil
	}

	branchVar := -1
	for i, c := range s.columns {
		if c.kind == Continuous {
			continue
		}
		f := x[i] - math.Floor(x[i])
		if f > s.eps && f < 1-s.eps {
			branchVar = i
			break
		}
	}
	if branchVar == -1 {
		return x, StatusOptimal, nil
	}

	floorBounds := append([][2]float64(nil), bounds...)
	floorBounds[branchVar] = [2]float64{bounds[branchVar][0], math.Floor(x[branchVar])}
	ceilBounds := append([][2]float64(nil), bounds...)
	ceilBounds[branchVar] = [2]float64{math.Ceil(x[branchVar]), bounds[branchVar][1]}

	if s.logger != nil {
		s.logger.Debug("branching", slog.Int("var", branchVar), slog.Float64("value", x[branchVar]))
	}

	floorX, floorStatus, err := s.branchAndBound(floorBounds, depth+1)
	if err != nil {
		return nil, StatusNumericalFailure, err
	}
	ceilX, ceilStatus, err := s.branchAndBound(ceilBounds, depth+1)
	if err != nil {
		return nil, StatusNumericalFailure, err
	}

	switch {
	case floorStatus == StatusOptimal && ceilStatus == StatusOptimal:
		if s.objectiveOf(floorX) <= s.objectiveOf(ceilX) {
			return floorX, StatusOptimal, nil
		}
		return ceilX, StatusOptimal, nil
	case floorStatus == StatusOptimal:
		return floorX, StatusOptimal, nil
	case ceilStatus == StatusOptimal:
		return ceilX, StatusOptimal, nil
	default:
		return nil, StatusInfeasible, nil
	}
}

func (s *Solver) objectiveOf(x []float64) float64 {
	obj := 0.0
	for i, c := range s.columns {
		obj += c.obj * x[i]
	}
	return obj
}

// solveRelaxation solves the continuous relaxation with the given per-column
// bounds via gonum's dense simplex, after converting box-bounded columns and
// two-sided rows into standard-form equalities with slack/surplus columns.
//
// Every row is normalized to "coefs . x' [+ slack] = rhs" in the shifted
// variables x' = x - lb; equality rows (lb == ub) get no slack column,
// every other row gets exactly one.
func (s *Solver) solveRelaxation(bounds [][2]float64) ([]float64, Status, error) {
	nOrig := len(s.columns)

	c := make([]float64, nOrig)
	for i, col := range s.columns {
		c[i] = col.obj
	}

	var aRows [][]float64
	var bVals []float64
	var needsSlack []bool
	extendRow := func(coefs map[int]float64, rhs float64, slack bool) {
		full := make([]float64, nOrig)
		for id, coef := range coefs {
			full[id] = coef
		}
		aRows = append(aRows, full)
		bVals = append(bVals, rhs)
		needsSlack = append(needsSlack, slack)
	}

	// Shift each column so its lower bound is 0; record shift for unshifting
	// the solution afterward. Add an explicit upper-bound row when finite.
	shift := make([]float64, nOrig)
	for i, b := range bounds {
		shift[i] = b[0]
		if !math.IsInf(b[1], 1) {
			width := b[1] - b[0]
			extendRow(map[int]float64{i: 1}, width, true) // x'_i + s = width, s >= 0
		}
	}

	for _, r := range s.rows {
		coefs := make(map[int]float64, len(r.coefs))
		shiftTerm := 0.0
		for _, term := range r.coefs {
			coefs[term.VarID] += term.Coef
			shiftTerm += term.Coef * shift[term.VarID]
		}
		if r.lb == r.ub {
			extendRow(coefs, r.lb-shiftTerm, false) // equality, no slack
			continue
		}
		if !math.IsInf(r.ub, 1) {
			extendRow(coefs, r.ub-shiftTerm, true) // <=, slack
		}
		if !math.IsInf(r.lb, -1) {
			neg := make(map[int]float64, len(coefs))
			for id, coef := range coefs {
				neg[id] = -coef
			}
			extendRow(neg, -(r.lb - shiftTerm), true) // >=, surplus
		}
	}

	return s.solveStandardForm(c, aRows, bVals, needsSlack, nOrig, shift)
}

// solveStandardForm appends one slack column per row flagged in needsSlack,
// then calls gonum's simplex.
func (s *Solver) solveStandardForm(c []float64, aRows [][]float64, bVals []float64, needsSlack []bool, nOrig int, shift []float64) ([]float64, Status, error) {
	numSlacks := 0
	for _, need := range needsSlack {
		if need {
			numSlacks++
		}
	}
	totalVars := nOrig + numSlacks

	data := make([]float64, len(aRows)*totalVars)
	slackCol := nOrig
	for i, rowVals := range aRows {
		copy(data[i*totalVars:i*totalVars+nOrig], rowVals)
		if needsSlack[i] {
			data[i*totalVars+slackCol] = 1
			slackCol++
		}
	}
	A := mat.NewDense(len(aRows), totalVars, data)

	fullC := make([]float64, totalVars)
	copy(fullC, c)

	if len(aRows) == 0 {
		// No constraints at all: unbounded unless every objective
		// coefficient is zero, in which case the trivial zero point is optimal.
		for _, coef := range c {
			if coef != 0 {
				return nil, StatusUnbounded, nil
			}
		}
		return make([]float64, nOrig), StatusOptimal, nil
	}

	_, xStd, err := lp.Simplex(fullC, A, bVals, 0, nil)
	if err != nil {
		switch {
		case err == lp.ErrInfeasible:
			return nil, StatusInfeasible, nil
		case err == lp.ErrUnbounded:
			return nil, StatusUnbounded, nil
		default:
			return nil, StatusNumericalFailure, fmt.Errorf("%w: %s", slcerr.ErrNumericalFailure, err)
		}
	}

	x := make([]float64, nOrig)
	for i := 0; i < nOrig; i++ {
		x[i] = xStd[i] + shift[i]
	}
	return x, StatusOptimal, nil
}

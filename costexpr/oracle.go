package costexpr

import (
	"fmt"
	"math"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/gowaypoint/slc/core"
)

// Oracle is a coverage.EdgeCost implementation whose service and deadhead
// costs are computed by compiled expr-lang programs.
type Oracle struct {
	service  *vm.Program
	deadhead *vm.Program
}

// NewOracle compiles serviceExpr and deadheadExpr. Each expression is
// evaluated twice per edge, once with direction "forward" and once with
// "reverse", against an environment exposing ID, From, To, Weight, and
// Direction. An expression that ignores direction yields a symmetric cost.
func NewOracle(serviceExpr, deadheadExpr string) (*Oracle, error) {
	svc, err := expr.Compile(serviceExpr, expr.Env(costEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("costexpr: compiling service expression: %w", err)
	}
	dh, err := expr.Compile(deadheadExpr, expr.Env(costEnv{}), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("costexpr: compiling deadhead expression: %w", err)
	}
	return &Oracle{service: svc, deadhead: dh}, nil
}

// costEnv is the evaluation environment exposed to compiled expressions.
type costEnv struct {
	ID        string
	From      string
	To        string
	Weight    int64
	Direction string
}

func (o *Oracle) ServiceCost(edge *core.Edge) (fwd, rev float64) {
	return o.eval(o.service, edge, "forward"), o.eval(o.service, edge, "reverse")
}

func (o *Oracle) DeadheadCost(edge *core.Edge) (fwd, rev float64) {
	return o.eval(o.deadhead, edge, "forward"), o.eval(o.deadhead, edge, "reverse")
}

func (o *Oracle) eval(program *vm.Program, edge *core.Edge, direction string) float64 {
	env := costEnv{ID: edge.ID, From: edge.From, To: edge.To, Weight: edge.Weight, Direction: direction}
	out, err := expr.Run(program, env)
	if err != nil {
		return math.NaN()
	}
	cost, ok := out.(float64)
	if !ok {
		return math.NaN()
	}
	return cost
}

package coverage

import "github.com/gowaypoint/slc/core"

// EdgeCost is the caller-supplied cost oracle. ServiceCost and DeadheadCost
// must return finite, non-negative costs; the first return value is the
// forward direction (edge.From to edge.To), the second is reverse.
type EdgeCost interface {
	ServiceCost(edge *core.Edge) (fwd, rev float64)
	DeadheadCost(edge *core.Edge) (fwd, rev float64)
}

// DirectedEdgeRef names one directed traversal of an underlying undirected
// edge, for use by TurnAwareCost.
type DirectedEdgeRef struct {
	Edge      *core.Edge
	Forward   bool // true: traversed From->To, false: To->From
	Servicing bool
}

// TurnAwareCost is an optional capability an EdgeCost oracle may also
// implement to price the turn made when transitioning from one directed
// edge to the next at a shared vertex. Coverage graphs built from an oracle
// that does not implement this interface treat every turn cost as zero.
type TurnAwareCost interface {
	ComputeTurnCost(in, out DirectedEdgeRef) float64
}

// TurnCostOf returns 0 unless cost also implements TurnAwareCost.
func TurnCostOf(cost EdgeCost, in, out DirectedEdgeRef) float64 {
	if tc, ok := cost.(TurnAwareCost); ok {
		return tc.ComputeTurnCost(in, out)
	}
	return 0
}

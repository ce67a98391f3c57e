package route

import (
	"fmt"
	"sort"

	"github.com/gowaypoint/slc/coverage"
	"github.com/gowaypoint/slc/lp"
	"github.com/gowaypoint/slc/slcerr"
)

// Step is one directed traversal in the constructed route.
type Step struct {
	From, To  int
	EdgeIndex int
	Servicing bool
}

// Construct walks sol's induced multigraph starting and ending at cg's
// depot, returning an edge-consecutive closed walk that traverses every
// selected edge copy exactly once. Fails with an error wrapping
// slcerr.ErrNotEulerian if degrees are imbalanced or the selected support
// is not reachable from the depot in one piece — both indicate a bug
// upstream, since lp.Solve's connectivity repair should already guarantee
// an Eulerian, connected multigraph.
func Construct(cg *coverage.CoverageGraph, sol *lp.Solution) ([]Step, error) {
	n := cg.NumVertices()
	indeg := make([]int, n)
	outdeg := make([]int, n)
	total := 0

	edgeIndices := make([]int, 0, len(sol.Multiplicity))
	for edgeIdx := range sol.Multiplicity {
		edgeIndices = append(edgeIndices, edgeIdx)
	}
	sort.Ints(edgeIndices)

	local := make([][]int, n)
	for _, edgeIdx := range edgeIndices {
		count := sol.Multiplicity[edgeIdx]
		e := cg.Edges()[edgeIdx]
		outdeg[e.From] += count
		indeg[e.To] += count
		total += count
		for i := 0; i < count; i++ {
			local[e.From] = append(local[e.From], edgeIdx)
		}
	}

	for v := 0; v < n; v++ {
		if indeg[v] != outdeg[v] {
			return nil, fmt.Errorf("%w: vertex %d has in-degree %d, out-degree %d", slcerr.ErrNotEulerian, v, indeg[v], outdeg[v])
		}
	}
	if total == 0 {
		return nil, nil
	}

	edgeCircuit := hierholzer(cg, local, cg.Depot())
	if len(edgeCircuit) != total {
		return nil, fmt.Errorf("%w: walk from depot %d covered %d of %d selected edges, support is disconnected", slcerr.ErrNotEulerian, cg.Depot(), len(edgeCircuit), total)
	}

	steps := make([]Step, len(edgeCircuit))
	for i, edgeIdx := range edgeCircuit {
		e := cg.Edges()[edgeIdx]
		steps[i] = Step{From: e.From, To: e.To, EdgeIndex: edgeIdx, Servicing: e.Servicing}
	}
	return steps, nil
}

// TurnCost sums the turn penalty charged between every consecutive pair of
// steps in a constructed route, per cg's cost oracle. It is zero whenever
// that oracle does not implement coverage.TurnAwareCost. This penalty is not
// part of the LP objective lp.Solve minimizes — the mixed-integer
// formulation has no notion of edge adjacency order — so it is reported
// separately rather than folded into sol.Objective.
func TurnCost(cg *coverage.CoverageGraph, steps []Step) float64 {
	if len(steps) < 2 {
		return 0
	}

	total := 0.0
	for i := 1; i < len(steps); i++ {
		total += coverage.TurnCostOf(cg.Cost(), directedRef(cg, steps[i-1]), directedRef(cg, steps[i]))
	}
	return total
}

func directedRef(cg *coverage.CoverageGraph, s Step) coverage.DirectedEdgeRef {
	e := cg.Edges()[s.EdgeIndex]
	underlying := cg.UnderlyingEdge(e.UnderlyingEdgeID)
	forward := underlying != nil && underlying.From == cg.VertexID(e.From)
	return coverage.DirectedEdgeRef{Edge: underlying, Forward: forward, Servicing: e.Servicing}
}

// hierholzer runs the standard iterative stack-based construction: descend
// consuming edges until stuck, then pop back onto the circuit, splicing
// each closed sub-walk in at its shared vertex.
func hierholzer(cg *coverage.CoverageGraph, local [][]int, start int) []int {
	vStack := []int{start}
	var eStack []int
	var circuit []int

	for len(vStack) > 0 {
		u := vStack[len(vStack)-1]
		if len(local[u]) > 0 {
			edgeIdx := local[u][len(local[u])-1]
			local[u] = local[u][:len(local[u])-1]
			v := cg.Edges()[edgeIdx].To
			vStack = append(vStack, v)
			eStack = append(eStack, edgeIdx)
		} else {
			vStack = vStack[:len(vStack)-1]
			if len(eStack) > 0 {
				circuit = append(circuit, eStack[len(eStack)-1])
				eStack = eStack[:len(eStack)-1]
			}
		}
	}

	for i, j := 0, len(circuit)-1; i < j; i, j = i+1, j-1 {
		circuit[i], circuit[j] = circuit[j], circuit[i]
	}
	return circuit
}

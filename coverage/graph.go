package coverage

import (
	"fmt"
	"math"
	"sort"

	"github.com/gowaypoint/slc/core"
	"github.com/gowaypoint/slc/slcerr"
)

// DirectedEdge is one directed traversal option in the coverage multigraph:
// either a service copy of a required undirected edge, or a deadhead copy
// of any undirected edge.
type DirectedEdge struct {
	From, To  int
	Servicing bool
	Cost      float64

	// UnderlyingEdgeID is the core.Graph edge id this copy was derived from.
	UnderlyingEdgeID string
}

// RequiredPair names the two directed service copies of one required
// undirected edge; the LP formulation picks exactly one.
type RequiredPair struct {
	UnderlyingEdgeID string
	Forward, Reverse int // indices into CoverageGraph.Edges()
}

// CoverageGraph is the directed service/deadhead multigraph built from an
// Input. Vertices are dense integers [0, n); VertexID/VertexIndex translate
// to and from the original core.Graph's string ids.
type CoverageGraph struct {
	vertexID    []string
	vertexIndex map[string]int
	depot       int

	edges         []DirectedEdge
	requiredPairs []RequiredPair

	cost     EdgeCost
	edgeByID map[string]*core.Edge
}

// NewCoverageGraph validates in and builds the directed multigraph it
// describes.
func NewCoverageGraph(in Input) (*CoverageGraph, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	ids := append([]string(nil), in.Graph.Vertices()...)
	sort.Strings(ids)

	cg := &CoverageGraph{
		vertexID:    ids,
		vertexIndex: make(map[string]int, len(ids)),
		cost:        in.Cost,
		edgeByID:    make(map[string]*core.Edge, len(in.Graph.Edges())),
	}
	for i, id := range ids {
		cg.vertexIndex[id] = i
	}
	cg.depot = cg.vertexIndex[in.Depot]

	required := make(map[string]struct{}, len(in.RequiredEdgeIDs))
	for _, id := range in.RequiredEdgeIDs {
		required[id] = struct{}{}
	}

	edges := append([]*core.Edge(nil), in.Graph.Edges()...)
	sort.Slice(edges, func(i, j int) bool { return edges[i].ID < edges[j].ID })

	for _, edge := range edges {
		u, uok := cg.vertexIndex[edge.From]
		v, vok := cg.vertexIndex[edge.To]
		if !uok || !vok {
			return nil, fmt.Errorf("%w: edge %q references unknown vertex", slcerr.ErrInvalidInput, edge.ID)
		}
		cg.edgeByID[edge.ID] = edge

		dhFwd, dhRev := in.Cost.DeadheadCost(edge)
		if err := requireFiniteNonNegative(edge.ID, "deadhead", dhFwd, dhRev); err != nil {
			return nil, err
		}
		cg.edges = append(cg.edges,
			DirectedEdge{From: u, To: v, Servicing: false, Cost: dhFwd, UnderlyingEdgeID: edge.ID},
			DirectedEdge{From: v, To: u, Servicing: false, Cost: dhRev, UnderlyingEdgeID: edge.ID},
		)

		if _, isRequired := required[edge.ID]; isRequired {
			svcFwd, svcRev := in.Cost.ServiceCost(edge)
			if err := requireFiniteNonNegative(edge.ID, "service", svcFwd, svcRev); err != nil {
				return nil, err
			}
			fwdIdx := len(cg.edges)
			cg.edges = append(cg.edges, DirectedEdge{From: u, To: v, Servicing: true, Cost: svcFwd, UnderlyingEdgeID: edge.ID})
			revIdx := len(cg.edges)
			cg.edges = append(cg.edges, DirectedEdge{From: v, To: u, Servicing: true, Cost: svcRev, UnderlyingEdgeID: edge.ID})
			cg.requiredPairs = append(cg.requiredPairs, RequiredPair{UnderlyingEdgeID: edge.ID, Forward: fwdIdx, Reverse: revIdx})
		}
	}

	return cg, nil
}

func requireFiniteNonNegative(edgeID, kind string, fwd, rev float64) error {
	for _, c := range []float64{fwd, rev} {
		if math.IsNaN(c) || math.IsInf(c, 0) || c < 0 {
			return fmt.Errorf("%w: %s cost for edge %q must be finite and non-negative, got %v", slcerr.ErrInvalidInput, kind, edgeID, c)
		}
	}
	return nil
}

// NumVertices returns the number of vertices in the coverage graph.
func (cg *CoverageGraph) NumVertices() int { return len(cg.vertexID) }

// Depot returns the dense index of the depot vertex.
func (cg *CoverageGraph) Depot() int { return cg.depot }

// VertexID returns the original core.Graph vertex id for a dense index.
func (cg *CoverageGraph) VertexID(i int) string { return cg.vertexID[i] }

// VertexIndex returns the dense index for an original core.Graph vertex id.
func (cg *CoverageGraph) VertexIndex(id string) (int, bool) {
	i, ok := cg.vertexIndex[id]
	return i, ok
}

// Edges returns every directed edge copy (deadhead and service) in the
// coverage graph. The returned slice must not be mutated.
func (cg *CoverageGraph) Edges() []DirectedEdge { return cg.edges }

// RequiredPairs returns, for every required undirected edge, the indices of
// its two service directed copies.
func (cg *CoverageGraph) RequiredPairs() []RequiredPair { return cg.requiredPairs }

// Cost returns the EdgeCost oracle the graph was built with, so callers
// downstream of construction (route turn-cost accounting) can probe it for
// the optional TurnAwareCost capability without threading it through
// separately.
func (cg *CoverageGraph) Cost() EdgeCost { return cg.cost }

// UnderlyingEdge returns the original core.Graph edge a directed copy was
// derived from, or nil if id is unknown.
func (cg *CoverageGraph) UnderlyingEdge(id string) *core.Edge { return cg.edgeByID[id] }

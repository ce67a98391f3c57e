package coverage_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowaypoint/slc/core"
	"github.com/gowaypoint/slc/coverage"
)

type unitCost struct{}

func (unitCost) ServiceCost(*core.Edge) (float64, float64)   { return 1, 1 }
func (unitCost) DeadheadCost(*core.Edge) (float64, float64) { return 1, 1 }

func buildTriangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"0", "1", "2"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge("0", "1", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("1", "2", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("0", "2", 1)
	require.NoError(t, err)
	return g
}

func TestNewCoverageGraph_Triangle(t *testing.T) {
	g := buildTriangle(t)
	ids := make([]string, 0, 3)
	for _, e := range g.Edges() {
		ids = append(ids, e.ID)
	}

	in := coverage.Input{Graph: g, RequiredEdgeIDs: ids, Depot: "0", Cost: unitCost{}}
	cg, err := coverage.NewCoverageGraph(in)
	require.NoError(t, err)
	require.Equal(t, 3, cg.NumVertices())
	require.Len(t, cg.RequiredPairs(), 3)
	require.Len(t, cg.Edges(), 3*4) // 2 deadhead + 2 service per required edge
}

func TestNewCoverageGraph_MissingDepot(t *testing.T) {
	g := buildTriangle(t)
	in := coverage.Input{Graph: g, RequiredEdgeIDs: []string{"e1"}, Depot: "missing", Cost: unitCost{}}
	_, err := coverage.NewCoverageGraph(in)
	require.Error(t, err)
}

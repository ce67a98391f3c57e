package route_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowaypoint/slc/core"
	"github.com/gowaypoint/slc/coverage"
	"github.com/gowaypoint/slc/lp"
	"github.com/gowaypoint/slc/route"
)

type unitCost struct{}

func (unitCost) ServiceCost(*core.Edge) (float64, float64)   { return 1, 1 }
func (unitCost) DeadheadCost(*core.Edge) (float64, float64) { return 1, 1 }

func TestConstruct_Triangle(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"0", "1", "2"} {
		require.NoError(t, g.AddVertex(id))
	}
	var ids []string
	for _, uv := range [][2]string{{"0", "1"}, {"1", "2"}, {"0", "2"}} {
		id, err := g.AddEdge(uv[0], uv[1], 1)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	in := coverage.Input{Graph: g, RequiredEdgeIDs: ids, Depot: "0", Cost: unitCost{}}
	cg, err := coverage.NewCoverageGraph(in)
	require.NoError(t, err)

	sol, err := lp.Solve(cg)
	require.NoError(t, err)

	steps, err := route.Construct(cg, sol)
	require.NoError(t, err)
	require.Len(t, steps, 3)
	require.Equal(t, cg.Depot(), steps[0].From)
	require.Equal(t, cg.Depot(), steps[len(steps)-1].To)

	for i := 1; i < len(steps); i++ {
		require.Equal(t, steps[i-1].To, steps[i].From)
	}
}

// turningCost charges a flat penalty for every turn, regardless of the
// edges involved, letting the test assert the exact expected multiple.
type turningCost struct{ unitCost }

func (turningCost) ComputeTurnCost(coverage.DirectedEdgeRef, coverage.DirectedEdgeRef) float64 {
	return 0.5
}

func TestTurnCost_ChargedPerConsecutivePair(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"0", "1", "2"} {
		require.NoError(t, g.AddVertex(id))
	}
	var ids []string
	for _, uv := range [][2]string{{"0", "1"}, {"1", "2"}, {"0", "2"}} {
		id, err := g.AddEdge(uv[0], uv[1], 1)
		require.NoError(t, err)
		ids = append(ids, id)
	}

	in := coverage.Input{Graph: g, RequiredEdgeIDs: ids, Depot: "0", Cost: turningCost{}}
	cg, err := coverage.NewCoverageGraph(in)
	require.NoError(t, err)

	sol, err := lp.Solve(cg)
	require.NoError(t, err)

	steps, err := route.Construct(cg, sol)
	require.NoError(t, err)

	require.InDelta(t, 0.5*float64(len(steps)-1), route.TurnCost(cg, steps), 1e-9)
}

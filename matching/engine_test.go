package matching_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowaypoint/slc/graph"
	"github.com/gowaypoint/slc/matching"
)

func TestEngine_SolveMaximumMatching_Triangle(t *testing.T) {
	g, err := graph.New(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	e := matching.NewEngine(g)
	m := e.SolveMaximumMatching()
	require.Len(t, m, 1)
}

func TestEngine_MinimumCostPerfectMatching_K4(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g, err := graph.New(4, edges)
	require.NoError(t, err)

	cost := []float64{1, 2, 3, 4, 5, 6}
	e := matching.NewEngine(g)
	m, obj, err := e.SolveMinimumCostPerfectMatching(cost)
	require.NoError(t, err)
	require.Len(t, m, 2)
	require.InDelta(t, 7.0, obj, 1e-6)
}

func TestEngine_MinimumCostPerfectMatching_NoPerfectMatching_K3(t *testing.T) {
	g, err := graph.New(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)

	e := matching.NewEngine(g)
	_, _, err = e.SolveMinimumCostPerfectMatching([]float64{1, 1, 1})
	require.ErrorIs(t, err, matching.ErrNoPerfectMatching)
}

// TestEngine_OddBlossomForcing exercises a 5-cycle plus a pendant vertex
// joined by two expensive edges to non-adjacent cycle vertices, forcing the
// primal-dual loop to contract a size-5 blossom before it can terminate.
func TestEngine_OddBlossomForcing(t *testing.T) {
	// vertices 0..4 form the cycle, vertex 5 is the pendant.
	edges := [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}, // cycle, indices 0-4
		{5, 0}, {5, 2}, // pendant edges, indices 5-6
	}
	g, err := graph.New(6, edges)
	require.NoError(t, err)

	cost := []float64{1, 1, 1, 1, 1, 10, 10}
	e := matching.NewEngine(g)
	m, obj, err := e.SolveMinimumCostPerfectMatching(cost)
	require.NoError(t, err)
	require.Len(t, m, 3)
	require.InDelta(t, 12.0, obj, 1e-6)
}

func TestEngine_Deterministic(t *testing.T) {
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g, err := graph.New(4, edges)
	require.NoError(t, err)
	cost := []float64{1, 2, 3, 4, 5, 6}

	e1 := matching.NewEngine(g)
	m1, obj1, err := e1.SolveMinimumCostPerfectMatching(cost)
	require.NoError(t, err)

	e2 := matching.NewEngine(g)
	m2, obj2, err := e2.SolveMinimumCostPerfectMatching(cost)
	require.NoError(t, err)

	require.Equal(t, m1, m2)
	require.Equal(t, obj1, obj2)
}

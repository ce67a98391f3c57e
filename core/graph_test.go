package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowaypoint/slc/core"
)

func TestGraph_AddVertexIdempotent(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	require.Equal(t, []string{"A"}, g.Vertices())
	require.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

func TestGraph_AddEdgeMirrorsUndirected(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	id, err := g.AddEdge("A", "B", 5)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.Equal(t, []string{"A", "B"}, g.Vertices())
	e, err := g.GetEdge(id)
	require.NoError(t, err)
	require.Equal(t, "A", e.From)
	require.Equal(t, "B", e.To)
	require.EqualValues(t, 5, e.Weight)
	require.False(t, g.Directed())
}

func TestGraph_AddEdgeRejectsLoop(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "A", 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
}

func TestGraph_AddEdgeRejectsParallel(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("A", "B", 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
	_, err = g.AddEdge("B", "A", 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
}

func TestGraph_AddEdgeRejectsWeightOnUnweighted(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("A", "B", 1)
	require.ErrorIs(t, err, core.ErrBadWeight)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
}

func TestGraph_GetEdgeNotFound(t *testing.T) {
	g := core.NewGraph()
	_, err := g.GetEdge("missing")
	require.True(t, errors.Is(err, core.ErrEdgeNotFound))
}

func TestGraph_EdgesSortedByID(t *testing.T) {
	g := core.NewGraph(core.WithWeighted())
	_, err := g.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "C", 1)
	require.NoError(t, err)
	_, err = g.AddEdge("C", "A", 1)
	require.NoError(t, err)

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i := 1; i < len(edges); i++ {
		require.Less(t, edges[i-1].ID, edges[i].ID)
	}
}

func TestGraph_Directed(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.True(t, g.Directed())
}

func TestGraph_HasVertex(t *testing.T) {
	g := core.NewGraph()
	require.False(t, g.HasVertex("A"))
	require.False(t, g.HasVertex(""))
	require.NoError(t, g.AddVertex("A"))
	require.True(t, g.HasVertex("A"))
}

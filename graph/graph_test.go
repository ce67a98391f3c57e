package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowaypoint/slc/graph"
)

func TestGraph_TriangleInvariants(t *testing.T) {
	g, err := graph.New(3, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	require.NoError(t, err)
	require.Equal(t, 3, g.NumVertices())
	require.Equal(t, 3, g.NumEdges())

	m := g.AdjMatrix()
	for e := 0; e < g.NumEdges(); e++ {
		u, v := g.Edge(e)
		require.Contains(t, g.AdjList(u), v)
		require.Contains(t, g.AdjList(v), u)
		require.True(t, m[u][v])
		require.True(t, m[v][u])
		require.Equal(t, e, g.EdgeIndex(u, v))
		require.Equal(t, e, g.EdgeIndex(v, u))
	}
	require.Equal(t, graph.NoEdge, g.EdgeIndex(0, 0))
}

func TestGraph_RejectsInvalidEdge(t *testing.T) {
	_, err := graph.New(2, [][2]int{{0, 5}})
	require.ErrorIs(t, err, graph.ErrInvalidEdge)

	_, err = graph.New(2, [][2]int{{0, 0}})
	require.ErrorIs(t, err, graph.ErrInvalidEdge)
}

package graph

import (
	"errors"
	"fmt"
	"sort"
)

// NoEdge is the sentinel returned by EdgeIndex when two vertices are not adjacent.
const NoEdge = -1

// ErrInvalidEdge is returned by New when an edge references a vertex outside
// [0, n) or is a self-loop.
var ErrInvalidEdge = errors.New("graph: invalid edge")

// Graph is an immutable, dense, integer-indexed undirected simple graph.
//
// Invariant: for every index e, edge(e) = (u,v) implies AdjList(u) contains
// v and AdjMatrix()[u][v] is true, and symmetrically for v.
type Graph struct {
	n     int
	edges [][2]int // edges[e] = (u, v), in the order given to New
	index [][]int  // index[u][v] = edge index or NoEdge, dense n x n
	adj   [][]int  // adj[u] = sorted neighbour list
}

// New builds a Graph over vertices [0, n) from an edge list of (u, v) pairs.
// Parallel edges are not rejected: a later edge between the same pair
// overwrites the earlier one's EdgeIndex entry and adds a duplicate AdjList
// neighbour. Callers (lp's connectivity repair, which builds the matching
// engine's input) are expected to pass a simple edge list, matching C2's
// "dense undirected simple graph" contract.
func New(n int, edges [][2]int) (*Graph, error) {
	index := make([][]int, n)
	adj := make([][]int, n)
	for u := 0; u < n; u++ {
		row := make([]int, n)
		for v := range row {
			row[v] = NoEdge
		}
		index[u] = row
	}

	stored := make([][2]int, len(edges))
	for e, uv := range edges {
		u, v := uv[0], uv[1]
		if u < 0 || u >= n || v < 0 || v >= n || u == v {
			return nil, fmt.Errorf("%w: edge %d = (%d,%d) for n=%d", ErrInvalidEdge, e, u, v, n)
		}
		stored[e] = [2]int{u, v}
		index[u][v] = e
		index[v][u] = e
		adj[u] = append(adj[u], v)
		adj[v] = append(adj[v], u)
	}
	for u := 0; u < n; u++ {
		sort.Ints(adj[u])
	}

	return &Graph{n: n, edges: stored, index: index, adj: adj}, nil
}

// NumVertices returns n.
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns m.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edge returns the endpoints of edge index e.
func (g *Graph) Edge(e int) (u, v int) {
	uv := g.edges[e]
	return uv[0], uv[1]
}

// EdgeIndex returns the edge index between u and v, or NoEdge if they are
// not adjacent. Symmetric and total over adjacent pairs.
func (g *Graph) EdgeIndex(u, v int) int {
	return g.index[u][v]
}

// AdjList returns the sorted neighbours of u. The returned slice must not be
// mutated by callers.
func (g *Graph) AdjList(u int) []int {
	return g.adj[u]
}

// AdjMatrix returns a fresh n x n boolean adjacency matrix.
func (g *Graph) AdjMatrix() [][]bool {
	m := make([][]bool, g.n)
	for u := 0; u < g.n; u++ {
		row := make([]bool, g.n)
		for _, v := range g.adj[u] {
			row[v] = true
		}
		m[u] = row
	}
	return m
}

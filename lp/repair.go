package lp

import (
	"math"

	"github.com/gowaypoint/slc/coverage"
	"github.com/gowaypoint/slc/graph"
	"github.com/gowaypoint/slc/matching"
	"github.com/gowaypoint/slc/slcconfig"
)

// unionFind is a plain slice-backed disjoint-set structure sized to the
// coverage graph's vertex count.
type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) { u.parent[u.find(a)] = u.find(b) }

// repairConnectivity checks whether every vertex touched by a required edge
// lies in one connected component of the currently selected support graph.
// If not, it pairs up the disconnected components' representatives with a
// minimum-cost T-join (via matching.Engine, over an all-pairs shortest-path
// distance graph closed with Floyd-Warshall) and adds one cut row per
// matched pair forcing at least one edge across that pair's boundary,
// mutating solver so the next Solve call can glue them together.
//
// Returns true if the support was already connected.
func repairConnectivity(solver *Solver, cg *coverage.CoverageGraph, colOfEdge []int, mult map[int]int, cfg slcconfig.Options) (bool, error) {
	n := cg.NumVertices()
	uf := newUnionFind(n)
	for i, e := range cg.Edges() {
		if mult[i] > 0 {
			uf.union(e.From, e.To)
		}
	}

	requiredVertices := make(map[int]struct{})
	for _, pair := range cg.RequiredPairs() {
		fwd := cg.Edges()[pair.Forward]
		requiredVertices[fwd.From] = struct{}{}
		requiredVertices[fwd.To] = struct{}{}
	}

	componentReps := make(map[int]int) // root -> representative vertex
	for v := range requiredVertices {
		root := uf.find(v)
		if _, ok := componentReps[root]; !ok {
			componentReps[root] = v
		}
	}
	if len(componentReps) <= 1 {
		return true, nil
	}

	var t []int
	for _, v := range componentReps {
		t = append(t, v)
	}
	if len(t)%2 == 1 {
		t = t[:len(t)-1] // picked up again next round
	}
	if len(t) < 2 {
		return true, nil
	}

	dist := allPairsShortestPaths(cg)

	edges := make([][2]int, 0, len(t)*(len(t)-1)/2)
	cost := make([]float64, 0, cap(edges))
	for i := 0; i < len(t); i++ {
		for j := i + 1; j < len(t); j++ {
			edges = append(edges, [2]int{i, j})
			cost = append(cost, dist[t[i]][t[j]])
		}
	}
	tGraph, err := graph.New(len(t), edges)
	if err != nil {
		return false, err
	}

	engine := matching.NewEngine(tGraph, matching.WithEpsilon(cfg.Epsilon), matching.WithMaxIterations(cfg.MaxPrimalDualIterations), matching.WithLogger(cfg.Logger))
	matched, _, err := engine.SolveMinimumCostPerfectMatching(cost)
	if err != nil {
		return false, err
	}

	for _, edgeIdx := range matched {
		i, j := tGraph.Edge(edgeIdx)
		a, b := uf.find(t[i]), uf.find(t[j])
		addCutRow(solver, cg, colOfEdge, uf, a, b)
	}

	return false, nil
}

// addCutRow forces at least one directed edge crossing between the
// components rooted at a and b to be used.
func addCutRow(solver *Solver, cg *coverage.CoverageGraph, colOfEdge []int, uf *unionFind, a, b int) {
	var coefs []Coef
	for i, e := range cg.Edges() {
		fromRoot, toRoot := uf.find(e.From), uf.find(e.To)
		if (fromRoot == a && toRoot == b) || (fromRoot == b && toRoot == a) {
			coefs = append(coefs, Coef{VarID: colOfEdge[i], Coef: 1})
		}
	}
	if len(coefs) > 0 {
		solver.AddRow(1, Inf, coefs)
	}
}

// allPairsShortestPaths computes an n x n distance matrix over the coverage
// graph's directed edges via Floyd-Warshall, symmetrized by taking the
// cheaper direction between every pair before closing under the triangle
// inequality.
func allPairsShortestPaths(cg *coverage.CoverageGraph) [][]float64 {
	n := cg.NumVertices()
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			if i != j {
				dist[i][j] = math.Inf(1)
			}
		}
	}
	for _, e := range cg.Edges() {
		if e.Cost < dist[e.From][e.To] {
			dist[e.From][e.To] = e.Cost
			dist[e.To][e.From] = e.Cost
		}
	}

	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if dist[i][k]+dist[k][j] < dist[i][j] {
					dist[i][j] = dist[i][k] + dist[k][j]
				}
			}
		}
	}
	return dist
}

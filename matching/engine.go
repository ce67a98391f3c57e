package matching

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gowaypoint/slc/graph"
	"github.com/gowaypoint/slc/heap"
)

const (
	unlabeled = 0
	odd       = 1
	even      = 2
)

// Engine runs Edmonds' blossom algorithm over a fixed graph.
type Engine struct {
	g *graph.Graph
	n int // original vertex count
	m int // edge count

	outer   []int
	deep    [][]int
	shallow [][]int
	tip     []int
	active  []bool
	label   []int // "type" in the reference: UNLABELED/ODD/EVEN
	forest  []int
	root    []int
	blocked []bool
	dual    []float64
	slack   []float64
	mate    []int

	free       []int // stack of unused pseudo-vertex indices in [n, 2n)
	forestList []int // BFS worklist, supports push front/back
	visited    []bool
	perfect    bool

	eps           float64
	maxIterations int
	logger        *slog.Logger
}

// NewEngine builds an Engine over g. The Engine holds a non-owning reference
// to g; g must outlive every call made on the Engine.
func NewEngine(g *graph.Graph, opts ...Option) *Engine {
	n := g.NumVertices()
	e := &Engine{
		g:       g,
		n:       n,
		m:       g.NumEdges(),
		outer:   make([]int, 2*n),
		deep:    make([][]int, 2*n),
		shallow: make([][]int, 2*n),
		tip:     make([]int, 2*n),
		active:  make([]bool, 2*n),
		label:   make([]int, 2*n),
		forest:  make([]int, 2*n),
		root:    make([]int, 2*n),
		blocked: make([]bool, 2*n),
		dual:    make([]float64, 2*n),
		slack:   make([]float64, g.NumEdges()),
		mate:    make([]int, 2*n),
		visited: make([]bool, 2*n),
		eps:     defaultEpsilon,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.maxIterations <= 0 {
		e.maxIterations = (n+1)*(n+1)*(n+1) + 16
	}
	return e
}

func (e *Engine) greater(a, b float64) bool { return a-b > e.eps }
func (e *Engine) nearZero(x float64) bool   { return math.Abs(x) < e.eps }

// SolveMaximumMatching grows an alternating forest from every unmatched
// vertex, ignoring dual costs, and returns the indices of matched edges.
// It never fails.
func (e *Engine) SolveMaximumMatching() []int {
	e.clear()
	e.grow()
	return e.retrieveMatching()
}

// SolveMinimumCostPerfectMatching returns the minimum-cost perfect matching
// (as edge indices) and its total cost, or ErrNoPerfectMatching /
// ErrNumericalFailure.
func (e *Engine) SolveMinimumCostPerfectMatching(cost []float64) ([]int, float64, error) {
	e.clear()
	e.grow()
	if !e.perfect {
		return nil, 0, ErrNoPerfectMatching
	}

	e.clear()
	copy(e.slack, cost)
	e.positiveCosts()

	e.perfect = false
	iterations := 0
	for !e.perfect {
		iterations++
		if iterations > e.maxIterations {
			return nil, 0, fmt.Errorf("%w: exceeded %d primal-dual iterations", ErrNumericalFailure, e.maxIterations)
		}
		e.heuristic()
		e.grow()
		e.updateDualCosts()
		e.reset()
	}

	matched := e.retrieveMatching()

	obj := 0.0
	for _, edgeIdx := range matched {
		obj += cost[edgeIdx]
	}

	dualObj := 0.0
	for i := 0; i < 2*e.n; i++ {
		if i < e.n {
			dualObj += e.dual[i]
		} else if e.blocked[i] {
			dualObj += e.dual[i]
		}
	}
	if math.Abs(obj-dualObj) > e.eps*(1+math.Abs(obj)) {
		return nil, 0, fmt.Errorf("%w: primal objective %g does not match dual objective %g", ErrNumericalFailure, obj, dualObj)
	}

	e.logf("solved minimum cost perfect matching", slog.Float64("objective", obj), slog.Int("iterations", iterations))
	return matched, obj, nil
}

// grow builds an alternating forest rooted at every unmatched outermost
// vertex, exploring tight (unblocked) edges only, augmenting or contracting
// blossoms as they are discovered.
func (e *Engine) grow() {
	e.reset()

	for len(e.forestList) > 0 {
		w := e.outer[e.forestList[0]]
		e.forestList = e.forestList[1:]

		cont := false
		for _, u := range e.deep[w] {
			for _, v := range e.g.AdjList(u) {
				if e.isEdgeBlockedUV(u, v) {
					continue
				}
				if e.label[e.outer[v]] == odd {
					continue
				}
				if e.label[e.outer[v]] != even {
					vm := e.mate[e.outer[v]]

					e.forest[e.outer[v]] = u
					e.label[e.outer[v]] = odd
					e.root[e.outer[v]] = e.root[e.outer[u]]
					e.forest[e.outer[vm]] = v
					e.label[e.outer[vm]] = even
					e.root[e.outer[vm]] = e.root[e.outer[u]]

					if !e.visited[e.outer[vm]] {
						e.forestList = append(e.forestList, vm)
						e.visited[e.outer[vm]] = true
					}
				} else if e.root[e.outer[v]] != e.root[e.outer[u]] {
					e.augment(u, v)
					e.reset()
					cont = true
					break
				} else if e.outer[u] != e.outer[v] {
					b := e.blossom(u, v)
					e.forestList = append([]int{b}, e.forestList...)
					e.visited[b] = true
					cont = true
					break
				}
			}
			if cont {
				break
			}
		}
	}

	e.perfect = true
	for i := 0; i < e.n; i++ {
		if e.mate[e.outer[i]] == -1 {
			e.perfect = false
		}
	}
}

// expand unwinds pseudo-vertex u, restoring a matching through its odd
// circuit. If expandBlocked is false, a blocked blossom is left intact.
func (e *Engine) expand(u int, expandBlocked bool) {
	v := e.outer[e.mate[u]]

	minIndex := e.m
	p, q := -1, -1
	for _, di := range e.deep[u] {
		for _, dj := range e.deep[v] {
			if e.isAdjacent(di, dj) {
				if idx := e.g.EdgeIndex(di, dj); idx < minIndex {
					minIndex = idx
					p, q = di, dj
				}
			}
		}
	}

	e.mate[u] = q
	e.mate[v] = p
	if u < e.n || (e.blocked[u] && !expandBlocked) {
		return
	}

	// Rotate shallow[u] so the sub-blossom containing p is first.
	for i := 0; i < len(e.shallow[u]); i++ {
		si := e.shallow[u][0]
		if containsInt(e.deep[si], p) {
			break
		}
		e.shallow[u] = append(e.shallow[u][1:], si)
	}

	tipSub := e.shallow[u][0]
	e.mate[tipSub] = e.mate[u]
	for i := 1; i+1 < len(e.shallow[u]); i += 2 {
		a, b := e.shallow[u][i], e.shallow[u][i+1]
		e.mate[a] = b
		e.mate[b] = a
	}

	for _, s := range e.shallow[u] {
		e.outer[s] = s
		for _, d := range e.deep[s] {
			e.outer[d] = s
		}
	}
	e.active[u] = false
	e.addFreeBlossomIndex(u)

	for _, s := range append([]int(nil), e.shallow[u]...) {
		e.expand(s, expandBlocked)
	}
}

// augment toggles mates along the alternating path root[u], ..., u, v, ..., root[v].
func (e *Engine) augment(u, v int) {
	p := e.outer[u]
	q := e.outer[v]
	outv := q
	fp := e.forest[p]
	e.mate[p] = q
	e.mate[q] = p
	e.expand(p, false)
	e.expand(q, false)

	for fp != -1 {
		q = e.outer[e.forest[p]]
		p = e.outer[e.forest[q]]
		fp = e.forest[p]

		e.mate[p] = q
		e.mate[q] = p
		e.expand(p, false)
		e.expand(q, false)
	}

	p = outv
	fp = e.forest[p]
	for fp != -1 {
		q = e.outer[e.forest[p]]
		p = e.outer[e.forest[q]]
		fp = e.forest[p]

		e.mate[p] = q
		e.mate[q] = p
		e.expand(p, false)
		e.expand(q, false)
	}
}

// reset drops the forest, destroys unblocked active top-level blossoms, and
// requeues every unmatched outermost vertex as a new forest root.
func (e *Engine) reset() {
	for i := 0; i < 2*e.n; i++ {
		e.forest[i] = -1
		e.root[i] = i

		if i >= e.n && e.active[i] && e.outer[i] == i {
			e.destroyBlossom(i)
		}
	}

	for i := range e.visited {
		e.visited[i] = false
	}
	e.forestList = e.forestList[:0]

	for i := 0; i < e.n; i++ {
		if e.mate[e.outer[i]] == -1 {
			e.label[e.outer[i]] = even
			if !e.visited[e.outer[i]] {
				e.forestList = append(e.forestList, i)
			}
			e.visited[e.outer[i]] = true
		} else {
			e.label[e.outer[i]] = unlabeled
		}
	}
}

// blossom contracts the odd circuit found between u and v, allocating a
// fresh pseudo-vertex tipped at their first common forest ancestor.
func (e *Engine) blossom(u, v int) int {
	t := e.getFreeBlossomIndex()

	isInPath := make([]bool, 2*e.n)

	uu := u
	for uu != -1 {
		isInPath[e.outer[uu]] = true
		uu = e.forest[e.outer[uu]]
	}

	vv := e.outer[v]
	for !isInPath[vv] {
		vv = e.outer[e.forest[vv]]
	}
	e.tip[t] = vv

	var fwd []int
	uu = e.outer[u]
	fwd = append(fwd, uu)
	for uu != e.tip[t] {
		uu = e.outer[e.forest[uu]]
		fwd = append(fwd, uu)
	}
	circuit := make([]int, len(fwd))
	for i, x := range fwd {
		circuit[len(fwd)-1-i] = x
	}

	e.shallow[t] = circuit
	e.deep[t] = nil

	vv = e.outer[v]
	for vv != e.tip[t] {
		e.shallow[t] = append(e.shallow[t], vv)
		vv = e.outer[e.forest[vv]]
	}

	for _, s := range e.shallow[t] {
		e.outer[s] = t
		for _, d := range e.deep[s] {
			e.deep[t] = append(e.deep[t], d)
			e.outer[d] = t
		}
	}

	e.forest[t] = e.forest[e.tip[t]]
	e.label[t] = even
	e.root[t] = e.root[e.tip[t]]
	e.active[t] = true
	e.outer[t] = t
	e.mate[t] = e.mate[e.tip[t]]

	return t
}

// updateDualCosts computes the primal-dual step size and applies it to
// duals and slacks, blocking/unblocking blossoms as their dual crosses zero.
func (e *Engine) updateDualCosts() {
	var e1, e2, e3 float64
	var inite1, inite2, inite3 bool

	for i := 0; i < e.m; i++ {
		u, v := e.g.Edge(i)

		if (e.label[e.outer[u]] == even && e.label[e.outer[v]] == unlabeled) ||
			(e.label[e.outer[v]] == even && e.label[e.outer[u]] == unlabeled) {
			if !inite1 || e.greater(e1, e.slack[i]) {
				e1 = e.slack[i]
				inite1 = true
			}
		} else if e.outer[u] != e.outer[v] && e.label[e.outer[u]] == even && e.label[e.outer[v]] == even {
			if !inite2 || e.greater(e2, e.slack[i]) {
				e2 = e.slack[i]
				inite2 = true
			}
		}
	}
	for i := e.n; i < 2*e.n; i++ {
		if e.active[i] && i == e.outer[i] && e.label[e.outer[i]] == odd {
			if !inite3 || e.greater(e3, e.dual[i]) {
				e3 = e.dual[i]
				inite3 = true
			}
		}
	}

	var step float64
	switch {
	case inite1:
		step = e1
	case inite2:
		step = e2
	case inite3:
		step = e3
	}
	if inite2 && e.greater(step, e2/2.0) {
		step = e2 / 2.0
	}
	if inite3 && e.greater(step, e3) {
		step = e3
	}

	for i := 0; i < 2*e.n; i++ {
		if i != e.outer[i] {
			continue
		}
		if e.active[i] && e.label[e.outer[i]] == even {
			e.dual[i] += step
		} else if e.active[i] && e.label[e.outer[i]] == odd {
			e.dual[i] -= step
		}
	}

	for i := 0; i < e.m; i++ {
		u, v := e.g.Edge(i)
		if e.outer[u] == e.outer[v] {
			continue
		}
		switch {
		case e.label[e.outer[u]] == even && e.label[e.outer[v]] == even:
			e.slack[i] -= 2.0 * step
		case e.label[e.outer[u]] == odd && e.label[e.outer[v]] == odd:
			e.slack[i] += 2.0 * step
		case (e.label[e.outer[v]] == unlabeled && e.label[e.outer[u]] == even) ||
			(e.label[e.outer[u]] == unlabeled && e.label[e.outer[v]] == even):
			e.slack[i] -= step
		case (e.label[e.outer[v]] == unlabeled && e.label[e.outer[u]] == odd) ||
			(e.label[e.outer[u]] == unlabeled && e.label[e.outer[v]] == odd):
			e.slack[i] += step
		}
	}

	for i := e.n; i < 2*e.n; i++ {
		if e.greater(e.dual[i], 0) {
			e.blocked[i] = true
		} else if e.active[i] && e.blocked[i] {
			if e.mate[i] == -1 {
				e.destroyBlossom(i)
			} else {
				e.blocked[i] = false
				e.expand(i, false)
			}
		}
	}
}

func (e *Engine) clear() {
	e.clearBlossomIndices()

	for i := 0; i < 2*e.n; i++ {
		e.outer[i] = i
		if i < e.n {
			e.deep[i] = []int{i}
			e.active[i] = true
		} else {
			e.deep[i] = nil
			e.active[i] = false
		}
		e.shallow[i] = nil
		e.label[i] = unlabeled
		e.forest[i] = -1
		e.root[i] = i
		e.blocked[i] = false
		e.dual[i] = 0
		e.mate[i] = -1
		e.tip[i] = i
	}
	for i := range e.slack {
		e.slack[i] = 0
	}
}

// destroyBlossom recursively tears down pseudo-vertex t.
func (e *Engine) destroyBlossom(t int) {
	if t < e.n || (e.blocked[t] && e.greater(e.dual[t], 0)) {
		return
	}

	for _, s := range e.shallow[t] {
		e.outer[s] = s
		for _, d := range e.deep[s] {
			e.outer[d] = s
		}
		e.destroyBlossom(s)
	}

	e.active[t] = false
	e.blocked[t] = false
	e.addFreeBlossomIndex(t)
	e.mate[t] = -1
}

// heuristic performs a non-decreasing-degree greedy warm-start match over
// tight, unblocked edges. Deterministic given the heap's tie-break.
func (e *Engine) heuristic() {
	degree := make([]int, e.n)
	for i := 0; i < e.m; i++ {
		if e.isEdgeBlocked(i) {
			continue
		}
		u, v := e.g.Edge(i)
		degree[u]++
		degree[v]++
	}

	h := heap.New(e.n)
	for i := 0; i < e.n; i++ {
		_ = h.Insert(float64(degree[i]), i)
	}

	for h.Size() > 0 {
		u := h.DeleteMin()
		if e.mate[e.outer[u]] != -1 {
			continue
		}
		best := -1
		for _, v := range e.g.AdjList(u) {
			if e.isEdgeBlockedUV(u, v) || e.outer[u] == e.outer[v] || e.mate[e.outer[v]] != -1 {
				continue
			}
			if best == -1 || degree[v] < degree[best] {
				best = v
			}
		}
		if best != -1 {
			e.mate[e.outer[u]] = best
			e.mate[e.outer[best]] = u
		}
	}
}

// positiveCosts shifts slacks so every edge cost is non-negative.
func (e *Engine) positiveCosts() {
	minEdge := 0.0
	for i := 0; i < e.m; i++ {
		if e.greater(minEdge-e.slack[i], 0) {
			minEdge = e.slack[i]
		}
	}
	for i := 0; i < e.m; i++ {
		e.slack[i] -= minEdge
	}
}

func (e *Engine) retrieveMatching() []int {
	for i := 0; i < 2*e.n; i++ {
		if e.active[i] && e.mate[i] != -1 && e.outer[i] == i {
			e.expand(i, true)
		}
	}

	var matched []int
	for i := 0; i < e.m; i++ {
		u, v := e.g.Edge(i)
		if e.mate[u] == v {
			matched = append(matched, i)
		}
	}
	return matched
}

func (e *Engine) getFreeBlossomIndex() int {
	i := e.free[len(e.free)-1]
	e.free = e.free[:len(e.free)-1]
	return i
}

func (e *Engine) addFreeBlossomIndex(i int) {
	e.free = append(e.free, i)
}

func (e *Engine) clearBlossomIndices() {
	e.free = e.free[:0]
	for i := e.n; i < 2*e.n; i++ {
		e.addFreeBlossomIndex(i)
	}
}

func (e *Engine) isEdgeBlockedUV(u, v int) bool {
	return e.greater(e.slack[e.g.EdgeIndex(u, v)], 0)
}

func (e *Engine) isEdgeBlocked(edgeIdx int) bool {
	return e.greater(e.slack[edgeIdx], 0)
}

// isAdjacent reports whether u and v are adjacent in the underlying graph
// and the edge between them is not currently blocked by dual costs.
func (e *Engine) isAdjacent(u, v int) bool {
	return e.g.EdgeIndex(u, v) != graph.NoEdge && !e.isEdgeBlockedUV(u, v)
}

func containsInt(xs []int, target int) bool {
	for _, x := range xs {
		if x == target {
			return true
		}
	}
	return false
}

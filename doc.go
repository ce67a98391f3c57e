// Package slc is a single-robot line coverage solver: given a road or
// pipe network and a subset of edges that must be serviced, it computes the
// cheapest closed walk from a depot that services every required edge
// exactly once, deadheading over the rest of the network only as needed to
// stay connected and Eulerian.
//
// The solver is organized as a pipeline of independently testable stages:
//
//	heap/      — addressable binary min-heap that orders vertices by degree
//	             in the matching engine's heuristic warm-start
//	graph/     — dense integer-indexed undirected graph view consumed by
//	             the matching engine
//	matching/  — Edmonds' blossom algorithm and primal-dual minimum-cost
//	             perfect matching over graph.Graph
//	coverage/  — builds the directed service/deadhead multigraph from a
//	             raw core.Graph, a required-edge subset, and a cost oracle
//	costexpr/  — an expr-lang backed EdgeCost oracle for data-driven,
//	             non-Go cost formulas
//	lp/        — the mixed-integer service/deadhead formulation, solved by
//	             LP relaxation and branch-and-bound, with connectivity
//	             repair via matching-based cuts
//	route/     — Hierholzer's algorithm, constructing the final closed walk
//	             from the lp package's solution multigraph
//	slcconfig/ — shared, functional-options solver configuration
//	slc/       — the top-level Solve entry point wiring the above together
//	core/      — the underlying weighted graph primitive (vertices, edges)
//
// The top-level Solve function lives in the slc subpackage; see
// github.com/gowaypoint/slc/slc.
package slc

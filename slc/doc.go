// Package slc is the top-level entry point: given a raw graph, a required
// edge subset, a depot, and a cost oracle, Solve dispatches coverage graph
// construction, LP-based service/deadhead selection with connectivity
// repair, and Eulerian route construction, returning the solution
// multigraph, the ordered route, and the total objective value.
package slc

// Package coverage builds the directed service/deadhead multigraph that the
// LP formulation (package lp) and route constructor (package route) operate
// over, from a raw core.Graph plus a required-edge subset and a pluggable
// EdgeCost oracle.
//
// Every undirected input edge contributes two directed deadhead copies
// (traversable without servicing); required edges additionally contribute
// two directed service copies, mirroring §3's "each required undirected
// segment is represented by two mirrored directed copies; the LP decides at
// most one orientation."
package coverage

// Package graph is the matching engine's dense, integer-indexed view of an
// undirected simple graph.
//
// It is deliberately not core.Graph: core.Graph is the caller-facing,
// string-keyed, mutable, concurrency-safe container for problem input; this
// package is a private, immutable-once-built, array-backed rebuilding
// tailored to what matching.Engine needs on every hot-path step — O(1)
// edge-index lookup by endpoint pair and an O(1) adjacency-matrix probe —
// at the cost of requiring vertices to already be dense integers in [0, n).
package graph

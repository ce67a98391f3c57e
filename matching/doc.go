// Package matching implements maximum-cardinality matching and minimum-cost
// perfect matching on a general (non-bipartite) undirected graph via
// Edmonds' blossom algorithm with primal-dual dual-cost updates.
//
// Engine owns a flat integer index arena over [0, 2n): indices [0, n) name
// the graph's original vertices, indices [n, 2n) are recyclable pseudo-
// vertices standing in for contracted blossoms. Every array (outer, deep,
// shallow, mate, dual, ...) is indexed uniformly across that arena rather
// than through a tree of heap-allocated blossom nodes, so that blossom
// contraction and expansion are pointer-free slice mutations.
//
// An Engine is single-use per Clear cycle and not safe for concurrent use;
// callers own one Engine per solve, matching this module's single-threaded
// execution model.
package matching

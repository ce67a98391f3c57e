// Package core provides the raw, caller-facing graph type for line
// coverage problems: an undirected, weighted, simple Graph over
// string-identified vertices.
//
// A Graph is built with NewGraph(WithWeighted()), populated via
// AddVertex/AddEdge, and handed to coverage.NewCoverageGraph together
// with a required-edge subset and a depot vertex. coverage derives its
// directed service/deadhead model from the Vertices(), Edges(),
// HasVertex(), GetEdge(), and Directed() queries below; nothing else
// in this module reaches into Graph's internals.
//
// Graph is safe for concurrent construction: vertices and edges+
// adjacency are guarded by independent sync.RWMutex locks so that
// large graphs can be assembled from multiple goroutines.
//
// Errors:
//
//	ErrEmptyVertexID       - vertex ID is the empty string.
//	ErrEdgeNotFound        - requested edge does not exist.
//	ErrBadWeight           - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed      - self-loop (from == to) attempted.
//	ErrMultiEdgeNotAllowed - a second edge attempted between the same endpoints.
package core

// Package route synthesizes the final closed walk from the lp package's
// solution multigraph: Hierholzer's algorithm, adapted from an undirected
// multigraph walk into a directed one, splicing sub-cycles into the primary
// walk at their shared vertex until every selected edge copy is consumed.
package route

// Package costexpr implements a coverage.EdgeCost oracle backed by
// user-supplied expr-lang expressions, so callers can swap cost models at
// configuration time instead of recompiling a Go cost function.
//
// Each expression is compiled once and evaluated against a small struct
// environment describing the edge being priced, with the fields ID, From,
// To, Weight, and Direction ("forward" or "reverse").
package costexpr

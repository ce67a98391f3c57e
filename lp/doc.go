// Package lp builds and solves the mixed-integer program that selects
// which orientation services each required edge and how many deadhead
// traversals glue the tour together, then repairs connectivity by adding
// cut rows and re-solving until the induced subgraph is connected.
//
// The public Solver exposes the black-box adapter contract of §6:
// AddColumn/AddRow build the model incrementally, Solve dispatches to a
// gonum simplex relaxation wrapped in a small branch-and-bound loop for the
// binary/integer columns, and Value/ObjectiveValue read back the result.
// Solver owns its backend state for the duration of one Solve call, mirroring
// the acquire-in-constructor/release-on-destruction discipline of a native
// LP handle even though gonum's solver has no handle to release.
package lp

// Package slc_test provides a runnable, deterministic example that
// demonstrates solving single-robot line coverage with gowaypoint/slc.
//
// Design goals:
//   - Deterministic: unit costs on a triangle graph, identical output on CI.
//   - Minimal dependencies: the cost oracle is a small local type.
package slc_test

import (
	"fmt"

	"github.com/gowaypoint/slc/core"
	"github.com/gowaypoint/slc/slc"
)

// unitCost services and deadheads every edge at cost 1 in either direction.
type unitCost struct{}

func (unitCost) ServiceCost(*core.Edge) (fwd, rev float64)   { return 1, 1 }
func (unitCost) DeadheadCost(*core.Edge) (fwd, rev float64) { return 1, 1 }

// Example_triangle covers a 3-vertex, 3-edge cycle where every edge requires
// service: the cheapest closed walk from the depot services all three edges
// once each, for a total cost of 3.
func Example_triangle() {
	g := core.NewGraph(core.WithWeighted())
	for _, id := range []string{"A", "B", "C"} {
		if err := g.AddVertex(id); err != nil {
			panic(err)
		}
	}

	var required []string
	for _, uv := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		id, err := g.AddEdge(uv[0], uv[1], 1)
		if err != nil {
			panic(err)
		}
		required = append(required, id)
	}

	result, err := slc.Solve(slc.Request{
		Graph:           g,
		RequiredEdgeIDs: required,
		Depot:           "A",
		Cost:            unitCost{},
	})
	if err != nil {
		panic(err)
	}

	fmt.Printf("objective=%.0f steps=%d\n", result.Objective, len(result.Route))
	// Output:
	// objective=3 steps=3
}

package coverage

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/gowaypoint/slc/core"
	"github.com/gowaypoint/slc/slcerr"
)

var validate = validator.New()

// Input is the raw, caller-facing description of a line-coverage problem:
// an undirected weighted graph, the subset of its edges that must be
// serviced, a depot vertex, and a cost oracle.
type Input struct {
	Graph           *core.Graph `validate:"required"`
	RequiredEdgeIDs []string    `validate:"required,min=1,dive,required"`
	Depot           string      `validate:"required"`
	Cost            EdgeCost    `validate:"required"`
}

// Validate runs struct-tag validation and the semantic checks that tags
// alone cannot express (depot exists, required edge ids exist and are
// distinct, the underlying graph is undirected). Whether the graph was
// built with core.WithWeighted is not checked.
func (in Input) Validate() error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %s", slcerr.ErrInvalidInput, err)
	}

	if in.Graph.Directed() {
		return fmt.Errorf("%w: coverage graph requires an undirected input graph", slcerr.ErrInvalidInput)
	}
	if !in.Graph.HasVertex(in.Depot) {
		return fmt.Errorf("%w: depot vertex %q not found in graph", slcerr.ErrInvalidInput, in.Depot)
	}

	seen := make(map[string]struct{}, len(in.RequiredEdgeIDs))
	for _, id := range in.RequiredEdgeIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: required edge id %q listed more than once", slcerr.ErrInvalidInput, id)
		}
		seen[id] = struct{}{}
		if _, err := in.Graph.GetEdge(id); err != nil {
			return fmt.Errorf("%w: required edge id %q not found in graph", slcerr.ErrInvalidInput, id)
		}
	}

	return nil
}

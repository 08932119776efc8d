// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Constructor contract and the BuildGraph entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/indset/core"
)

const methodBuildGraph = "BuildGraph"

// Constructor appends one topology to g using cfg.
// Implementations validate their parameters before mutating g.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph and applies cons in order.
// The first failing constructor aborts the build; its error is returned
// wrapped with the constructor position.
//
// Complexity: sum of the constructors' costs.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	var (
		cfg = newBuilderConfig(bopts...)
		g   = core.NewGraph(0)
		i   int
		c   Constructor
		err error
	)
	for i, c = range cons {
		if c == nil {
			continue
		}
		if err = c(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: constructor #%d: %w", methodBuildGraph, i, err)
		}
	}

	return g, nil
}

// appendVertices grows g by n isolated vertices and returns the first new id.
// The total may not exceed core.MaxVertices.
func appendVertices(g *core.Graph, n int) (int, error) {
	base := g.VertexCount()
	if n > core.MaxVertices-base {
		return 0, fmt.Errorf("builder: %d+%d vertices > max=%d: %w", base, n, core.MaxVertices, ErrTooManyVertices)
	}
	var i int
	for i = 0; i < n; i++ {
		g.AddVertex()
	}

	return base, nil
}

// link adds u–v and tags failures with the constructor name.
func link(g *core.Graph, method string, u, v int) error {
	if err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %v: %w", method, u, v, err, ErrConstructFailed)
	}

	return nil
}

// checkMin validates a size parameter against the family minimum.
func checkMin(method, name string, got, minimum int) error {
	if got < minimum {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, minimum, ErrTooFewVertices)
	}

	return nil
}

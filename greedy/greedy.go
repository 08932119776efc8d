// Package greedy builds one maximal independent set with a single
// degree-ordered sweep.
//
// Algorithm:
//
//  1. Order vertices ascending by degree, ties by id (core.Graph.DegreeOrder).
//  2. Sweep once: an unvisited vertex is selected and its neighbors are
//     marked visited, so they can no longer be selected.
//
// Every unselected vertex ends up adjacent to a selected one, so the result
// is always maximal. It is not necessarily maximum: low-degree-first is a
// heuristic.
//
// Complexity: O(V log V + E) time, O(V) memory.
package greedy

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/indset/core"
)

// ErrNilGraph is returned when a nil *core.Graph is passed to Construct.
var ErrNilGraph = errors.New("greedy: graph is nil")

// Result is the outcome of Construct.
type Result struct {
	// Set is the selected maximal independent set, ascending.
	Set []int

	// Order lists the selected vertices in selection order.
	Order []int
}

// Construct runs the degree-ordered sweep over g.
func Construct(g *core.Graph) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}

	var (
		order   = g.DegreeOrder()
		visited = bitset.New(uint(len(order)))
		chosen  = bitset.New(uint(len(order)))
		res     = Result{Order: make([]int, 0, len(order))}
		v, w    int
	)
	for _, v = range order {
		if visited.Test(uint(v)) {
			continue
		}
		chosen.Set(uint(v))
		res.Order = append(res.Order, v)
		for _, w = range g.Neighbors(v) {
			visited.Set(uint(w))
		}
	}
	res.Set = core.Members(chosen)

	return res, nil
}

package dfs

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/indset/core"
)

// walker encapsulates state during a traversal.
type walker struct {
	graph   *core.Graph
	opts    Options
	visited *bitset.BitSet
	stack   []int
}

func newWalker(g *core.Graph, opts []Option) *walker {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return &walker{
		graph:   g,
		opts:    o,
		visited: bitset.New(uint(g.VertexCount())),
		stack:   make([]int, 0, 16),
	}
}

// Reach returns the vertices reachable from start in pre-order.
// Neighbors are pushed in reverse so that lower ids are explored first.
func Reach(g *core.Graph, start int, opts ...Option) ([]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasVertex(start) {
		return nil, ErrStartVertexNotFound
	}

	return newWalker(g, opts).walk(start)
}

// Components returns the connected components of g. Each component is
// listed in DFS pre-order from its smallest vertex; components are ordered
// by that smallest vertex.
func Components(g *core.Graph, opts ...Option) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	w := newWalker(g, opts)
	out := make([][]int, 0, 4)
	var v int
	for v = 0; v < g.VertexCount(); v++ {
		if w.visited.Test(uint(v)) {
			continue
		}
		comp, err := w.walk(v)
		if err != nil {
			return out, err
		}
		out = append(out, comp)
	}

	return out, nil
}

// walk runs an iterative DFS from root over unvisited vertices.
func (w *walker) walk(root int) ([]int, error) {
	var (
		order = make([]int, 0, 8)
		nbrs  []int
		v, i  int
	)
	w.stack = append(w.stack[:0], root)
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return order, w.opts.Ctx.Err()
		default:
		}

		// 2. Pop and mark
		v = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		if w.visited.Test(uint(v)) {
			continue
		}
		w.visited.Set(uint(v))
		order = append(order, v)

		// 3. Push unvisited neighbors, highest id first
		nbrs = w.graph.Neighbors(v)
		for i = len(nbrs) - 1; i >= 0; i-- {
			if !w.visited.Test(uint(nbrs[i])) {
				w.stack = append(w.stack, nbrs[i])
			}
		}
	}

	return order, nil
}

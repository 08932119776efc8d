// Package core defines the undirected Graph used by every independent-set
// solver, together with sentinel errors and the NewGraph constructor.
//
// Vertices are dense integer identifiers 0..V-1. Each vertex owns a
// compressed neighbor set (roaring bitmap); solvers never read those sets
// directly but take a frozen Snapshot of dense bit rows instead.
//
// Errors:
//
//	ErrVertexOutOfRange - vertex id is negative or not below MaxVertices.
//	ErrLoopNotAllowed   - self-loop u==v was passed to AddEdge.
package core

import (
	"errors"
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexOutOfRange indicates a negative identifier or one at or past MaxVertices.
	ErrVertexOutOfRange = errors.New("core: vertex out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted. Independent sets
	// are defined over distinct vertices, so loops carry no meaning here.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")
)

// MaxVertices bounds the vertex count. Solvers freeze adjacency into
// V×V bit rows, so ids past this limit are refused rather than allocated.
const MaxVertices = 1 << 16

// Edge is an unordered vertex pair, reported with From < To.
type Edge struct {
	From int
	To   int
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithEdges pre-loads the given pairs when the graph is created.
// Pairs AddEdge would reject (loops, negative ids, ids past MaxVertices)
// are skipped silently; use AddEdge directly when the caller needs the error.
func WithEdges(edges ...Edge) GraphOption {
	return func(g *Graph) {
		var e Edge
		for _, e = range edges {
			_ = g.addEdgeLocked(e.From, e.To)
		}
	}
}

// Graph is an undirected simple graph over vertices 0..V-1.
//
// mu guards n, edgeCount and adj. The adjacency relation is symmetric:
// v ∈ adj[u] ⇔ u ∈ adj[v]. There is no removal operation; once a solver
// has taken its Snapshot the graph may keep growing without affecting it.
type Graph struct {
	mu sync.RWMutex

	n         int               // vertex count
	edgeCount int               // number of unordered edges
	adj       []*roaring.Bitmap // adj[u] = neighbor ids of u
}

// NewGraph creates a Graph with n isolated vertices. n is clamped to
// [0, MaxVertices]; callers reading untrusted sizes check the bound first.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) *Graph {
	if n < 0 {
		n = 0
	}
	if n > MaxVertices {
		n = MaxVertices
	}
	g := &Graph{
		n:   n,
		adj: make([]*roaring.Bitmap, n),
	}
	var i int
	for i = 0; i < n; i++ {
		g.adj[i] = roaring.New()
	}
	// Options run under the write lock so WithEdges can reuse the locked path.
	g.mu.Lock()
	for _, opt := range opts {
		opt(g)
	}
	g.mu.Unlock()

	return g
}

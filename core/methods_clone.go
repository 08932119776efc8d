// File: methods_clone.go
// Role: Cloning graph instances.
// Concurrency:
//   - Read lock for the copy; the source graph is never mutated.

package core

import "github.com/RoaringBitmap/roaring/v2"

// Clone returns a deep copy of the Graph: vertex count, edges and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := &Graph{
		n:         g.n,
		edgeCount: g.edgeCount,
		adj:       make([]*roaring.Bitmap, g.n),
	}
	var i int
	for i = 0; i < g.n; i++ {
		clone.adj[i] = g.adj[i].Clone()
	}

	return clone
}

// CloneEmpty returns a graph with the same vertex count and no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return NewGraph(g.VertexCount())
}

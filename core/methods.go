// Package core: Graph mutation and query methods.
//
// Adjacency is stored as one roaring bitmap per vertex, so HasEdge is a
// single container lookup and Degree is a cached cardinality read.
// All methods take the graph RWMutex; none of them panic on unknown
// vertices, they answer "absent" instead.

package core

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// AddEdge inserts the undirected edge u–v. The call is idempotent: adding
// an existing edge is a no-op. Vertices beyond the current count are added
// on demand, mirroring AddVertex-on-AddEdge semantics.
//
// Returns ErrVertexOutOfRange for negative ids or ids at or past MaxVertices,
// and ErrLoopNotAllowed for u==v.
// Complexity: O(1) amortized (O(k) when k new vertices are appended).
func (g *Graph) AddEdge(u, v int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addEdgeLocked(u, v)
}

// addEdgeLocked is AddEdge without locking; the caller holds g.mu.
func (g *Graph) addEdgeLocked(u, v int) error {
	// 1) Validate identifiers.
	if u < 0 || v < 0 || u >= MaxVertices || v >= MaxVertices {
		return ErrVertexOutOfRange
	}
	// 2) Reject loops.
	if u == v {
		return ErrLoopNotAllowed
	}
	// 3) Grow the vertex set when an endpoint is new.
	if u >= g.n {
		g.growLocked(u + 1)
	}
	if v >= g.n {
		g.growLocked(v + 1)
	}
	// 4) Insert both directions; CheckedAdd reports whether the edge is new.
	if g.adj[u].CheckedAdd(uint32(v)) {
		g.adj[v].Add(uint32(u))
		g.edgeCount++
	}

	return nil
}

// growLocked extends the vertex set to n vertices.
func (g *Graph) growLocked(n int) {
	var i int
	for i = g.n; i < n; i++ {
		g.adj = append(g.adj, roaring.New())
	}
	g.n = n
}

// AddVertex appends one isolated vertex and returns its id.
// Once the graph holds MaxVertices vertices it returns -1 and adds nothing.
// Complexity: O(1) amortized.
func (g *Graph) AddVertex() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.n >= MaxVertices {
		return -1
	}
	g.growLocked(g.n + 1)

	return g.n - 1
}

// HasVertex reports whether v is a vertex of the graph.
func (g *Graph) HasVertex(v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return v >= 0 && v < g.n
}

// HasEdge reports whether u and v are adjacent. Unknown vertices are never adjacent.
// Complexity: O(1) (one bitmap container probe).
func (g *Graph) HasEdge(u, v int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if u < 0 || v < 0 || u >= g.n || v >= g.n {
		return false
	}

	return g.adj[u].Contains(uint32(v))
}

// Neighbors returns the neighbors of v in ascending order.
// A missing vertex yields an empty (non-nil) slice, not an error.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= g.n {
		return []int{}
	}

	return toInts(g.adj[v].ToArray())
}

// NeighborSet returns a copy of the neighbor bitmap of v (empty for a missing vertex).
// Complexity: O(deg(v)).
func (g *Graph) NeighborSet(v int) *roaring.Bitmap {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= g.n {
		return roaring.New()
	}

	return g.adj[v].Clone()
}

// Degree returns the number of neighbors of v (0 for a missing vertex).
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if v < 0 || v >= g.n {
		return 0
	}

	return int(g.adj[v].GetCardinality())
}

// Edges returns every edge once, as (From<To) pairs in lexicographic order.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, 0, g.edgeCount)

	var u int
	for u = 0; u < g.n; u++ {
		it := g.adj[u].Iterator()
		for it.HasNext() {
			w := int(it.Next())
			if w > u {
				out = append(out, Edge{From: u, To: w})
			}
		}
	}

	return out
}

// toInts widens roaring ids to ints.
func toInts(ids []uint32) []int {
	out := make([]int, len(ids))
	var i int
	for i = range ids {
		out[i] = int(ids[i])
	}

	return out
}

// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic read-only facade (counts, vertex listing, degree order).
// Policy:
//   - No algorithms beyond sorting; no hidden state.
//   - Every exported function documents complexity.

package core

import "sort"

// VertexCount returns V, the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// EdgeCount returns E, the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Vertices returns 0..V-1.
// Complexity: O(V).
func (g *Graph) Vertices() []int {
	n := g.VertexCount()
	out := make([]int, n)
	var i int
	for i = 0; i < n; i++ {
		out[i] = i
	}

	return out
}

// DegreeOrder returns all vertices sorted ascending by degree. The sort is
// stable over the natural vertex order, so equal-degree vertices keep
// ascending ids. Low-degree vertices come first because they exclude the
// fewest alternatives when selected.
//
// Complexity: O(V log V).
func (g *Graph) DegreeOrder() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var (
		order = make([]int, g.n)
		deg   = make([]uint64, g.n)
		i     int
	)
	for i = 0; i < g.n; i++ {
		order[i] = i
		deg[i] = g.adj[i].GetCardinality()
	}
	sort.SliceStable(order, func(a, b int) bool {
		return deg[order[a]] < deg[order[b]]
	})

	return order
}

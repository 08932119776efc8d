// Package core provides the undirected simple Graph shared by all
// independent-set solvers in this module.
//
// The Graph G = (V,E) stores:
//
//   - Dense vertex identifiers 0..V-1 (0-based; any 1-based convention is
//     converted at the input boundary, never here).
//   - One compressed neighbor set per vertex (roaring bitmap), kept symmetric:
//     AddEdge(u,v) inserts v into N(u) and u into N(v).
//   - A single sync.RWMutex guarding counts and adjacency.
//
// Why this shape?
//
//   - Constant-time edge probes (HasEdge) and O(1) degrees.
//   - Idempotent AddEdge and auto-growth of the vertex set, so input layers
//     can stream edges without pre-declaring V.
//   - Snapshot() freezes adjacency into dense bit rows; solvers test
//     "v conflicts with the current candidate" with one word-wise
//     intersection instead of a loop over members.
//
// Core Methods:
//
//	NewGraph(n int, opts ...GraphOption) *Graph  // O(n)
//	AddEdge(u, v int) error                      // O(1) amortized
//	AddVertex() int                              // O(1) amortized
//	HasVertex(v int) bool                        // O(1)
//	HasEdge(u, v int) bool                       // O(1)
//	Neighbors(v int) []int                       // O(deg v), sorted, empty for unknown v
//	NeighborSet(v int) *roaring.Bitmap           // O(deg v), copy
//	Degree(v int) int                            // O(1)
//	VertexCount() / EdgeCount() int              // O(1)
//	Vertices() []int / Edges() []Edge            // O(V) / O(V+E)
//	DegreeOrder() []int                          // O(V log V), stable by id
//	IsIndependent(set []int) bool                // O(|set|²)
//	IsMaximal(set []int) bool                    // O(|set|² + V + E)
//	Snapshot() *Snapshot                         // O(V²/64 + E)
//	Clone() / CloneEmpty() *Graph                // O(V+E) / O(V)
//
// There is no removal operation: a graph only grows until it is handed to
// a solver.
//
// Errors:
//
//	ErrVertexOutOfRange - negative (or >2³²-1) vertex id
//	ErrLoopNotAllowed   - AddEdge(v, v)
package core

// File: view.go
// Role: Non-mutating graph views used by the solvers (frozen dense snapshot).
// Determinism:
//   - A Snapshot reflects the graph at the time it was taken; later AddEdge
//     calls do not leak into a running solver.
// Concurrency:
//   - Read lock on the source while copying; the Snapshot itself is immutable
//     by contract and safe for concurrent reads.

package core

import "github.com/bits-and-blooms/bitset"

// Snapshot is an immutable dense view of a Graph: one bit row per vertex.
// Rows are indexed by vertex id; bit w of row u is set iff u–w is an edge.
//
// Dense rows turn "is v adjacent to anything in the candidate?" into one
// word-wise intersection, which is the hot predicate of every solver.
type Snapshot struct {
	n    int
	rows []*bitset.BitSet
}

// Snapshot freezes the current adjacency into dense bit rows.
// Complexity: O(V·⌈V/64⌉ + E) time and space.
func (g *Graph) Snapshot() *Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := &Snapshot{
		n:    g.n,
		rows: make([]*bitset.BitSet, g.n),
	}
	var u int
	for u = 0; u < g.n; u++ {
		row := bitset.New(uint(g.n))
		it := g.adj[u].Iterator()
		for it.HasNext() {
			row.Set(uint(it.Next()))
		}
		s.rows[u] = row
	}

	return s
}

// Len returns the number of vertices in the snapshot.
func (s *Snapshot) Len() int { return s.n }

// NewSet returns an empty bit set sized for this snapshot.
func (s *Snapshot) NewSet() *bitset.BitSet { return bitset.New(uint(s.n)) }

// Adjacent reports whether u–v is an edge; out-of-range ids are never adjacent.
func (s *Snapshot) Adjacent(u, v int) bool {
	if u < 0 || v < 0 || u >= s.n || v >= s.n {
		return false
	}

	return s.rows[u].Test(uint(v))
}

// Degree returns the degree of v in the snapshot (0 when out of range).
func (s *Snapshot) Degree(v int) int {
	if v < 0 || v >= s.n {
		return 0
	}

	return int(s.rows[v].Count())
}

// Compatible reports whether v can join set without creating a conflict,
// i.e. no member of set is a neighbor of v.
// Complexity: O(V/64).
func (s *Snapshot) Compatible(set *bitset.BitSet, v int) bool {
	if v < 0 || v >= s.n {
		return false
	}

	return s.rows[v].IntersectionCardinality(set) == 0
}

// Conflicts reports whether any two members of set are adjacent.
// Complexity: O(|set|·V/64).
func (s *Snapshot) Conflicts(set *bitset.BitSet) bool {
	var (
		i  uint
		ok bool
	)
	for i, ok = set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if int(i) >= s.n {
			break
		}
		if s.rows[i].IntersectionCardinality(set) > 0 {
			return true
		}
	}

	return false
}

// ConflictCount returns the number of adjacent unordered pairs inside set.
// Complexity: O(|set|·V/64).
func (s *Snapshot) ConflictCount(set *bitset.BitSet) int {
	var (
		i     uint
		ok    bool
		twice uint
	)
	for i, ok = set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if int(i) >= s.n {
			break
		}
		twice += s.rows[i].IntersectionCardinality(set)
	}

	// Each conflicting pair was counted from both endpoints.
	return int(twice / 2)
}

// Bits converts a vertex list into a bit set sized for the snapshot.
// Ids outside 0..V-1 are dropped.
func (s *Snapshot) Bits(set []int) *bitset.BitSet {
	bs := bitset.New(uint(s.n))
	var v int
	for _, v = range set {
		if v >= 0 && v < s.n {
			bs.Set(uint(v))
		}
	}

	return bs
}

// Members returns the ids set in bs, ascending.
// Complexity: O(V/64 + |bs|).
func Members(bs *bitset.BitSet) []int {
	out := make([]int, 0, bs.Count())
	var (
		i  uint
		ok bool
	)
	for i, ok = bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		out = append(out, int(i))
	}

	return out
}

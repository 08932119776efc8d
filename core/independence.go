// Package core: independence and maximality predicates.
//
// These are the brute-force oracles every solver result is checked against.
// They work on plain vertex lists so callers outside the solver packages do
// not need to know about bit sets.

package core

// IsIndependent reports whether no two distinct members of set are adjacent.
// The empty set is independent. A member outside 0..V-1 makes the set
// invalid (false). Duplicate members are tolerated.
//
// Complexity: O(|set|²) edge probes.
func (g *Graph) IsIndependent(set []int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.isIndependentLocked(set)
}

func (g *Graph) isIndependentLocked(set []int) bool {
	var i, j int
	for i = 0; i < len(set); i++ {
		if set[i] < 0 || set[i] >= g.n {
			return false
		}
		for j = i + 1; j < len(set); j++ {
			if set[i] == set[j] {
				continue
			}
			if set[j] >= 0 && set[j] < g.n && g.adj[set[i]].Contains(uint32(set[j])) {
				return false
			}
		}
	}

	return true
}

// IsMaximal reports whether set is a maximal independent set: it is
// independent, and every vertex outside it has at least one neighbor inside
// (so no vertex can be added).
//
// Complexity: O(|set|² + V + E).
func (g *Graph) IsMaximal(set []int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.isIndependentLocked(set) {
		return false
	}

	in := make([]bool, g.n)
	var v int
	for _, v = range set {
		in[v] = true
	}

	var (
		u       int
		covered bool
	)
	for u = 0; u < g.n; u++ {
		if in[u] {
			continue
		}
		covered = false
		it := g.adj[u].Iterator()
		for it.HasNext() {
			if in[it.Next()] {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}

	return true
}

// Package exhaustive enumerates the independent sets of a core.Graph by
// time-boxed backtracking and extracts the largest ones found.
//
// Algorithm (Enumerate):
//
//  1. Order vertices ascending by degree (core.Graph.DegreeOrder), so
//     low-degree vertices, which block few others, are tried first.
//  2. DFS over that order with an include-loop: at position i with the
//     current candidate C, record C, then for every j ≥ i whose vertex has
//     no neighbor in C, add it, recurse at j+1, and remove it again.
//     Iterating all j covers the "skip" branch implicitly, so every
//     independent subset is produced exactly once when time allows.
//  3. At every recursive entry the elapsed time since a single monotonic
//     start is compared with Options.Budget, and the context is polled.
//     Exhaustion sets Result.Truncated and unwinds without further work.
//
// Result.Truncated is the caller's only signal that the enumeration is a
// lower bound on the true family of independent sets. Maximum reports it as
// Extraction.Certified == false.
//
// Maximum vs maximal:
//
//   - Maximum(res) returns the sets of largest cardinality among those
//     discovered. These equal the maximum independent sets of the graph
//     only when the enumeration was not truncated.
//   - Maximal(g, res) returns the discovered sets that are maximal in the
//     graph-theoretic sense (no vertex can be added).
//
// Complexity:
//
//   - Time: O(#independent sets · V/64) words touched, at most O(2^V · V/64).
//   - Memory: O(V²/64) for the adjacency snapshot + the recorded sets.
//     Options.MaxSets caps the latter.
package exhaustive

// Package dfs implements depth-first traversal over core.Graph and uses it
// to split a graph into connected components.
//
// Independent sets decompose over components: α(G) is the sum of α over
// the components, and an isolated vertex belongs to every maximum set.
// Callers use Components to summarize a graph before solving it.
//
// Complexity:
//
//   - Time:   O(V + E).
//   - Memory: O(V) for the explicit stack and the visited set.
//
// Options:
//
//   - WithContext(ctx)  allows cancellation via context.Context.
//
// Errors:
//
//   - ErrGraphNil       if g is nil.
//   - context.Canceled  if ctx is done.
package dfs

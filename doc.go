// Package indset finds independent sets in undirected graphs: vertex
// subsets with no edge between any two members.
//
// Three strategies share one graph model:
//
//	Exhaustive  time-boxed backtracking over degree-ordered vertices;
//	            reports the largest sets found and whether the search
//	            completed (only then is the size certified).
//	Greedy      one low-degree-first sweep; always maximal, not always maximum.
//	Genetic     generational GA over vertex-inclusion bit vectors with a
//	            seedable random source; may report "no feasible individual".
//
// Packages:
//
//	core/         Graph (roaring neighbor sets), Snapshot (dense bit rows),
//	              independence and maximality predicates
//	builder/      deterministic generators: path, cycle, star, wheel, grid,
//	              complete, bipartite, G(n,p)
//	dfs/          depth-first reachability and connected components
//	exhaustive/   Enumerate, Maximum, Maximal, FindMaximum
//	greedy/       Construct
//	genetic/      Optimize with FlatPenalty / ConflictPenalty fitness
//	mis/          Solve: one entry point and a normalized Report
//	internal/     config (TOML), graphio (stream + prompts), cli (cobra)
//	cmd/indset/   the command-line tool
//
// Quick ASCII example:
//
//	0───1───2   3
//
// has independent sets {}, {0}, {1}, {2}, {3}, {0,2}, {0,3}, {1,3}, {2,3}
// and {0,2,3}; the maximum is {0,2,3} and {1,3} is maximal but not maximum.
//
// Vertex ids are 0-based everywhere in the library. The command-line tool
// accepts 1-based input and prints 1-based output with --one-based.
//
//	go install github.com/katalvlaran/indset/cmd/indset@latest
package indset

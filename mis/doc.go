// Package mis is the single entry point to the independent-set solvers.
//
// Solve routes a graph to one of three strategies and normalizes the
// outcome into a Report:
//
//	Exhaustive  time-boxed backtracking (package exhaustive), then the
//	            maximum-cardinality sets among those discovered.
//	Greedy      one degree-ordered sweep (package greedy); always maximal.
//	Genetic     generational GA over bit vectors (package genetic).
//
// Every set placed in a Report is re-checked with core.Graph.IsIndependent;
// a failure surfaces as ErrInvalidSolution rather than a wrong answer.
//
// Report flags:
//
//   - Exhaustive: the reported Size is the certified independence number
//     (only for a complete, untruncated enumeration).
//   - Truncated: the enumeration stopped on budget, context or set limit.
//   - Found: a non-empty answer exists. The GA may legitimately report
//     Found=false when no feasible individual appeared.
package mis

// Package genetic searches for large independent sets with a generational
// genetic algorithm over vertex-inclusion bit vectors.
//
// Encoding: an Individual is a bit vector of length V; bit i = 1 selects
// vertex i. Genomes are github.com/bits-and-blooms/bitset values so that
// feasibility is a handful of word-wise intersections against a frozen
// adjacency snapshot.
//
// Fitness policies:
//
//   - FlatPenalty (default): |S| if S is independent, else 0. Every
//     infeasible genome scores the same no matter how many conflicts it has.
//   - ConflictPenalty: max(|S| - conflicts(S), 0), where conflicts counts
//     adjacent pairs inside S. Partial feasibility earns partial credit.
//
// Under both policies a feasible genome scores exactly |S|, and only
// feasible genomes are eligible as the run's best.
//
// One run:
//
//  1. Generation 0: P genomes with every bit uniform from {0,1}.
//  2. For each of G generations, breed P offspring and replace the
//     population entirely (no elitism). Parents A and B come from binary
//     tournaments: two uniform draws with replacement, the strictly fitter
//     wins and a tie keeps the first draw. The child is A[:cut]+B[cut:] for
//     a cut uniform in [0,V), then every child bit flips with probability m.
//  3. The best feasible offspring seen across all generations is reported.
//     Generation 0 is never a candidate for best.
//
// Result.Found == false means no feasible offspring with fitness > 0 ever
// appeared; it is not the same as "the empty set is optimal".
//
// Determinism: all randomness comes from one *rand.Rand (Options.Rand, or a
// source seeded from Options.Seed with 0 mapped to a fixed default). Equal
// seeds give identical runs.
//
// Complexity: O(G · P · V·|S|/64) time for evaluation plus O(G · P · V)
// for crossover and mutation; O(P · V/64) memory.
package genetic

// Package builder provides deterministic generators for the graph families
// used to test and benchmark the independent-set solvers.
//
// A Constructor appends a topology to a *core.Graph. Every constructor
// places its vertices after the ones already present, so chaining several
// constructors in one BuildGraph call yields their disjoint union:
//
//	g, err := builder.BuildGraph(nil, builder.Cycle(5), builder.Path(3))
//	// V = 8: the cycle occupies 0..4, the path 5..7.
//
// Families and their known independence numbers α(G):
//
//	Empty(n)                 α = n
//	Complete(n)              α = 1
//	Path(n)                  α = ⌈n/2⌉
//	Cycle(n)                 α = ⌊n/2⌋
//	Star(n)                  α = n-1 (the leaves)
//	Wheel(n)                 α = ⌊(n-1)/2⌋
//	CompleteBipartite(a, b)  α = max(a, b)
//	Grid(r, c)               α = ⌈r·c/2⌉
//	RandomSparse(n, p)       G(n,p), reproducible via WithSeed
//
// Randomized constructors require a random source; WithSeed and WithRand
// provide one. Deterministic constructors ignore it.
//
// Errors (match with errors.Is):
//
//	ErrTooFewVertices      - size parameter below the family minimum
//	ErrInvalidProbability  - p outside [0,1] or NaN
//	ErrNeedRandSource      - stochastic sampling without an RNG
//	ErrConstructFailed     - a core.Graph mutation failed
package builder

// File: population.go
// Role: Individuals, population initialization and fitness evaluation.

package genetic

import (
	"math/rand"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/indset/core"
)

// Individual is one genome with its cached score.
type Individual struct {
	Genome   *bitset.BitSet
	Fitness  int
	Feasible bool
}

// Population is an ordered, fixed-size slice of individuals.
type Population []Individual

// scorer evaluates genomes against a frozen adjacency snapshot.
type scorer struct {
	snap   *core.Snapshot
	policy Fitness
	evals  int
}

// evaluate fills ind.Fitness and ind.Feasible.
func (sc *scorer) evaluate(ind *Individual) {
	sc.evals++
	selected := int(ind.Genome.Count())
	conflicts := sc.snap.ConflictCount(ind.Genome)
	ind.Feasible = conflicts == 0

	switch sc.policy {
	case ConflictPenalty:
		ind.Fitness = selected - conflicts
		if ind.Fitness < 0 {
			ind.Fitness = 0
		}
	default:
		if ind.Feasible {
			ind.Fitness = selected
		} else {
			ind.Fitness = 0
		}
	}
}

// randomPopulation draws size genomes of length n, each bit uniform.
// Bits are drawn in index order, individual by individual.
func randomPopulation(size, n int, rng *rand.Rand, sc *scorer) Population {
	pop := make(Population, size)
	var i, b int
	for i = 0; i < size; i++ {
		g := bitset.New(uint(n))
		for b = 0; b < n; b++ {
			if rng.Intn(2) == 1 {
				g.Set(uint(b))
			}
		}
		pop[i].Genome = g
		sc.evaluate(&pop[i])
	}

	return pop
}

// tournament draws two indices with replacement; the strictly fitter wins,
// a tie keeps the first draw.
func (pop Population) tournament(rng *rand.Rand) *Individual {
	a := rng.Intn(len(pop))
	b := rng.Intn(len(pop))
	if pop[b].Fitness > pop[a].Fitness {
		return &pop[b]
	}

	return &pop[a]
}

// crossover returns A[:cut] ++ B[cut:] for a cut uniform in [0,n).
func crossover(a, b *bitset.BitSet, n int, rng *rand.Rand) *bitset.BitSet {
	child := a.Clone()
	cut := rng.Intn(n)
	var i uint
	for i = uint(cut); i < uint(n); i++ {
		child.SetTo(i, b.Test(i))
	}

	return child
}

// mutate flips every bit of g independently with probability rate.
func mutate(g *bitset.BitSet, n int, rate float64, rng *rand.Rand) {
	if rate == 0 {
		return
	}
	var i uint
	for i = 0; i < uint(n); i++ {
		if rng.Float64() < rate {
			g.Flip(i)
		}
	}
}

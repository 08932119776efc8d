// SPDX-License-Identifier: MIT
//
// File: optimize.go
// Role: Generational loop with best-offspring tracking.

package genetic

import (
	"fmt"

	"github.com/katalvlaran/indset/core"
)

// Optimize runs the genetic algorithm on g.
//
// Steps:
//  1. Validate options; V == 0 returns Found=false at once.
//  2. Snapshot adjacency, resolve the RNG, draw generation 0.
//  3. Breed G generations of P offspring, tracking the best feasible one.
//
// Errors: ErrNilGraph and the option sentinels (see Options.Validate).
func Optimize(g *core.Graph, opts Options) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}

	n := g.VertexCount()
	if n == 0 {
		return Result{Set: []int{}}, nil
	}

	var (
		rng     = resolveRNG(opts)
		sc      = &scorer{snap: g.Snapshot(), policy: opts.Fitness}
		pop     = randomPopulation(opts.PopulationSize, n, rng, sc)
		next    = make(Population, opts.PopulationSize)
		best    Individual
		gen     int
		bestGen int
		i       int
	)
	for gen = 1; gen <= opts.Generations; gen++ {
		for i = 0; i < opts.PopulationSize; i++ {
			pa := pop.tournament(rng)
			pb := pop.tournament(rng)
			child := crossover(pa.Genome, pb.Genome, n, rng)
			mutate(child, n, opts.MutationRate, rng)

			next[i] = Individual{Genome: child}
			sc.evaluate(&next[i])

			if next[i].Feasible && next[i].Fitness > best.Fitness {
				best = next[i]
				bestGen = gen
				if opts.Logger != nil {
					opts.Logger.Debug("new best", "generation", gen, "size", best.Fitness)
				}
			}
		}
		pop, next = next, pop
	}

	res := Result{Set: []int{}, Evaluations: sc.evals}
	if best.Genome != nil && best.Fitness > 0 {
		res.Found = true
		res.Genome = best.Genome
		res.Set = core.Members(best.Genome)
		res.Fitness = best.Fitness
		res.Generation = bestGen
	}
	if opts.Logger != nil {
		opts.Logger.Debug("genetic run finished",
			"vertices", n, "found", res.Found, "size", res.Fitness,
			"evaluations", res.Evaluations, "fitness", opts.Fitness.String())
	}
	if res.Found && !g.IsIndependent(res.Set) {
		return Result{}, fmt.Errorf("genetic: best set %v is not independent", res.Set)
	}

	return res, nil
}

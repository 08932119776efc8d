package genetic_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indset/builder"
	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/exhaustive"
	"github.com/katalvlaran/indset/genetic"
)

func randomGraph(t *testing.T, n int, p float64, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

func alpha(t *testing.T, g *core.Graph) int {
	t.Helper()
	ext, err := exhaustive.FindMaximum(g, exhaustive.WithBudget(exhaustive.Unbounded))
	require.NoError(t, err)
	require.True(t, ext.Certified)

	return ext.Size
}

func TestOptimize_PathScenario(t *testing.T) {
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	res, err := genetic.Optimize(g, genetic.DefaultOptions())
	require.NoError(t, err)
	require.True(t, res.Found)
	assert.Equal(t, []int{0, 2, 3}, res.Set)
	assert.Equal(t, 3, res.Fitness)
	assert.Equal(t, []int{0, 2, 3}, core.Members(res.Genome))
	assert.GreaterOrEqual(t, res.Generation, 1, "generation 0 is never reported")
	assert.Equal(t, 100*201, res.Evaluations)
}

func TestOptimize_Deterministic(t *testing.T) {
	g := randomGraph(t, 25, 0.2, 3)
	opts := genetic.DefaultOptions()
	opts.Seed = 99
	opts.Generations = 50

	a, err := genetic.Optimize(g, opts)
	require.NoError(t, err)
	b, err := genetic.Optimize(g, opts)
	require.NoError(t, err)
	require.Equal(t, a.Set, b.Set)
	require.Equal(t, a.Generation, b.Generation)

	// An injected source with the same seed reproduces the run too.
	opts.Rand = rand.New(rand.NewSource(99))
	c, err := genetic.Optimize(g, opts)
	require.NoError(t, err)
	require.Equal(t, a.Set, c.Set)
}

func TestOptimize_BoundedByMaximum(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 5; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g := randomGraph(t, 12, 0.3, seed)
			want := alpha(t, g)

			for _, fit := range []genetic.Fitness{genetic.FlatPenalty, genetic.ConflictPenalty} {
				opts := genetic.DefaultOptions()
				opts.Seed = seed
				opts.Fitness = fit

				res, err := genetic.Optimize(g, opts)
				require.NoError(t, err)
				require.True(t, res.Found)
				require.True(t, g.IsIndependent(res.Set))
				require.LessOrEqual(t, res.Fitness, want)
				require.Equal(t, len(res.Set), res.Fitness)
			}
		})
	}
}

func TestOptimize_ReachesOptimumOnSmallGraphs(t *testing.T) {
	// Over several seeded runs on small graphs the optimum must show up.
	var seed int64
	for seed = 1; seed <= 4; seed++ {
		g := randomGraph(t, 10, 0.25, seed)
		want := alpha(t, g)

		var best int
		var run int64
		for run = 1; run <= 5 && best < want; run++ {
			opts := genetic.DefaultOptions()
			opts.Seed = seed*100 + run
			res, err := genetic.Optimize(g, opts)
			require.NoError(t, err)
			if res.Fitness > best {
				best = res.Fitness
			}
		}
		require.Equal(t, want, best, "graph seed %d", seed)
	}
}

func TestOptimize_ConflictPenaltyOnEmptyGraph(t *testing.T) {
	g := core.NewGraph(16)
	opts := genetic.DefaultOptions()
	opts.Fitness = genetic.ConflictPenalty
	opts.Seed = 5

	res, err := genetic.Optimize(g, opts)
	require.NoError(t, err)
	require.True(t, res.Found)
	require.Equal(t, 16, res.Fitness, "with no edges every genome is feasible")
}

func TestOptimize_NotFound(t *testing.T) {
	// No generations: only generation 0 exists, which is never tracked.
	g := core.NewGraph(5)
	opts := genetic.DefaultOptions()
	opts.Generations = 0

	res, err := genetic.Optimize(g, opts)
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Empty(t, res.Set)
	require.Nil(t, res.Genome)
	require.Equal(t, opts.PopulationSize, res.Evaluations)

	// Zero vertices: nothing to select.
	res, err = genetic.Optimize(core.NewGraph(0), genetic.DefaultOptions())
	require.NoError(t, err)
	require.False(t, res.Found)
	require.Equal(t, 0, res.Evaluations)
}

func TestOptions_Validate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*genetic.Options)
		want error
	}{
		{"population 0", func(o *genetic.Options) { o.PopulationSize = 0 }, genetic.ErrInvalidPopulation},
		{"negative generations", func(o *genetic.Options) { o.Generations = -1 }, genetic.ErrInvalidGenerations},
		{"mutation > 1", func(o *genetic.Options) { o.MutationRate = 1.5 }, genetic.ErrInvalidMutationRate},
		{"mutation < 0", func(o *genetic.Options) { o.MutationRate = -0.1 }, genetic.ErrInvalidMutationRate},
		{"mutation NaN", func(o *genetic.Options) { o.MutationRate = math.NaN() }, genetic.ErrInvalidMutationRate},
		{"unknown fitness", func(o *genetic.Options) { o.Fitness = genetic.Fitness(7) }, genetic.ErrUnknownFitness},
	}
	g := core.NewGraph(3)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := genetic.DefaultOptions()
			tc.mod(&opts)
			require.ErrorIs(t, opts.Validate(), tc.want)

			_, err := genetic.Optimize(g, opts)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := genetic.Optimize(nil, genetic.DefaultOptions())
	require.ErrorIs(t, err, genetic.ErrNilGraph)
}

func TestParseFitness(t *testing.T) {
	f, err := genetic.ParseFitness("Conflict")
	require.NoError(t, err)
	require.Equal(t, genetic.ConflictPenalty, f)
	require.Equal(t, "conflict", f.String())

	f, err = genetic.ParseFitness("")
	require.NoError(t, err)
	require.Equal(t, genetic.FlatPenalty, f)

	_, err = genetic.ParseFitness("gradient")
	require.ErrorIs(t, err, genetic.ErrUnknownFitness)
}

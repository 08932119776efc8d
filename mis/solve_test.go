package mis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/indset/builder"
	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/exhaustive"
	"github.com/katalvlaran/indset/genetic"
	"github.com/katalvlaran/indset/mis"
)

type SolveSuite struct {
	suite.Suite
	g   *core.Graph
	ctx context.Context
}

func (s *SolveSuite) SetupTest() {
	s.g = core.NewGraph(4)
	s.Require().NoError(s.g.AddEdge(0, 1))
	s.Require().NoError(s.g.AddEdge(1, 2))
	s.ctx = context.Background()
}

func (s *SolveSuite) TestEveryAlgorithmFindsTheScenarioMaximum() {
	for _, algo := range mis.Algorithms {
		opts := mis.DefaultOptions()
		opts.Algo = algo

		rep, err := mis.Solve(s.ctx, s.g, opts)
		s.Require().NoError(err, algo.String())
		s.Equal(algo, rep.Algo)
		s.True(rep.Found)
		s.Equal([]int{0, 2, 3}, rep.Best, algo.String())
		s.Equal(3, rep.Size)
	}
}

func (s *SolveSuite) TestExhaustiveReport() {
	opts := mis.DefaultOptions()
	opts.Budget = exhaustive.Unbounded

	rep, err := mis.SolveAll(s.ctx, s.g, opts)
	s.Require().NoError(err)
	s.True(rep.Exhaustive)
	s.False(rep.Truncated)
	s.Equal(10, rep.Enumerated)
	s.Len(rep.All, 10)
	s.Equal([][]int{{0, 2, 3}, {1, 3}}, rep.Maximal)

	plain, err := mis.Solve(s.ctx, s.g, opts)
	s.Require().NoError(err)
	s.Nil(plain.All, "Solve keeps only the maximum sets")
	s.Nil(plain.Maximal)
}

func (s *SolveSuite) TestExhaustiveZeroBudget() {
	opts := mis.DefaultOptions()
	opts.Budget = 0

	rep, err := mis.Solve(s.ctx, s.g, opts)
	s.Require().NoError(err)
	s.True(rep.Truncated)
	s.False(rep.Exhaustive)
	s.False(rep.Found)
	s.Empty(rep.Best)
}

func (s *SolveSuite) TestCancelledContextTruncates() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	rep, err := mis.Solve(ctx, s.g, mis.DefaultOptions())
	s.Require().NoError(err)
	s.True(rep.Truncated)
}

func (s *SolveSuite) TestGeneticNotFound() {
	opts := mis.DefaultOptions()
	opts.Algo = mis.Genetic
	opts.Genetic.Generations = 0

	rep, err := mis.Solve(s.ctx, s.g, opts)
	s.Require().NoError(err)
	s.False(rep.Found)
	s.Empty(rep.Sets)
	s.Equal(0, rep.Size)
}

func (s *SolveSuite) TestErrors() {
	_, err := mis.Solve(s.ctx, nil, mis.DefaultOptions())
	s.ErrorIs(err, mis.ErrNilGraph)

	opts := mis.DefaultOptions()
	opts.Algo = mis.Algorithm(9)
	_, err = mis.Solve(s.ctx, s.g, opts)
	s.ErrorIs(err, mis.ErrUnsupportedAlgorithm)

	opts = mis.DefaultOptions()
	opts.Algo = mis.Genetic
	opts.Genetic.PopulationSize = 0
	_, err = mis.Solve(s.ctx, s.g, opts)
	s.ErrorIs(err, genetic.ErrInvalidPopulation)
}

func TestSolveSuite(t *testing.T) {
	suite.Run(t, new(SolveSuite))
}

func TestSolve_AllSetsIndependentOnRandomGraphs(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 4; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)},
			builder.RandomSparse(14, 0.25))
		require.NoError(t, err)

		var exact int
		for _, algo := range mis.Algorithms {
			opts := mis.DefaultOptions()
			opts.Algo = algo
			opts.Budget = 5 * time.Second
			opts.Genetic.Seed = seed

			rep, err := mis.Solve(context.Background(), g, opts)
			require.NoError(t, err)
			for _, set := range rep.Sets {
				require.True(t, g.IsIndependent(set))
			}
			if algo == mis.Exhaustive {
				require.True(t, rep.Exhaustive)
				exact = rep.Size
			} else {
				require.LessOrEqual(t, rep.Size, exact, "%s beats a certified maximum", algo)
			}
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]mis.Algorithm{
		"exhaustive":   mis.Exhaustive,
		"Backtracking": mis.Exhaustive,
		"greedy":       mis.Greedy,
		" GA ":         mis.Genetic,
		"genetic":      mis.Genetic,
	}
	for in, want := range cases {
		got, err := mis.ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got)
	}

	_, err := mis.ParseAlgorithm("annealing")
	require.ErrorIs(t, err, mis.ErrUnsupportedAlgorithm)
	require.Equal(t, "Algorithm(7)", mis.Algorithm(7).String())
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/indset/genetic"
	"github.com/katalvlaran/indset/mis"
)

// exhaustiveCommand enumerates independent sets within a time budget.
func (c *CLI) exhaustiveCommand() *cobra.Command {
	var (
		budget  time.Duration
		maxSets int
		all     bool
	)

	cmd := &cobra.Command{
		Use:   "exhaustive",
		Short: "Enumerate independent sets by backtracking and report the largest",
		Long: `Enumerate independent sets depth-first over vertices ordered by degree.

The search stops when --budget elapses. A stopped search reports the largest
sets found so far, marked as truncated: they are lower bounds, not a
certified maximum.`,
		Example: `  # Cycle on 8 vertices, 2 second budget
  indset exhaustive --generate cycle:8 --budget 2s

  # Every independent set of a graph read from a file
  indset exhaustive --input graph.txt --all`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.misOptions(mis.Exhaustive)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("budget") {
				opts.Budget = budget
			}
			if cmd.Flags().Changed("max-sets") {
				opts.MaxSets = maxSets
			}

			return c.solve(cmd.Context(), []mis.Options{opts}, all)
		},
	}

	cmd.Flags().DurationVar(&budget, "budget", c.cfg.Exhaustive.Budget.Duration, "wall-clock budget for the search")
	cmd.Flags().IntVar(&maxSets, "max-sets", 0, "stop after recording this many sets (0 = no limit)")
	cmd.Flags().BoolVar(&all, "all", false, "also print every enumerated set and the maximal ones")

	return cmd
}

// greedyCommand runs the degree-ordered sweep.
func (c *CLI) greedyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "greedy",
		Short: "Build one maximal independent set with a degree-ordered sweep",
		Example: `  indset greedy --generate grid:4:5
  printf '4 2\n1 2\n2 3\n' | indset greedy --one-based`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.misOptions(mis.Greedy)
			if err != nil {
				return err
			}

			return c.solve(cmd.Context(), []mis.Options{opts}, false)
		},
	}
}

// geneticCommand runs the genetic optimizer.
func (c *CLI) geneticCommand() *cobra.Command {
	var (
		population  int
		generations int
		mutation    float64
		fitness     string
	)

	cmd := &cobra.Command{
		Use:   "genetic",
		Short: "Search for a large independent set with a genetic algorithm",
		Long: `Evolve bit-vector individuals (bit i selects vertex i) with binary
tournament selection, single-point crossover and per-bit mutation.

--fitness flat scores any non-independent individual 0; --fitness conflict
subtracts one point per conflicting pair instead.`,
		Example: `  indset genetic --generate random:40:0.1 --seed 7
  indset genetic --input graph.txt --population 200 --generations 500 --fitness conflict`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := c.misOptions(mis.Genetic)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("population") {
				opts.Genetic.PopulationSize = population
			}
			if flags.Changed("generations") {
				opts.Genetic.Generations = generations
			}
			if flags.Changed("mutation") {
				opts.Genetic.MutationRate = mutation
			}
			if flags.Changed("fitness") {
				fit, err := genetic.ParseFitness(fitness)
				if err != nil {
					return err
				}
				opts.Genetic.Fitness = fit
			}

			return c.solve(cmd.Context(), []mis.Options{opts}, false)
		},
	}

	cmd.Flags().IntVar(&population, "population", genetic.DefaultPopulationSize, "individuals per generation")
	cmd.Flags().IntVar(&generations, "generations", genetic.DefaultGenerations, "number of generations")
	cmd.Flags().Float64Var(&mutation, "mutation", genetic.DefaultMutationRate, "per-bit mutation probability")
	cmd.Flags().StringVar(&fitness, "fitness", genetic.FlatPenalty.String(), "fitness policy: flat or conflict")

	return cmd
}

// compareCommand runs every solver on the same graph.
func (c *CLI) compareCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "compare",
		Short:   "Run exhaustive, greedy and genetic on the same graph",
		Example: `  indset compare --generate random:25:0.2 --format json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			runs := make([]mis.Options, 0, len(mis.Algorithms))
			for _, algo := range mis.Algorithms {
				opts, err := c.misOptions(algo)
				if err != nil {
					return err
				}
				runs = append(runs, opts)
			}

			return c.solve(cmd.Context(), runs, false)
		},
	}
}

// versionCommand prints build information.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(_ *cobra.Command, _ []string) error {
			c.printKeyValue("version", version)
			c.printKeyValue("commit", commit)
			c.printKeyValue("built", date)

			return nil
		},
	}
}

// misOptions builds solver options from the loaded configuration.
func (c *CLI) misOptions(algo mis.Algorithm) (mis.Options, error) {
	gen, err := c.cfg.GeneticOptions()
	if err != nil {
		return mis.Options{}, fmt.Errorf("%s: %w", algo, err)
	}
	opts := mis.DefaultOptions()
	opts.Algo = algo
	opts.Budget = c.cfg.Exhaustive.Budget.Duration
	opts.MaxSets = c.cfg.Exhaustive.MaxSets
	opts.Genetic = gen

	return opts, nil
}

// solve loads the graph once, runs every option set and renders the reports.
func (c *CLI) solve(ctx context.Context, runs []mis.Options, all bool) error {
	logger := loggerFromContext(ctx)

	g, err := c.loadGraph(ctx)
	if err != nil {
		return err
	}

	reps := make([]mis.Report, 0, len(runs))
	for _, opts := range runs {
		opts.Logger = logger
		p := newProgress(logger)

		var rep mis.Report
		if all {
			rep, err = mis.SolveAll(ctx, g, opts)
		} else {
			rep, err = mis.Solve(ctx, g, opts)
		}
		if err != nil {
			return fmt.Errorf("%s: %w", opts.Algo, err)
		}
		p.done(fmt.Sprintf("%s finished, size %d", opts.Algo, rep.Size))
		reps = append(reps, rep)
	}

	return c.render(c.newRunView(g, reps))
}

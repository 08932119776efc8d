// Package cli implements the indset command-line interface.
//
// # Commands
//
//   - exhaustive: time-boxed enumeration and the largest sets found
//   - greedy: one degree-ordered maximal independent set
//   - genetic: genetic search for a large independent set
//   - compare: all three on the same graph
//   - version: build information
//
// # Input
//
// The graph comes from --generate (a builder family such as "cycle:8"),
// from --input FILE, or from stdin. When stdin is a terminal the vertex
// count, edge count and edges are asked for interactively.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// carries a per-run id and is passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/indset/internal/config"
	"github.com/katalvlaran/indset/internal/graphio"
)

const appName = "indset"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the build information printed by the version command.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	verbose    bool
	oneBased   bool
	format     string
	input      string
	generate   string
	seed       int64
}

// register binds the persistent flags to f.
func (f *globalFlags) register(pf *pflag.FlagSet) {
	pf.StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	pf.BoolVar(&f.oneBased, "one-based", false, "vertex identifiers are 1..V instead of 0..V-1")
	pf.StringVarP(&f.format, "format", "f", config.FormatText, "output format: text, json or yaml")
	pf.StringVarP(&f.input, "input", "i", "", "graph file (\"-\" for stdin)")
	pf.StringVarP(&f.generate, "generate", "g", "", "generate a graph, e.g. cycle:8 or random:30:0.2")
	pf.Int64Var(&f.seed, "seed", 0, "random seed for generators and the genetic algorithm (0 = fixed default)")
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	in    io.Reader
	out   io.Writer
	asker graphio.Asker

	flags globalFlags
	cfg   config.Config
	runID string
}

// New creates a CLI reading stdin, writing results to stdout and logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		in:     os.Stdin,
		out:    os.Stdout,
		asker:  graphio.SurveyAsker{},
		cfg:    config.Default(),
	}
}

// SetIO redirects graph input and result output.
func (c *CLI) SetIO(in io.Reader, out io.Writer) {
	c.in = in
	c.out = out
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "indset finds independent sets in undirected graphs",
		Long: `indset computes independent sets (vertex subsets with no edge inside)
with three strategies: time-boxed exhaustive backtracking, a degree-ordered
greedy sweep, and a genetic algorithm.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))

	c.flags.register(root.PersistentFlags())

	root.AddCommand(c.exhaustiveCommand())
	root.AddCommand(c.greedyCommand())
	root.AddCommand(c.geneticCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// setup loads the config, lets changed flags override it, and prepares the
// run-scoped logger.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.flags.verbose {
		c.SetLogLevel(LogDebug)
	}

	cfg, err := config.Load(c.flags.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = c.flags.format
	}
	if flags.Changed("one-based") {
		cfg.Output.OneBased = c.flags.oneBased
	}
	if flags.Changed("seed") {
		cfg.Genetic.Seed = c.flags.seed
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	c.runID = uuid.NewString()
	logger := c.Logger.With("run", c.runID[:8])
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, logger))
	logger.Debug("configuration loaded", "format", cfg.Output.Format, "one_based", cfg.Output.OneBased)

	return nil
}

// base returns the identifier convention in effect.
func (c *CLI) base() graphio.Base {
	if c.cfg.Output.OneBased {
		return graphio.OneBased
	}

	return graphio.ZeroBased
}

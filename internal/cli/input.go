package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/internal/graphio"
)

// loadGraph resolves the graph source: --generate, --input, or stdin
// (interactive when stdin is a terminal).
func (c *CLI) loadGraph(ctx context.Context) (*core.Graph, error) {
	logger := loggerFromContext(ctx)
	opts := graphio.Options{Base: c.base(), Logger: logger}

	var (
		g   *core.Graph
		st  graphio.Stats
		err error
		src string
	)
	switch {
	case c.flags.generate != "":
		src = c.flags.generate
		g, err = graphio.Generate(c.flags.generate, c.cfg.Genetic.Seed)

	case c.flags.input != "" && c.flags.input != "-":
		src = c.flags.input
		var f *os.File
		if f, err = os.Open(c.flags.input); err != nil {
			return nil, fmt.Errorf("open graph: %w", err)
		}
		defer f.Close()
		g, st, err = graphio.Read(f, opts)

	case c.stdinIsTerminal():
		src = "prompt"
		g, st, err = graphio.Interactive(c.asker, opts)

	default:
		src = "stdin"
		g, st, err = graphio.Read(c.in, opts)
	}
	if err != nil {
		return nil, err
	}

	logger.Debug("graph loaded", "source", src,
		"vertices", g.VertexCount(), "edges", g.EdgeCount(), "rejected", st.Rejected)

	return g, nil
}

func (c *CLI) stdinIsTerminal() bool {
	f, ok := c.in.(*os.File)

	return ok && graphio.IsInteractive(f)
}

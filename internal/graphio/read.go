package graphio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/indset/core"
)

// Stats summarizes what a reader accepted.
type Stats struct {
	Vertices int
	Edges    int
	Rejected int
}

// Options configures Read and Interactive.
type Options struct {
	// Base is the identifier convention of the input.
	Base Base

	// Logger receives warnings for rejected edges. Nil is silent.
	Logger *log.Logger
}

// Read parses a "V E" header followed by E valid edges from r.
// Lines past the E-th valid edge are ignored.
func Read(r io.Reader, opts Options) (*core.Graph, Stats, error) {
	var (
		sc    = bufio.NewScanner(r)
		st    Stats
		g     *core.Graph
		want  int
		line  string
		lineN int
	)

	// 1) Header.
	for g == nil && sc.Scan() {
		lineN++
		if line = strings.TrimSpace(sc.Text()); skip(line) {
			continue
		}
		n, e, err := parseHeader(line)
		if err != nil {
			return nil, st, fmt.Errorf("line %d: %w", lineN, err)
		}
		g = core.NewGraph(n)
		st.Vertices, want = n, e
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("graphio: read: %w", err)
	}
	if g == nil {
		return nil, st, fmt.Errorf("graphio: empty input: %w", ErrMalformedHeader)
	}

	// 2) Edges until E valid ones were accepted.
	for st.Edges < want && sc.Scan() {
		lineN++
		if line = strings.TrimSpace(sc.Text()); skip(line) {
			continue
		}
		u, v, err := ParseEdge(line, st.Vertices, opts.Base)
		if err != nil {
			st.Rejected++
			if opts.Logger != nil {
				opts.Logger.Warn("edge rejected", "line", lineN, "err", err)
			}
			continue
		}
		if err = g.AddEdge(u, v); err != nil {
			return nil, st, fmt.Errorf("line %d: %w", lineN, err)
		}
		st.Edges++
	}
	if err := sc.Err(); err != nil {
		return nil, st, fmt.Errorf("graphio: read: %w", err)
	}
	if st.Edges < want {
		return nil, st, fmt.Errorf("graphio: got %d of %d edges: %w", st.Edges, want, ErrMissingEdges)
	}

	return g, st, nil
}

// skip reports blank and comment lines.
func skip(line string) bool {
	return line == "" || strings.HasPrefix(line, "#")
}

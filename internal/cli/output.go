package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/dfs"
	"github.com/katalvlaran/indset/internal/config"
	"github.com/katalvlaran/indset/internal/graphio"
	"github.com/katalvlaran/indset/mis"
)

// runView is the serialized outcome of one command.
type runView struct {
	RunID      string       `json:"run_id" yaml:"run_id"`
	Vertices   int          `json:"vertices" yaml:"vertices"`
	Edges      int          `json:"edges" yaml:"edges"`
	Components int          `json:"components" yaml:"components"`
	Base       int          `json:"base" yaml:"base"`
	Results    []reportView `json:"results" yaml:"results"`
}

// reportView is one solver's report with identifiers in the output base.
type reportView struct {
	Algorithm  string  `json:"algorithm" yaml:"algorithm"`
	Found      bool    `json:"found" yaml:"found"`
	Size       int     `json:"size" yaml:"size"`
	Best       []int   `json:"best" yaml:"best"`
	Sets       [][]int `json:"sets" yaml:"sets"`
	Certified  bool    `json:"certified" yaml:"certified"`
	Truncated  bool    `json:"truncated" yaml:"truncated"`
	Enumerated int     `json:"enumerated,omitempty" yaml:"enumerated,omitempty"`
	Maximal    [][]int `json:"maximal,omitempty" yaml:"maximal,omitempty"`
	All        [][]int `json:"all,omitempty" yaml:"all,omitempty"`
	Generation int     `json:"generation,omitempty" yaml:"generation,omitempty"`
	ElapsedMS  float64 `json:"elapsed_ms" yaml:"elapsed_ms"`
}

func (c *CLI) newRunView(g *core.Graph, reps []mis.Report) runView {
	b := c.base()
	rv := runView{
		RunID:    c.runID,
		Vertices: g.VertexCount(),
		Edges:    g.EdgeCount(),
		Base:     b.External(0),
		Results:  make([]reportView, len(reps)),
	}
	if comps, err := dfs.Components(g); err == nil {
		rv.Components = len(comps)
	}
	for i, r := range reps {
		rv.Results[i] = reportView{
			Algorithm:  r.Algo.String(),
			Found:      r.Found,
			Size:       r.Size,
			Best:       b.ExternalSet(r.Best),
			Sets:       externalSets(b, r.Sets),
			Certified:  r.Exhaustive,
			Truncated:  r.Truncated,
			Enumerated: r.Enumerated,
			Maximal:    externalSets(b, r.Maximal),
			All:        externalSets(b, r.All),
			Generation: r.Generation,
			ElapsedMS:  float64(r.Elapsed) / float64(time.Millisecond),
		}
	}

	return rv
}

func externalSets(b graphio.Base, sets [][]int) [][]int {
	if sets == nil {
		return nil
	}
	out := make([][]int, len(sets))
	for i, s := range sets {
		out[i] = b.ExternalSet(s)
	}

	return out
}

// render writes rv in the configured format.
func (c *CLI) render(rv runView) error {
	switch c.cfg.Output.Format {
	case config.FormatJSON:
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")

		return enc.Encode(rv)
	case config.FormatYAML:
		enc := yaml.NewEncoder(c.out)
		enc.SetIndent(2)
		if err := enc.Encode(rv); err != nil {
			return err
		}

		return enc.Close()
	default:
		c.renderText(rv)

		return nil
	}
}

func (c *CLI) renderText(rv runView) {
	c.printTitle("Graph: %s vertices, %s edges, %s components",
		humanize.Comma(int64(rv.Vertices)), humanize.Comma(int64(rv.Edges)), humanize.Comma(int64(rv.Components)))

	for _, r := range rv.Results {
		switch {
		case r.Found && r.Certified:
			c.printSuccess("%s: maximum independent set of size %s", r.Algorithm, number(fmt.Sprint(r.Size)))
		case r.Found:
			c.printSuccess("%s: independent set of size %s", r.Algorithm, number(fmt.Sprint(r.Size)))
		case r.Algorithm == mis.Genetic.String():
			c.printWarning("%s: no feasible individual found", r.Algorithm)
		case r.Truncated:
			c.printWarning("%s: nothing enumerated within the budget", r.Algorithm)
		default:
			c.printSuccess("%s: only the empty set is independent", r.Algorithm)
		}
		if r.Found {
			c.printKeyValue("best", formatSet(r.Best))
		}
		if len(r.Sets) > 1 {
			c.printKeyValue("ties", humanize.Comma(int64(len(r.Sets))))
			for _, s := range r.Sets[1:] {
				c.printDetail("%s", formatSet(s))
			}
		}
		if r.Enumerated > 0 {
			c.printKeyValue("enumerated", humanize.Comma(int64(r.Enumerated)))
		}
		if r.Truncated {
			c.printWarning("enumeration truncated: sizes are lower bounds, not certified")
		}
		if r.Generation > 0 {
			c.printKeyValue("generation", fmt.Sprint(r.Generation))
		}
		if r.Maximal != nil {
			c.printKeyValue("maximal", humanize.Comma(int64(len(r.Maximal))))
			for _, s := range r.Maximal {
				c.printDetail("%s", formatSet(s))
			}
		}
		if r.All != nil {
			c.printKeyValue("all sets", humanize.Comma(int64(len(r.All))))
			for _, s := range r.All {
				c.printDetail("%s", formatSet(s))
			}
		}
		c.printKeyValue("elapsed", fmt.Sprintf("%.3fms", r.ElapsedMS))
	}
}

package graphio

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/indset/core"
)

// Asker asks one question and returns an answer accepted by validate.
// Implementations re-ask until validate returns nil.
type Asker interface {
	Ask(message string, validate func(string) error) (string, error)
}

// SurveyAsker asks through terminal prompts.
type SurveyAsker struct{}

// Ask implements Asker with survey.Input; survey re-prompts on validation errors.
func (SurveyAsker) Ask(message string, validate func(string) error) (string, error) {
	var answer string
	prompt := &survey.Input{Message: message}
	err := survey.AskOne(prompt, &answer, survey.WithValidator(func(ans interface{}) error {
		s, ok := ans.(string)
		if !ok {
			return errors.New("expected text")
		}

		return validate(s)
	}))
	if err != nil {
		return "", err
	}

	return answer, nil
}

// IsInteractive reports whether f is a terminal.
func IsInteractive(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Interactive builds a graph by asking for V, E and then E edges.
// Every rejected edge is logged and asked again.
func Interactive(a Asker, opts Options) (*core.Graph, Stats, error) {
	var st Stats

	n, err := askCount(a, "Number of vertices:", core.MaxVertices)
	if err != nil {
		return nil, st, err
	}
	e, err := askCount(a, "Number of edges:", -1)
	if err != nil {
		return nil, st, err
	}
	g := core.NewGraph(n)
	st.Vertices = n

	var (
		i    int
		u, v int
	)
	for i = 0; i < e; i++ {
		msg := fmt.Sprintf("Edge %d of %d (u v):", i+1, e)
		_, err = a.Ask(msg, func(s string) error {
			var verr error
			if u, v, verr = ParseEdge(s, n, opts.Base); verr != nil {
				st.Rejected++
				if opts.Logger != nil {
					opts.Logger.Warn("edge rejected", "edge", i+1, "err", verr)
				}
			}

			return verr
		})
		if err != nil {
			return nil, st, fmt.Errorf("graphio: edge %d: %w", i+1, err)
		}
		if err = g.AddEdge(u, v); err != nil {
			return nil, st, fmt.Errorf("graphio: edge %d: %w", i+1, err)
		}
		st.Edges++
	}

	return g, st, nil
}

// askCount asks for a non-negative count; limit < 0 means no upper bound.
func askCount(a Asker, msg string, limit int) (int, error) {
	var c int
	_, err := a.Ask(msg, func(s string) error {
		var perr error
		if c, perr = parseCount(s); perr != nil {
			return perr
		}
		if limit >= 0 && c > limit {
			return fmt.Errorf("graphio: %d > max=%d: %w", c, limit, ErrMalformedHeader)
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("graphio: %s %w", msg, err)
	}

	return c, nil
}

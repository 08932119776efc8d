package graphio_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indset/builder"
	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/internal/graphio"
)

func TestRead_ZeroBased(t *testing.T) {
	in := "# path with an isolated vertex\n4 2\n0 1\n\n1 2\n"
	g, st, err := graphio.Read(strings.NewReader(in), graphio.Options{})
	require.NoError(t, err)
	assert.Equal(t, graphio.Stats{Vertices: 4, Edges: 2}, st)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, g.Edges())
	assert.Equal(t, 4, g.VertexCount())
}

func TestRead_OneBasedShiftsDown(t *testing.T) {
	g, _, err := graphio.Read(strings.NewReader("4 2\n1 2\n2 3\n"), graphio.Options{Base: graphio.OneBased})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, g.Edges())
}

func TestRead_RejectsAndReReads(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs)

	// Self-loop, out of range and garbage are skipped; they do not count toward E.
	in := "4 2\n2 2\n0 4\nx y\n0 1\n3 3 3\n1 2\n0 3\n"
	g, st, err := graphio.Read(strings.NewReader(in), graphio.Options{Logger: logger})
	require.NoError(t, err)
	assert.Equal(t, 2, st.Edges)
	assert.Equal(t, 4, st.Rejected)
	assert.False(t, g.HasEdge(0, 3), "lines after the E-th valid edge are ignored")
	assert.Equal(t, 4, strings.Count(logs.String(), "edge rejected"))
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"empty", "", graphio.ErrMalformedHeader},
		{"only comments", "# nothing\n", graphio.ErrMalformedHeader},
		{"one number", "4\n", graphio.ErrMalformedHeader},
		{"negative", "-1 0\n", graphio.ErrMalformedHeader},
		{"not a number", "four 2\n", graphio.ErrMalformedHeader},
		{"too many vertices", "65537 0\n", graphio.ErrMalformedHeader},
		{"too few edges", "3 2\n0 1\n", graphio.ErrMissingEdges},
		{"only bad edges", "3 1\n0 0\n", graphio.ErrMissingEdges},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := graphio.Read(strings.NewReader(tc.in), graphio.Options{})
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestValidateEdge(t *testing.T) {
	u, v, err := graphio.ValidateEdge(3, 1, 3, graphio.OneBased)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0}, []int{u, v})

	for _, e := range [][2]int{{0, 1}, {1, 4}, {2, 2}} {
		_, _, err = graphio.ValidateEdge(e[0], e[1], 3, graphio.OneBased)
		assert.ErrorIs(t, err, graphio.ErrInvalidEdge, "%v", e)
	}
	_, _, err = graphio.ValidateEdge(0, 3, 3, graphio.ZeroBased)
	assert.ErrorIs(t, err, graphio.ErrInvalidEdge)

	assert.Equal(t, []int{1, 3, 4}, graphio.OneBased.ExternalSet([]int{0, 2, 3}))
	assert.Equal(t, []int{0, 2}, graphio.ZeroBased.ExternalSet([]int{0, 2}))
}

// scriptedAsker replays answers, re-asking while validate rejects them.
type scriptedAsker struct {
	answers []string
	asked   int
}

func (s *scriptedAsker) Ask(_ string, validate func(string) error) (string, error) {
	for len(s.answers) > 0 {
		a := s.answers[0]
		s.answers = s.answers[1:]
		s.asked++
		if validate(a) == nil {
			return a, nil
		}
	}

	return "", errors.New("out of answers")
}

func TestInteractive(t *testing.T) {
	a := &scriptedAsker{answers: []string{"four", "4", "2", "1 1", "1 5", "1 2", "2 3"}}
	g, st, err := graphio.Interactive(a, graphio.Options{Base: graphio.OneBased})
	require.NoError(t, err)
	assert.Equal(t, graphio.Stats{Vertices: 4, Edges: 2, Rejected: 2}, st)
	assert.Equal(t, []core.Edge{{From: 0, To: 1}, {From: 1, To: 2}}, g.Edges())
	assert.Equal(t, 7, a.asked)

	_, _, err = graphio.Interactive(&scriptedAsker{answers: []string{"3", "1"}}, graphio.Options{})
	require.Error(t, err)

	// A vertex count past core.MaxVertices is asked again.
	a = &scriptedAsker{answers: []string{"65537", "3", "0"}}
	g, _, err = graphio.Interactive(a, graphio.Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 3, a.asked)
}

func TestGenerate(t *testing.T) {
	cases := []struct {
		spec  string
		wantV int
		wantE int
	}{
		{"empty:5", 5, 0},
		{"complete:4", 4, 6},
		{"path:3", 3, 2},
		{"Cycle:8", 8, 8},
		{"star:4", 4, 3},
		{"wheel:5", 5, 8},
		{"bipartite:2:3", 5, 6},
		{"grid:2:2", 4, 4},
		{"random:10:1", 10, 45},
	}
	for _, tc := range cases {
		t.Run(tc.spec, func(t *testing.T) {
			g, err := graphio.Generate(tc.spec, 1)
			require.NoError(t, err)
			assert.Equal(t, tc.wantV, g.VertexCount())
			assert.Equal(t, tc.wantE, g.EdgeCount())
		})
	}

	a, err := graphio.Generate("random:30:0.2", 5)
	require.NoError(t, err)
	b, err := graphio.Generate("random:30:0.2", 5)
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())

	for _, bad := range []string{"hypercube:3", "cycle", "grid:2", "random:10", "random:x:0.1", "path:many"} {
		_, err = graphio.Generate(bad, 1)
		assert.ErrorIs(t, err, graphio.ErrUnknownGenerator, bad)
	}
	_, err = graphio.Generate("cycle:2", 1)
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

package exhaustive_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/indset/builder"
	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/exhaustive"
)

// pathFixture returns 0–1–2 plus isolated 3.
func pathFixture(t testing.TB) *core.Graph {
	t.Helper()
	g := core.NewGraph(4)
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))

	return g
}

// bruteForce lists every independent subset of g by mask enumeration.
func bruteForce(g *core.Graph) [][]int {
	n := g.VertexCount()
	out := make([][]int, 0, 1<<n)
	var mask, v int
	for mask = 0; mask < 1<<n; mask++ {
		set := make([]int, 0, n)
		for v = 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				set = append(set, v)
			}
		}
		if g.IsIndependent(set) {
			out = append(out, set)
		}
	}

	return out
}

func TestEnumerate_PathScenario(t *testing.T) {
	g := pathFixture(t)

	res, err := exhaustive.Enumerate(g, exhaustive.WithBudget(exhaustive.Unbounded))
	require.NoError(t, err)
	require.False(t, res.Truncated)

	// Degree order is [3 0 2 1]; discovery follows it.
	want := [][]int{{}, {3}, {0, 3}, {0, 2, 3}, {2, 3}, {1, 3}, {0}, {0, 2}, {2}, {1}}
	require.Equal(t, want, res.Sets)
	require.Equal(t, len(want), res.Nodes, "one node per recorded set when nothing is pruned late")

	ext := exhaustive.Maximum(res)
	assert.Equal(t, 3, ext.Size)
	assert.Equal(t, [][]int{{0, 2, 3}}, ext.Sets)
	assert.True(t, ext.Certified)

	assert.Equal(t, [][]int{{0, 2, 3}, {1, 3}}, exhaustive.Maximal(g, res))
}

func TestEnumerate_MatchesBruteForce(t *testing.T) {
	var seed int64
	for seed = 1; seed <= 6; seed++ {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)},
				builder.RandomSparse(10, 0.3))
			require.NoError(t, err)

			res, err := exhaustive.Enumerate(g, exhaustive.WithBudget(exhaustive.Unbounded))
			require.NoError(t, err)
			require.False(t, res.Truncated)
			require.ElementsMatch(t, bruteForce(g), res.Sets)

			for _, s := range res.Sets {
				require.True(t, g.IsIndependent(s), "set %v is not independent", s)
			}
		})
	}
}

func TestEnumerate_EmptyGraph(t *testing.T) {
	g := core.NewGraph(4)
	res, err := exhaustive.Enumerate(g)
	require.NoError(t, err)
	require.Len(t, res.Sets, 16, "every subset of 4 isolated vertices is independent")

	ext := exhaustive.Maximum(res)
	require.Equal(t, 4, ext.Size)
	require.Equal(t, [][]int{{0, 1, 2, 3}}, ext.Sets)
}

func TestEnumerate_CompleteGraph(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)

	res, err := exhaustive.Enumerate(g)
	require.NoError(t, err)
	require.Len(t, res.Sets, 6, "empty set plus the five singletons")
	require.Equal(t, []int{}, res.Sets[0])

	ext := exhaustive.Maximum(res)
	require.Equal(t, 1, ext.Size)
	require.Len(t, ext.Sets, 5, "all ties are kept")
}

func TestEnumerate_ZeroVertices(t *testing.T) {
	res, err := exhaustive.Enumerate(core.NewGraph(0))
	require.NoError(t, err)
	require.Equal(t, [][]int{{}}, res.Sets)
	require.False(t, res.Truncated)
	require.Equal(t, 0, exhaustive.Maximum(res).Size)
}

func TestEnumerate_NonPositiveBudget(t *testing.T) {
	g := pathFixture(t)
	for _, b := range []time.Duration{0, -time.Second} {
		res, err := exhaustive.Enumerate(g, exhaustive.WithBudget(b))
		require.NoError(t, err, "exhaustion is not an error")
		require.True(t, res.Truncated)
		require.Empty(t, res.Sets)

		ext := exhaustive.Maximum(res)
		require.False(t, ext.Certified)
		require.Equal(t, 0, ext.Size)
	}
}

func TestEnumerate_TinyBudgetTruncates(t *testing.T) {
	// 40 isolated vertices have 2^40 independent subsets.
	g := core.NewGraph(40)

	res, err := exhaustive.Enumerate(g, exhaustive.WithBudget(2*time.Millisecond))
	require.NoError(t, err)
	require.True(t, res.Truncated)
	require.NotEmpty(t, res.Sets)
	require.Less(t, res.Elapsed, 2*time.Second)

	ext := exhaustive.Maximum(res)
	require.False(t, ext.Certified, "a truncated run never certifies its maximum")
	for _, s := range ext.Sets {
		require.True(t, g.IsIndependent(s))
	}
}

func TestEnumerate_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := exhaustive.Enumerate(core.NewGraph(30),
		exhaustive.WithBudget(exhaustive.Unbounded), exhaustive.WithContext(ctx))
	require.NoError(t, err)
	require.True(t, res.Truncated)
	require.Empty(t, res.Sets)
	require.Equal(t, 1, res.Nodes)
}

func TestEnumerate_MaxSets(t *testing.T) {
	res, err := exhaustive.Enumerate(core.NewGraph(20), exhaustive.WithMaxSets(100))
	require.NoError(t, err)
	require.True(t, res.Truncated)
	require.Len(t, res.Sets, 100)
}

func TestEnumerate_MaxSetsExactlyReached(t *testing.T) {
	// Two isolated vertices have exactly four independent sets.
	res, err := exhaustive.Enumerate(core.NewGraph(2), exhaustive.WithMaxSets(4))
	require.NoError(t, err)
	require.False(t, res.Truncated, "cap met with nothing left to find")
	require.Equal(t, [][]int{{}, {0}, {0, 1}, {1}}, res.Sets)

	ext := exhaustive.Maximum(res)
	require.True(t, ext.Certified)
	require.Equal(t, 2, ext.Size)

	res, err = exhaustive.Enumerate(core.NewGraph(2), exhaustive.WithMaxSets(3))
	require.NoError(t, err)
	require.True(t, res.Truncated)
	require.Len(t, res.Sets, 3)
}

func TestEnumerate_NilGraph(t *testing.T) {
	_, err := exhaustive.Enumerate(nil)
	require.ErrorIs(t, err, exhaustive.ErrNilGraph)

	_, err = exhaustive.FindMaximum(nil)
	require.ErrorIs(t, err, exhaustive.ErrNilGraph)

	require.Empty(t, exhaustive.Maximal(nil, exhaustive.Result{Sets: [][]int{{0}}}))
}

func TestFindMaximum_KnownFamilies(t *testing.T) {
	cases := []struct {
		name  string
		ctor  builder.Constructor
		alpha int
	}{
		{"Path(7)", builder.Path(7), 4},
		{"Cycle(7)", builder.Cycle(7), 3},
		{"Star(6)", builder.Star(6), 5},
		{"Wheel(7)", builder.Wheel(7), 3},
		{"CompleteBipartite(3,4)", builder.CompleteBipartite(3, 4), 4},
		{"Grid(3,3)", builder.Grid(3, 3), 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)

			ext, err := exhaustive.FindMaximum(g, exhaustive.WithBudget(exhaustive.Unbounded))
			require.NoError(t, err)
			require.True(t, ext.Certified)
			require.Equal(t, tc.alpha, ext.Size)
			for _, s := range ext.Sets {
				require.True(t, g.IsMaximal(s), "a maximum set is also maximal")
			}
		})
	}
}

func TestWithLogger_NilPanics(t *testing.T) {
	require.Panics(t, func() { exhaustive.WithLogger(nil) })
}

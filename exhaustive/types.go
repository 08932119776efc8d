// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, results and sentinel errors of the enumerator.

package exhaustive

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// DefaultBudget is the wall-clock budget used by DefaultOptions.
	DefaultBudget = 10 * time.Second

	// Unbounded disables the time check entirely.
	Unbounded = time.Duration(math.MaxInt64)
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed in.
	ErrNilGraph = errors.New("exhaustive: graph is nil")
)

// Options controls a single enumeration.
type Options struct {
	// Budget bounds the wall-clock time of the search. A value ≤ 0 yields an
	// empty, truncated result; Unbounded disables the check.
	Budget time.Duration

	// Ctx allows cancellation; a cancelled context truncates the result.
	Ctx context.Context

	// MaxSets, if positive, caps the recorded sets. Truncated is set only
	// when the search meets one more set past the cap. Zero means no limit.
	MaxSets int

	// Logger receives debug progress. Nil keeps the enumerator silent.
	Logger *log.Logger
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns Budget=DefaultBudget, a background context,
// no set limit and no logger.
func DefaultOptions() Options {
	return Options{
		Budget:  DefaultBudget,
		Ctx:     context.Background(),
		MaxSets: 0,
		Logger:  nil,
	}
}

// WithBudget sets the wall-clock budget.
func WithBudget(d time.Duration) Option {
	return func(o *Options) {
		o.Budget = d
	}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSets caps the number of recorded sets. Negative values mean no limit.
func WithMaxSets(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MaxSets = n
	}
}

// WithLogger installs a debug logger.
// Panics on nil: leave the option out to stay silent.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic("exhaustive: WithLogger(nil)")
	}

	return func(o *Options) {
		o.Logger = l
	}
}

// Result is the outcome of Enumerate.
type Result struct {
	// Sets holds every independent set discovered, each sorted ascending,
	// in discovery order. The empty set comes first whenever anything
	// was explored.
	Sets [][]int

	// Truncated reports that the budget, the context or MaxSets stopped the
	// search early; Sets is then a subset of all independent sets.
	Truncated bool

	// Nodes counts recursive entries (search-tree nodes).
	Nodes int

	// Elapsed is the wall-clock time spent searching.
	Elapsed time.Duration
}

// Extraction is the outcome of Maximum.
type Extraction struct {
	// Sets are all discovered sets of cardinality Size, in discovery order.
	Sets [][]int

	// Size is the largest cardinality present in the enumeration.
	Size int

	// Certified reports that the enumeration was complete, so Size is the
	// independence number α(G) and Sets are all maximum independent sets.
	Certified bool
}

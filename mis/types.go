// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Algorithm selector, dispatcher options, report and sentinels.

package mis

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/indset/exhaustive"
	"github.com/katalvlaran/indset/genetic"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Solve.
	ErrNilGraph = errors.New("mis: graph is nil")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("mis: unsupported algorithm")

	// ErrInvalidSolution indicates a solver returned a non-independent set.
	ErrInvalidSolution = errors.New("mis: solver returned a non-independent set")
)

// Algorithm selects the solver used by Solve.
type Algorithm int

const (
	// Exhaustive enumerates independent sets within a time budget.
	Exhaustive Algorithm = iota

	// Greedy runs the degree-ordered sweep.
	Greedy

	// Genetic runs the genetic optimizer.
	Genetic
)

// Algorithms lists every supported algorithm in canonical order.
var Algorithms = []Algorithm{Exhaustive, Greedy, Genetic}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	switch a {
	case Exhaustive:
		return "exhaustive"
	case Greedy:
		return "greedy"
	case Genetic:
		return "genetic"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps a name (case-insensitive) to an Algorithm.
// "backtracking" and "ga" are accepted as aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exhaustive", "backtracking":
		return Exhaustive, nil
	case "greedy":
		return Greedy, nil
	case "genetic", "ga":
		return Genetic, nil
	default:
		return Exhaustive, fmt.Errorf("mis: %q: %w", s, ErrUnsupportedAlgorithm)
	}
}

// Options configures Solve.
type Options struct {
	// Algo selects the solver.
	Algo Algorithm

	// Budget bounds the exhaustive enumeration (exhaustive.Unbounded disables it).
	Budget time.Duration

	// MaxSets caps the number of sets the enumeration records (0 = no cap).
	MaxSets int

	// Genetic carries the GA parameters (population, generations,
	// mutation rate, seed, fitness policy).
	Genetic genetic.Options

	// Logger receives debug progress from every solver. Nil is silent.
	Logger *log.Logger
}

// DefaultOptions returns Exhaustive with a 10 s budget and default GA parameters.
func DefaultOptions() Options {
	return Options{
		Algo:    Exhaustive,
		Budget:  exhaustive.DefaultBudget,
		MaxSets: 0,
		Genetic: genetic.DefaultOptions(),
		Logger:  nil,
	}
}

// Report is the normalized outcome of Solve.
type Report struct {
	// Algo is the solver that produced the report.
	Algo Algorithm

	// Sets are the reported independent sets, each ascending. Exhaustive
	// reports every maximum-cardinality set found; the others report one.
	Sets [][]int

	// Best is the first of Sets (empty when there is none).
	Best []int

	// Size is len(Best).
	Size int

	// Exhaustive reports that Size is certified to be α(G).
	Exhaustive bool

	// Truncated reports an incomplete enumeration.
	Truncated bool

	// Found reports that a non-empty answer exists.
	Found bool

	// Enumerated is the number of independent sets the enumerator
	// discovered (Exhaustive only).
	Enumerated int

	// Maximal lists the discovered sets that are maximal in the graph
	// (Exhaustive only, filled when requested via SolveAll).
	Maximal [][]int

	// All holds every discovered set (Exhaustive only, filled by SolveAll).
	All [][]int

	// Generation is the GA generation that produced Best (Genetic only).
	Generation int

	// Elapsed is the wall-clock time of the solver call.
	Elapsed time.Duration
}

// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Options, fitness policies, results and sentinel errors.

package genetic

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/bits-and-blooms/bitset"
	"github.com/charmbracelet/log"
)

// Defaults of a run.
const (
	DefaultPopulationSize = 100
	DefaultGenerations    = 200
	DefaultMutationRate   = 0.05
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Optimize.
	ErrNilGraph = errors.New("genetic: graph is nil")

	// ErrInvalidPopulation indicates PopulationSize < 1.
	ErrInvalidPopulation = errors.New("genetic: population size must be ≥ 1")

	// ErrInvalidGenerations indicates Generations < 0.
	ErrInvalidGenerations = errors.New("genetic: generations must be ≥ 0")

	// ErrInvalidMutationRate indicates MutationRate outside [0,1] or NaN.
	ErrInvalidMutationRate = errors.New("genetic: mutation rate must be in [0,1]")

	// ErrUnknownFitness indicates an unsupported Fitness policy.
	ErrUnknownFitness = errors.New("genetic: unknown fitness policy")
)

// Fitness selects how genomes are scored.
type Fitness int

const (
	// FlatPenalty scores |S| when S is independent and 0 otherwise.
	FlatPenalty Fitness = iota

	// ConflictPenalty scores max(|S| - conflicting pairs, 0).
	ConflictPenalty
)

// String returns the policy name used by configuration and flags.
func (f Fitness) String() string {
	switch f {
	case FlatPenalty:
		return "flat"
	case ConflictPenalty:
		return "conflict"
	default:
		return fmt.Sprintf("Fitness(%d)", int(f))
	}
}

// ParseFitness maps "flat" / "conflict" (case-insensitive) to a policy.
func ParseFitness(s string) (Fitness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "flat":
		return FlatPenalty, nil
	case "conflict":
		return ConflictPenalty, nil
	default:
		return FlatPenalty, fmt.Errorf("genetic: %q: %w", s, ErrUnknownFitness)
	}
}

// Options configures one Optimize call.
type Options struct {
	// PopulationSize is the number of individuals per generation (P ≥ 1).
	PopulationSize int

	// Generations is the number of breeding rounds (G ≥ 0).
	Generations int

	// MutationRate is the per-bit flip probability of an offspring (m ∈ [0,1]).
	MutationRate float64

	// Seed seeds the run when Rand is nil. 0 maps to a fixed default seed.
	Seed int64

	// Rand, if non-nil, is used instead of Seed. It is advanced by the run.
	Rand *rand.Rand

	// Fitness selects the scoring policy.
	Fitness Fitness

	// Logger receives debug progress. Nil keeps the optimizer silent.
	Logger *log.Logger
}

// DefaultOptions returns P=100, G=200, m=0.05, seed 0 and FlatPenalty.
func DefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
		Seed:           0,
		Rand:           nil,
		Fitness:        FlatPenalty,
		Logger:         nil,
	}
}

// Validate checks Options without reference to a graph.
// Complexity: O(1).
func (o Options) Validate() error {
	if o.PopulationSize < 1 {
		return fmt.Errorf("genetic: population=%d: %w", o.PopulationSize, ErrInvalidPopulation)
	}
	if o.Generations < 0 {
		return fmt.Errorf("genetic: generations=%d: %w", o.Generations, ErrInvalidGenerations)
	}
	if math.IsNaN(o.MutationRate) || o.MutationRate < 0 || o.MutationRate > 1 {
		return fmt.Errorf("genetic: mutation=%v: %w", o.MutationRate, ErrInvalidMutationRate)
	}
	switch o.Fitness {
	case FlatPenalty, ConflictPenalty:
	default:
		return fmt.Errorf("genetic: %s: %w", o.Fitness, ErrUnknownFitness)
	}

	return nil
}

// Result is the outcome of Optimize.
type Result struct {
	// Found reports that a feasible offspring with fitness > 0 appeared.
	Found bool

	// Set lists the selected vertices of the best genome, ascending.
	// Empty when Found is false.
	Set []int

	// Genome is the best genome itself; nil when Found is false.
	Genome *bitset.BitSet

	// Fitness is the best genome's score (= len(Set)).
	Fitness int

	// Generation is the 1-based generation that produced the best genome.
	Generation int

	// Evaluations counts fitness evaluations, generation 0 included.
	Evaluations int
}

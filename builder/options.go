// File: options.go
// Role: Functional options for BuildGraph.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig.
type BuilderOption func(*builderConfig)

// WithSeed installs a fresh *rand.Rand seeded with seed.
// Equal seeds give identical random graphs.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand installs the caller's random source.
// Panics on nil: a nil source is a programming error, not a runtime condition.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(cfg *builderConfig) {
		cfg.rng = r
	}
}

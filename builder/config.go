// File: config.go
// Role: Resolved per-build configuration passed to every Constructor.

package builder

import "math/rand"

// builderConfig carries the settings shared by all constructors of a build.
// The zero value is valid for deterministic families.
type builderConfig struct {
	// rng drives stochastic families (RandomSparse). Nil means "none".
	rng *rand.Rand
}

// newBuilderConfig applies opts left-to-right over the zero config.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	var cfg builderConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

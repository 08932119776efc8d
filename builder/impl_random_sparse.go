// SPDX-License-Identifier: MIT
//
// File: impl_random_sparse.go
// Role: RandomSparse(n, p) constructor (Erdős–Rényi G(n,p)).
// Determinism:
//   - Pairs are visited in (i asc, j asc) order with one rng.Float64 draw
//     each, so a fixed seed reproduces the graph exactly.
//   - p == 0 and p == 1 are handled without touching the RNG.
// Complexity:
//   - O(n²) draws.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/indset/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse appends n vertices and joins each unordered pair
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate before any mutation.
		if err := checkMin(methodRandomSparse, "n", n, minRandomSparseVertices); err != nil {
			return err
		}
		if math.IsNaN(p) || p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertices first so isolated ones still exist.
		base, err := appendVertices(g, n)
		if err != nil {
			return err
		}
		if p == probMin {
			return nil
		}

		// 3) One Bernoulli trial per unordered pair.
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if p < probMax && cfg.rng.Float64() >= p {
					continue
				}
				if err := link(g, methodRandomSparse, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// SPDX-License-Identifier: MIT
//
// File: impl_bipartite.go
// Role: CompleteBipartite(a, b) constructor.
// Layout:
//   - Left part  base..base+a-1, right part base+a..base+a+b-1.
// Complexity:
//   - O(a+b) vertices, O(a·b) edges.

package builder

import "github.com/katalvlaran/indset/core"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartVertices         = 1
)

// CompleteBipartite appends K_{a,b}. Both parts must be non-empty.
func CompleteBipartite(a, b int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(methodCompleteBipartite, "a", a, minPartVertices); err != nil {
			return err
		}
		if err := checkMin(methodCompleteBipartite, "b", b, minPartVertices); err != nil {
			return err
		}
		left, err := appendVertices(g, a+b)
		if err != nil {
			return err
		}
		right := left + a
		var i, j int
		for i = 0; i < a; i++ {
			for j = 0; j < b; j++ {
				if err := link(g, methodCompleteBipartite, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

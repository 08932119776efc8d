// SPDX-License-Identifier: MIT
//
// File: impl_classic.go
// Role: Deterministic textbook families (Empty, Complete, Path, Cycle, Star, Wheel).
// Layout:
//   - Each family occupies ids base..base+n-1 where base = V before the call.
//   - Star and Wheel put the hub at base and the leaves/rim after it.
// Complexity:
//   - O(n) vertices; O(n) edges except Complete, which emits n(n-1)/2.

package builder

import "github.com/katalvlaran/indset/core"

const (
	methodEmpty    = "Empty"
	methodComplete = "Complete"
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"

	minEmptyVertices    = 0
	minCompleteVertices = 1
	minPathVertices     = 1
	minCycleVertices    = 3
	minStarVertices     = 2
	minWheelVertices    = 4
)

// Empty appends n isolated vertices.
func Empty(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(methodEmpty, "n", n, minEmptyVertices); err != nil {
			return err
		}
		if _, err := appendVertices(g, n); err != nil {
			return err
		}

		return nil
	}
}

// Complete appends the clique K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(methodComplete, "n", n, minCompleteVertices); err != nil {
			return err
		}
		base, err := appendVertices(g, n)
		if err != nil {
			return err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				if err := link(g, methodComplete, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Path appends the path P_n: 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(methodPath, "n", n, minPathVertices); err != nil {
			return err
		}
		base, err := appendVertices(g, n)
		if err != nil {
			return err
		}
		var i int
		for i = 0; i+1 < n; i++ {
			if err := link(g, methodPath, base+i, base+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle appends the ring C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(methodCycle, "n", n, minCycleVertices); err != nil {
			return err
		}
		base, err := appendVertices(g, n)
		if err != nil {
			return err
		}
		var i int
		for i = 0; i < n; i++ {
			if err := link(g, methodCycle, base+i, base+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star appends K_{1,n-1}: one hub joined to n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(methodStar, "n", n, minStarVertices); err != nil {
			return err
		}
		hub, err := appendVertices(g, n)
		if err != nil {
			return err
		}
		var i int
		for i = 1; i < n; i++ {
			if err := link(g, methodStar, hub, hub+i); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel appends W_n: a hub joined to every vertex of a rim cycle C_{n-1}.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := checkMin(methodWheel, "n", n, minWheelVertices); err != nil {
			return err
		}
		hub, err := appendVertices(g, n)
		if err != nil {
			return err
		}
		rim := n - 1
		var i int
		for i = 0; i < rim; i++ {
			if err := link(g, methodWheel, hub, hub+1+i); err != nil {
				return err
			}
			if err := link(g, methodWheel, hub+1+i, hub+1+(i+1)%rim); err != nil {
				return err
			}
		}

		return nil
	}
}

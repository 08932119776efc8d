// SPDX-License-Identifier: MIT
//
// File: extract.go
// Role: Maximum / maximal filters over an enumeration, plus FindMaximum.

package exhaustive

import "github.com/katalvlaran/indset/core"

// Maximum returns every set of res whose cardinality equals the largest
// cardinality present, in discovery order.
// Complexity: O(len(res.Sets)).
func Maximum(res Result) Extraction {
	var size int
	for _, s := range res.Sets {
		if len(s) > size {
			size = len(s)
		}
	}

	out := Extraction{
		Sets:      make([][]int, 0, 4),
		Size:      size,
		Certified: !res.Truncated,
	}
	for _, s := range res.Sets {
		if len(s) == size {
			out.Sets = append(out.Sets, s)
		}
	}

	return out
}

// Maximal returns the sets of res to which no vertex of g can be added.
// On a complete enumeration these are exactly the maximal independent sets.
// Complexity: O(len(res.Sets) · (V+E)).
func Maximal(g *core.Graph, res Result) [][]int {
	out := make([][]int, 0, 4)
	if g == nil {
		return out
	}
	for _, s := range res.Sets {
		if g.IsMaximal(s) {
			out = append(out, s)
		}
	}

	return out
}

// FindMaximum enumerates g and extracts its largest independent sets.
func FindMaximum(g *core.Graph, opts ...Option) (Extraction, error) {
	res, err := Enumerate(g, opts...)
	if err != nil {
		return Extraction{}, err
	}

	return Maximum(res), nil
}

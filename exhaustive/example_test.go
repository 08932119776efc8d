package exhaustive_test

import (
	"fmt"

	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/exhaustive"
)

// ExampleFindMaximum finds the maximum independent set of the path 0–1–2
// with an isolated vertex 3.
func ExampleFindMaximum() {
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	ext, err := exhaustive.FindMaximum(g, exhaustive.WithBudget(exhaustive.Unbounded))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("size:", ext.Size)
	fmt.Println("sets:", ext.Sets)
	fmt.Println("certified:", ext.Certified)

	// Output:
	// size: 3
	// sets: [[0 2 3]]
	// certified: true
}

// ExampleMaximal separates maximum from maximal on the same enumeration.
func ExampleMaximal() {
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	res, _ := exhaustive.Enumerate(g)
	fmt.Println("independent sets:", len(res.Sets))
	fmt.Println("maximal:", exhaustive.Maximal(g, res))

	// Output:
	// independent sets: 10
	// maximal: [[0 2 3] [1 3]]
}

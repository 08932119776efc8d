package greedy_test

import (
	"fmt"

	"github.com/katalvlaran/indset/core"
	"github.com/katalvlaran/indset/greedy"
)

func ExampleConstruct() {
	g := core.NewGraph(4)
	_ = g.AddEdge(0, 1)
	_ = g.AddEdge(1, 2)

	res, _ := greedy.Construct(g)
	fmt.Println("selection order:", res.Order)
	fmt.Println("set:", res.Set)

	// Output:
	// selection order: [3 0 2]
	// set: [0 2 3]
}

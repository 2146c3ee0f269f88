package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

// ExampleRouteProblem finds the cheapest route through a directed network.
func ExampleRouteProblem() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddEdge("A", "B", 2)
	_, _ = g.AddEdge("A", "C", 1)
	_, _ = g.AddEdge("C", "B", 1, core.WithLabel("C→B"))
	_, _ = g.AddEdge("B", "D", 3)
	_, _ = g.AddEdge("C", "D", 5)

	rp, err := core.NewRouteProblem(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path := search.UniformCostSearch[string, string](rp)
	fmt.Println(path, rp.CostOfActions(path))
	fmt.Println(rp.Vertices(path))
	// Output:
	// [B D] 5
	// [A B D]
}

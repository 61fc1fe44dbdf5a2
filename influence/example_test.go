package influence_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/influence"
)

// ExampleEngine_Compute shows the index of a small chain A→B→C.
func ExampleEngine_Compute() {
	g := core.NewGraph()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id, core.WithValue(1))
	}
	_, _ = g.AddEdge("A", "B", 0.5)
	_, _ = g.AddEdge("B", "C", 1.0)

	e := influence.NewEngine(nil)
	idx, _ := e.Compute(context.Background(), g)
	for _, id := range g.Vertices() {
		fmt.Printf("%s %.2f\n", id, idx[id])
	}
	// Output:
	// A 1.00
	// B 1.00
	// C 0.00
}

// ExampleAnalyticalGraph shows the closed form failing on a unit two-cycle.
func ExampleAnalyticalGraph() {
	g := core.NewGraph()
	_ = g.AddVertex("A", core.WithValue(1))
	_ = g.AddVertex("B", core.WithValue(1))
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "A", 1)

	_, err := influence.AnalyticalGraph(context.Background(), g, nil)
	fmt.Println(err != nil)
	// Output:
	// true
}

package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dijkstra"
	"github.com/katalvlaran/labyrinth/trace"
)

// ExampleDijkstra searches a four-node cycle and prints the trace a renderer
// would replay.
func ExampleDijkstra() {
	g := core.New()
	for _, id := range []string{"A", "B", "C", "D"} {
		_ = g.AddNode(id, 0, 0)
	}
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")

	res, err := dijkstra.Dijkstra(g, "A", "D")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("path:", res.Path)
	for _, s := range res.Steps.OfKind(trace.KindCurrent) {
		fmt.Printf("%s@%d ", s.NodeID, s.Score.Distance)
	}
	fmt.Println()
	// Output:
	// path: [A B D]
	// A@0 B@1 C@1 D@2
}

// ExampleAStar runs A* on a 3×3 open grid.
func ExampleAStar() {
	g, _ := core.NewGrid(3, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if x < 2 {
				_ = g.AddEdge(core.GridID(x, y), core.GridID(x+1, y))
			}
			if y < 2 {
				_ = g.AddEdge(core.GridID(x, y), core.GridID(x, y+1))
			}
		}
	}
	res, err := dijkstra.AStar(g, "0,0", "2,2")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("found:", res.Found, "hops:", res.Hops())
	// Output: found: true hops: 4
}

package core_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// ExampleNewGrid carves two passages into a 2×2 grid by hand.
func ExampleNewGrid() {
	g, _ := core.NewGrid(2, 2)
	_ = g.AddEdge("0,0", "1,0")
	_ = g.AddEdge("1,0", "1,1")

	fmt.Println(g.IDs())
	fmt.Println(g.Neighbors("1,0"))
	fmt.Println(g.Connected(), g.Components())
	// Output:
	// [0,0 1,0 0,1 1,1]
	// [0,0 1,1]
	// false [[0,0 1,0 1,1] [0,1]]
}

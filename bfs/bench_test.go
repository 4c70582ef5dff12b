package bfs_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/maze"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	ids := make([]string, N+1)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
	}
	g := chain(b, ids...)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0")
	}
}

// BenchmarkBidirectional_Maze runs corner-to-corner searches on a braided 60×60 maze.
func BenchmarkBidirectional_Maze(b *testing.B) {
	g, err := maze.Generate(60, 60, maze.WithSeed(42), maze.Braided())
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Bidirectional(g, "0,0", "59,59")
	}
}

// BenchmarkBidirectional_Cloud runs searches on a 2000-node proximity graph.
func BenchmarkBidirectional_Cloud(b *testing.B) {
	g, err := builder.Proximity(2000, 4, 40, builder.WithSeed(42))
	if err != nil {
		b.Fatal(err)
	}
	start, end, err := builder.FindOppositeCornerNodes(g)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Bidirectional(g, start, end)
	}
}

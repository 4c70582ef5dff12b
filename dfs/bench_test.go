package dfs_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/maze"
)

// BenchmarkDetectCycles_Maze runs cycle detection on a braided 50×50 maze.
func BenchmarkDetectCycles_Maze(b *testing.B) {
	g, err := maze.Generate(50, 50, maze.WithSeed(1), maze.Braided())
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.DetectCycles(g)
	}
}

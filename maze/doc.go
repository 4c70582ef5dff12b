// Package maze generates grid mazes as core.Graph values.
//
// What
//
//   - Generate carves a perfect maze (a spanning tree of the W×H grid: exactly
//     one simple path between any two cells) with iterative depth-first
//     backtracking from cell (0,0).
//   - An optional post-pass removes a percentage of the remaining interior
//     walls at random, introducing cycles so that several routes exist.
//   - The result is a grid graph with "x,y" node IDs: two cells are adjacent
//     iff no wall remains between them.
//
// Randomness
//
//	Every random choice is drawn from an rng.Source. WithSeed freezes the
//	outcome; without it the ambient non-deterministic source is used.
//
// Usage
//
//	g, err := maze.Generate(20, 15)                               // perfect maze
//	g, err := maze.Generate(20, 15, maze.Braided(), maze.WithSeed(7)) // 25% walls removed
//
// Complexity: O(W·H) time and memory for the carve, plus O(k·w) for removing
// k of w interior walls.
package maze

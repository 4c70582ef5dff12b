// Package labyrinth generates mazes and random graphs and runs path-search
// algorithms over them, recording every step so a renderer can replay the
// search.
//
// 🚀 What is labyrinth?
//
//	A small, deterministic library that brings together:
//		• Generators: perfect or braided mazes, circular and proximity graphs
//		• Shortest paths: Dijkstra and A* (Manhattan heuristic)
//		• Traversals: BFS, bidirectional BFS, DFS with cycle detection
//		• Tours: shortest start-anchored route through a set of goals
//		• Traces: ordered, JSON-ready step records of every run
//
// ✨ Why choose labyrinth?
//
//   - Reproducible – every generator takes a seed; same seed, same graph
//   - Observable – OnStep hooks stream trace events as they happen
//   - Interoperable – core.Graph exposes a Gonum view for further analysis
//
// Packages:
//
//	core/      — undirected graph with stable node and neighbour order
//	maze/      — grid mazes carved by randomized depth-first search
//	builder/   — circular and proximity random graphs
//	dijkstra/  — Dijkstra and A* with step traces
//	bfs/       — breadth-first and bidirectional search
//	dfs/       — depth-first search, cycles and forests
//	tour/      — multi-goal tour search
//	trace/     — step kinds and recorders
//	rng/       — seeded pseudo-random source
//	pqueue/    — stable min-priority queue
//
// Quick ASCII example:
//
//	A───B
//	│   │
//	C───D
//
// Dijkstra from A to D visits A, then B and C at distance 1, and
// reports the path A→B→D.
//
//	go get github.com/katalvlaran/labyrinth
package labyrinth

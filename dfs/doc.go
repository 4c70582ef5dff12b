// Package dfs implements depth-first traversal and cycle detection on an
// undirected core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before backtracking.
//     Supports:
//   - Pre-order and post-order hooks
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Forest traversal over every component
//   - DetectCycles: lists the cycles closed by back edges, using vertex
//     coloring (White, Gray, Black) and canonical signature deduplication.
//   - IsForest: reports whether the graph is acyclic.
//
// Why:
//
//   - A perfect maze is a spanning tree: IsForest plus Connected is the
//     definition. Braided mazes and dense random graphs must have cycles.
//   - Post-order and parent links expose the tree a carve produced.
//
// Determinism:
//
//	Neighbours are followed in insertion order, so Order, Parent and the
//	cycle list are identical across runs on identical graphs. Cycles are
//	canonicalised (minimal rotation in either direction, Booth's algorithm)
//	and sorted by signature.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus O(C·L) to canonicalise C cycles of
//     average length L.
//   - Memory: O(V) for the recursion stack and state maps.
//
// Errors:
//
//   - ErrGraphNil             if g is nil.
//   - ErrStartVertexNotFound  if startID is missing (single-source mode).
//   - context.Canceled        if ctx is done.
//   - any error returned by OnVisit or OnExit.
package dfs

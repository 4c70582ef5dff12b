// Package bfs provides breadth-first searches over a core.Graph: a traced
// single-source flood and a traced bidirectional shortest-path search.
//
// What
//
//   - BFS expands nodes in non-decreasing distance (edge count) from a start
//     node. It records Order, Depth and Parent, and a current/visiting/visited
//     trace scored with the distance, the same vocabulary Dijkstra uses.
//     WithTarget stops it at a goal and adds the path.
//   - Bidirectional grows one frontier from each endpoint, a full level per
//     side per round, and stops at the first contact. It returns the path, the
//     meeting node and a step trace tagged with side and level.
//
// Why
//
//   - Unweighted shortest paths in O(V + E) time.
//   - Side by side, the two traces show how much ground a single flood covers
//     compared with two frontiers closing in on each other.
//   - Bidirectional is the distance oracle of the tour package.
//
// Determinism
//
//	core.Graph keeps neighbours in insertion order and both searches enqueue
//	them in that order, so visit sequences and traces are fully reproducible.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V)       (queues, depth/parent maps, trace)
//
// Usage
//
//	res, err := bfs.BFS(g, "0,0", bfs.WithTarget("9,9"))
//	fmt.Println(res.Found, res.Hops(), len(res.Steps))
//
//	bi, err := bfs.Bidirectional(g, "n0", "n17",
//	    bfs.WithOnStep(func(s trace.Step) { /* stream to a renderer */ }),
//	)
//
// Options
//
//   - WithContext(ctx):        cancel the search; checked per node (BFS) or per round (Bidirectional).
//   - WithOnStep(fn):          observe trace steps as they are recorded.
//   - WithTarget(id):          BFS only; stop at id and fill Path.
//   - WithMaxDepth(d):         BFS only; do not expand nodes at depth d (>0).
//   - WithFilterNeighbor(fn):  BFS only; skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue, WithOnDequeue, WithOnVisit: BFS queue hooks; OnVisit may abort.
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start node does not exist.
//   - ErrEndVertexNotFound    if the end or target node does not exist.
//   - ErrOptionViolation      for an invalid option (negative MaxDepth, empty target).
//   - ErrNoPath               from PathTo for an undiscovered node.
//   - Wrapped OnVisit errors, or the context error.
//
// An unreachable target is not an error: the result then reports
// Found == false with an empty path.
package bfs

// Package dijkstra implements Dijkstra's and A*'s shortest-path searches on
// unweighted core.Graph values, instrumented to emit a step trace.
//
// Every edge has weight 1, so the distance of a node is its hop count from the
// start. Dijkstra orders the frontier by distance; A* orders it by
// distance + Manhattan distance to the target, which is only meaningful on
// grid graphs whose node IDs encode "x,y" coordinates.
//
// Both searches share one loop:
//
//	pop the minimum-priority node; skip it if already finalized
//	emit "current"; stop if it is the target
//	relax each unvisited neighbour whose distance improves, emit "visiting"
//	emit "visited" for the node
//
// and then walk predecessors from the target back to the start, emitting one
// "path" step per path node in start-to-end order.
//
// Priority ties are broken by arrival order (see package pqueue), so both the
// path and the trace are fully deterministic for a given graph.
//
// Complexity:
//
//   - Time:  O((V + E) log V), with lazy decrease-key (stale queue entries are
//     skipped on dequeue).
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrStartNotFound   if start is not a node of the graph.
//   - ErrEndNotFound     if end is not a node of the graph.
//   - ErrNotGridID       if an A* endpoint is not an "x,y" grid ID.
//   - ErrOptionViolation if an Option was given an invalid value.
//
// An unreachable target is not an error: the result has Found == false, an
// empty Path and a non-empty trace.
package dijkstra

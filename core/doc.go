// Package core defines the Node and Graph types shared by every generator and
// search algorithm in labyrinth.
//
// A Graph is an insertion-ordered mapping from node ID to Node. Each Node has a
// 2D position and an ordered list of neighbour IDs. Edges are undirected and
// unweighted; they are stored symmetrically, so u lists v iff v lists u.
//
// Two flavours share the same type:
//
//   - Grid graphs (NewGrid) carry Width and Height and use "x,y" node IDs,
//     so every ID is derivable from 0..Width × 0..Height. A* relies on this.
//   - General graphs (New) use opaque IDs such as "n0", "n1", …
//
// Lifecycle:
//
//	Generators build a Graph with AddNode/AddEdge and hand it to the caller.
//	From then on the Graph is treated as immutable: algorithms only read it,
//	and scope their own distance/predecessor/visited state to a single call.
//	A Graph is not safe for concurrent mutation; concurrent reads are fine.
//
// Determinism:
//
//	IDs() and Neighbors() return nodes and neighbours in insertion order, never
//	in map order. Identical construction sequences yield identical graphs.
//
// Interop:
//
//	Gonum() exports an undirected gonum view (gonum.org/v1/gonum/graph/simple)
//	and Components() uses gonum's topo package for connectivity analysis.
//
// Errors:
//
//	ErrEmptyNodeID      - node ID is the empty string.
//	ErrDuplicateNode    - AddNode with an ID already present.
//	ErrNodeNotFound     - an operation referenced a missing node.
//	ErrSelfLoop         - AddEdge(u, u).
//	ErrEdgeExists       - AddEdge for an already adjacent pair.
//	ErrBadDimension     - NewGrid with a non-positive width or height.
//	ErrNotGridID        - ParseGridID on an ID that is not "x,y".
//	ErrDanglingNeighbor - Validate found a neighbour ID with no node.
//	ErrAsymmetricEdge   - Validate found u→v without v→u.
package core

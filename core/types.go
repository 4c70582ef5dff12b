package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an existing ID.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrSelfLoop indicates an edge from a node to itself was requested.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeExists indicates the two endpoints are already adjacent.
	ErrEdgeExists = errors.New("core: edge already exists")

	// ErrBadDimension indicates a grid width or height below 1.
	ErrBadDimension = errors.New("core: grid dimensions must be positive")

	// ErrNotGridID indicates an ID that does not encode "x,y" integer coordinates.
	ErrNotGridID = errors.New("core: not a grid node ID")

	// ErrDanglingNeighbor indicates a neighbour ID that has no node in the graph.
	ErrDanglingNeighbor = errors.New("core: neighbor references missing node")

	// ErrAsymmetricEdge indicates u lists v as a neighbour but v does not list u.
	ErrAsymmetricEdge = errors.New("core: edge is not symmetric")
)

// Point is a 2D position used by renderers to place a node.
type Point struct {
	X, Y float64
}

// Node is a single graph vertex.
//
// For grid graphs X and Y are the integer cell coordinates; for general graphs
// they are layout coordinates chosen by the generator.
// Neighbors is ordered by edge insertion and must not be modified by callers.
type Node struct {
	ID        string   `json:"id"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	Neighbors []string `json:"neighbors"`
}

// Position returns the node's coordinates as a Point.
func (n Node) Position() Point {
	return Point{X: n.X, Y: n.Y}
}

// Graph is an undirected, unweighted graph keyed by node ID.
//
// The zero value is not usable; construct with New or NewGrid.
type Graph struct {
	nodes map[string]*Node
	order []string // insertion order of node IDs
	arcs  int      // directed half-edges; EdgeCount is arcs/2

	// grid dimensions; both zero for general graphs
	width, height int
}

package core

import (
	"fmt"
	"slices"
)

// New returns an empty general graph.
func New() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}

// NewGrid returns a width×height grid graph with one node per cell and no
// edges. Nodes are added in row-major order (y asc, then x asc) with IDs
// GridID(x, y) and positions (x, y).
//
// Complexity: O(width·height) time and memory.
func NewGrid(width, height int) (*Graph, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("NewGrid(%d, %d): %w", width, height, ErrBadDimension)
	}
	g := &Graph{
		nodes:  make(map[string]*Node, width*height),
		order:  make([]string, 0, width*height),
		width:  width,
		height: height,
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := GridID(x, y)
			g.nodes[id] = &Node{ID: id, X: float64(x), Y: float64(y)}
			g.order = append(g.order, id)
		}
	}

	return g, nil
}

// AddNode inserts an isolated node at (x, y).
func (g *Graph) AddNode(id string, x, y float64) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	if _, ok := g.nodes[id]; ok {
		return fmt.Errorf("AddNode(%q): %w", id, ErrDuplicateNode)
	}
	g.nodes[id] = &Node{ID: id, X: x, Y: y}
	g.order = append(g.order, id)

	return nil
}

// AddEdge connects u and v, appending v to u's neighbour list and u to v's.
// Both endpoints must exist and must not already be adjacent.
//
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph) AddEdge(u, v string) error {
	nu, ok := g.nodes[u]
	if !ok {
		return fmt.Errorf("AddEdge(%q, %q): %q: %w", u, v, u, ErrNodeNotFound)
	}
	nv, ok := g.nodes[v]
	if !ok {
		return fmt.Errorf("AddEdge(%q, %q): %q: %w", u, v, v, ErrNodeNotFound)
	}
	if u == v {
		return fmt.Errorf("AddEdge(%q, %q): %w", u, v, ErrSelfLoop)
	}
	if slices.Contains(nu.Neighbors, v) {
		return fmt.Errorf("AddEdge(%q, %q): %w", u, v, ErrEdgeExists)
	}
	nu.Neighbors = append(nu.Neighbors, v)
	nv.Neighbors = append(nv.Neighbors, u)
	g.arcs += 2

	return nil
}

// AddArc appends v to u's neighbour list only. It exists for generators that
// derive each node's neighbour order independently (the maze lists open sides
// top, right, bottom, left); such callers must add the reverse arc as well, and
// Validate reports any arc left without its mirror.
func (g *Graph) AddArc(u, v string) error {
	nu, ok := g.nodes[u]
	if !ok {
		return fmt.Errorf("AddArc(%q, %q): %q: %w", u, v, u, ErrNodeNotFound)
	}
	if _, ok := g.nodes[v]; !ok {
		return fmt.Errorf("AddArc(%q, %q): %q: %w", u, v, v, ErrNodeNotFound)
	}
	if u == v {
		return fmt.Errorf("AddArc(%q, %q): %w", u, v, ErrSelfLoop)
	}
	if slices.Contains(nu.Neighbors, v) {
		return fmt.Errorf("AddArc(%q, %q): %w", u, v, ErrEdgeExists)
	}
	nu.Neighbors = append(nu.Neighbors, v)
	g.arcs++

	return nil
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Node returns a copy of the node header for id. The Neighbors slice is shared
// with the graph and must be treated as read-only.
func (g *Graph) Node(id string) (Node, bool) {
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, false
	}
	return *n, true
}

// Neighbors returns the ordered neighbour IDs of id, or nil if id is unknown.
// The returned slice is shared with the graph and must not be modified.
func (g *Graph) Neighbors(id string) []string {
	n, ok := g.nodes[id]
	if !ok {
		return nil
	}
	return n.Neighbors
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v string) bool {
	n, ok := g.nodes[u]
	if !ok {
		return false
	}
	return slices.Contains(n.Neighbors, v)
}

// IDs returns all node IDs in insertion order. The slice is a copy.
func (g *Graph) IDs() []string {
	return slices.Clone(g.order)
}

// Nodes returns copies of all nodes in insertion order.
func (g *Graph) Nodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, *g.nodes[id])
	}
	return out
}

// Len returns the number of nodes.
func (g *Graph) Len() int { return len(g.order) }

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int { return g.arcs / 2 }

// Degree returns the number of neighbours of id (0 if id is unknown).
func (g *Graph) Degree(id string) int {
	return len(g.Neighbors(id))
}

// AverageDegree returns 2|E|/|V|, or 0 for an empty graph.
func (g *Graph) AverageDegree() float64 {
	if len(g.order) == 0 {
		return 0
	}
	return float64(g.arcs) / float64(len(g.order))
}

// IsGrid reports whether g was built by NewGrid.
func (g *Graph) IsGrid() bool { return g.width > 0 && g.height > 0 }

// Width returns the grid width, or 0 for general graphs.
func (g *Graph) Width() int { return g.width }

// Height returns the grid height, or 0 for general graphs.
func (g *Graph) Height() int { return g.height }

// Validate checks the structural invariants every generator must uphold:
// each neighbour ID names an existing node, adjacency is symmetric, and no
// node lists itself or the same neighbour twice. It returns the first
// violation found, in insertion order.
//
// Complexity: O(V + E·d) where d is the maximum degree.
func (g *Graph) Validate() error {
	for _, id := range g.order {
		n := g.nodes[id]
		seen := make(map[string]struct{}, len(n.Neighbors))
		for _, nb := range n.Neighbors {
			if nb == id {
				return fmt.Errorf("Validate: %q: %w", id, ErrSelfLoop)
			}
			if _, dup := seen[nb]; dup {
				return fmt.Errorf("Validate: %q lists %q twice: %w", id, nb, ErrEdgeExists)
			}
			seen[nb] = struct{}{}
			other, ok := g.nodes[nb]
			if !ok {
				return fmt.Errorf("Validate: %q → %q: %w", id, nb, ErrDanglingNeighbor)
			}
			if !slices.Contains(other.Neighbors, id) {
				return fmt.Errorf("Validate: %q → %q: %w", id, nb, ErrAsymmetricEdge)
			}
		}
	}

	return nil
}

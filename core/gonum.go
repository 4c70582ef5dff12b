package core

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// GonumView is an undirected gonum graph mirroring a Graph, together with the
// mapping between labyrinth string IDs and gonum int64 IDs. gonum IDs follow
// insertion order: the i-th node of the Graph has gonum ID i.
type GonumView struct {
	*simple.UndirectedGraph

	ids   map[string]int64
	names []string
}

// ID returns the gonum ID for a node ID and whether it exists.
func (v *GonumView) ID(name string) (int64, bool) {
	id, ok := v.ids[name]
	return id, ok
}

// Name returns the node ID for a gonum ID, or "" when out of range.
func (v *GonumView) Name(id int64) string {
	if id < 0 || int(id) >= len(v.names) {
		return ""
	}
	return v.names[id]
}

// Names maps a sequence of gonum nodes back to node IDs.
func (v *GonumView) Names(nodes []graph.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = v.Name(n.ID())
	}
	return out
}

// Gonum builds a gonum view of g. The view is a snapshot; later edits to g
// are not reflected.
//
// Complexity: O(V + E).
func (g *Graph) Gonum() *GonumView {
	v := &GonumView{
		UndirectedGraph: simple.NewUndirectedGraph(),
		ids:             make(map[string]int64, len(g.order)),
		names:           make([]string, len(g.order)),
	}
	for i, id := range g.order {
		v.ids[id] = int64(i)
		v.names[i] = id
		v.AddNode(simple.Node(i))
	}
	for _, id := range g.order {
		from := v.ids[id]
		for _, nb := range g.nodes[id].Neighbors {
			to, ok := v.ids[nb]
			if !ok || v.HasEdgeBetween(from, to) {
				continue
			}
			v.SetEdge(v.NewEdge(simple.Node(from), simple.Node(to)))
		}
	}

	return v
}

// Components returns the connected components of g. Each component lists its
// node IDs in insertion order; components are ordered by their first node.
func (g *Graph) Components() [][]string {
	v := g.Gonum()

	// topo does not promise an order; normalise by gonum ID, which is insertion order.
	comps := make([][]int64, 0)
	for _, comp := range topo.ConnectedComponents(v) {
		ids := make([]int64, len(comp))
		for i, n := range comp {
			ids[i] = n.ID()
		}
		slices.Sort(ids)
		comps = append(comps, ids)
	}
	slices.SortFunc(comps, func(a, b []int64) int { return cmp.Compare(a[0], b[0]) })

	out := make([][]string, len(comps))
	for i, ids := range comps {
		out[i] = make([]string, len(ids))
		for j, id := range ids {
			out[i][j] = v.names[id]
		}
	}

	return out
}

// Connected reports whether every node is reachable from every other node.
// An empty graph is considered connected.
func (g *Graph) Connected() bool {
	if len(g.order) == 0 {
		return true
	}
	return len(g.Components()) == 1
}

// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// api.go - policy dispatch and layout queries.

package builder

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// Spec describes a random graph request. The generation policy is selected
// by which fields are supplied:
//
//   - MaxConnectionsPerNode > 0 or ConnectionRadius > 0 → Proximity.
//   - otherwise → Circular with AvgDegree.
type Spec struct {
	NodeCount int

	// Circular policy.
	AvgDegree float64

	// Proximity policy.
	MaxConnectionsPerNode int
	ConnectionRadius      float64
}

// Proximal reports whether s selects the proximity policy.
func (s Spec) Proximal() bool {
	return s.MaxConnectionsPerNode > 0 || s.ConnectionRadius > 0
}

// RandomGraph generates a graph according to s.
func RandomGraph(s Spec, opts ...BuilderOption) (*core.Graph, error) {
	if s.Proximal() {
		return Proximity(s.NodeCount, s.MaxConnectionsPerNode, s.ConnectionRadius, opts...)
	}
	return Circular(s.NodeCount, s.AvgDegree, opts...)
}

// FindOppositeCornerNodes returns the node minimising x+y (closest to the
// top-left corner) and the node maximising x+y (closest to the bottom-right).
// Ties keep the node inserted first.
//
// Complexity: O(V).
func FindOppositeCornerNodes(g *core.Graph) (topLeft, bottomRight string, err error) {
	if g == nil || g.Len() == 0 {
		return "", "", fmt.Errorf("FindOppositeCornerNodes: %w", ErrEmptyGraph)
	}
	nodes := g.Nodes()
	lo, hi := nodes[0], nodes[0]
	for _, n := range nodes[1:] {
		if n.X+n.Y < lo.X+lo.Y {
			lo = n
		}
		if n.X+n.Y > hi.X+hi.Y {
			hi = n
		}
	}

	return lo.ID, hi.ID, nil
}

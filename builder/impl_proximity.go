// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_proximity.go - proximity generator on a rectangular cloud.
//
// Canonical model:
//   • Node i is placed uniformly in [pad, w−pad] × [pad, h−pad] (x drawn, then y).
//   • Connection pass, nodes in creation order: a node below the degree cap
//     gathers every other below-cap, non-adjacent node within the radius,
//     sorts them by Euclidean distance (stable, so creation order breaks ties)
//     and links to the closest ones while both ends stay below the cap.
//   • Repair pass: every node still without an edge is linked to its nearest
//     below-cap node at any distance; if every other node is at the cap, to its
//     nearest node overall. A single-node graph stays isolated.
//
// The cloud is not guaranteed to be connected, only free of isolated nodes.
//
// Complexity:
//   • Time: O(n² log n) for the connection pass, O(n²) for repair.
//   • Space: O(n).

package builder

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/labyrinth/core"
)

const methodProximity = "Proximity"

// candidate is a potential neighbour with its distance.
type candidate struct {
	idx  int
	dist float64
}

// Proximity generates a cloud of nodeCount nodes connected to near neighbours.
func Proximity(nodeCount, maxConnections int, radius float64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodProximity, cfg.err)
	}
	if nodeCount < 1 {
		return nil, fmt.Errorf("%s: nodeCount=%d: %w", methodProximity, nodeCount, ErrTooFewNodes)
	}
	if maxConnections < 1 {
		return nil, fmt.Errorf("%s: maxConnections=%d: %w", methodProximity, maxConnections, ErrBadCapacity)
	}
	if radius < 0 || math.IsNaN(radius) {
		return nil, fmt.Errorf("%s: radius=%v: %w", methodProximity, radius, ErrBadRadius)
	}

	g := core.New()
	ids := make([]string, nodeCount)
	pos := make([]core.Point, nodeCount)
	spanX := cfg.width - 2*cfg.padding
	spanY := cfg.height - 2*cfg.padding
	for i := 0; i < nodeCount; i++ {
		ids[i] = nodeID(i)
		pos[i].X = cfg.padding + cfg.src.Float64()*spanX
		pos[i].Y = cfg.padding + cfg.src.Float64()*spanY
		if err := g.AddNode(ids[i], pos[i].X, pos[i].Y); err != nil {
			return nil, fmt.Errorf("%s: %w", methodProximity, err)
		}
	}

	full := func(i int) bool { return g.Degree(ids[i]) >= maxConnections }
	link := func(i, j int) error {
		if err := g.AddEdge(ids[i], ids[j]); err != nil {
			return fmt.Errorf("%s: %w", methodProximity, err)
		}
		return nil
	}

	// connection pass
	cands := make([]candidate, 0, nodeCount)
	for i := 0; i < nodeCount; i++ {
		if full(i) {
			continue
		}
		cands = cands[:0]
		for j := 0; j < nodeCount; j++ {
			if j == i || full(j) || g.HasEdge(ids[i], ids[j]) {
				continue
			}
			if d := distance(pos[i], pos[j]); d <= radius {
				cands = append(cands, candidate{idx: j, dist: d})
			}
		}
		slices.SortStableFunc(cands, func(a, b candidate) int { return cmp.Compare(a.dist, b.dist) })
		for _, c := range cands {
			if full(i) {
				break
			}
			if full(c.idx) {
				continue
			}
			if err := link(i, c.idx); err != nil {
				return nil, err
			}
		}
	}

	// repair pass
	for i := 0; i < nodeCount; i++ {
		if g.Degree(ids[i]) > 0 {
			continue
		}
		best, fallback := -1, -1
		bestD, fallbackD := math.Inf(1), math.Inf(1)
		for j := 0; j < nodeCount; j++ {
			if j == i {
				continue
			}
			d := distance(pos[i], pos[j])
			if d < fallbackD {
				fallback, fallbackD = j, d
			}
			if !full(j) && d < bestD {
				best, bestD = j, d
			}
		}
		if best < 0 {
			best = fallback
		}
		if best < 0 {
			continue // single node
		}
		if err := link(i, best); err != nil {
			return nil, err
		}
	}

	return g, nil
}

func distance(a, b core.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SPDX-License-Identifier: MIT
// Package: labyrinth/builder
//
// impl_circular.go - degree-target generator on a circular layout.
//
// Canonical model:
//   • Node i sits at angle 2π·i/n on the configured circle.
//   • Random spanning tree: repeatedly join a random already-connected node to
//     a random not-yet-connected node. Connectivity holds before any extra edge.
//   • Then attempt max(0, floor(n·avgDegree/2) − (n−1)) extra edges between
//     random pairs; an attempt that picks the same node twice or an existing
//     edge is skipped, not retried. The realised average degree can therefore
//     fall short of the target; that is accepted behaviour.
//
// Determinism:
//   • Draw order per tree step: connected index, then unconnected index.
//   • Draw order per extra edge: first endpoint, then second endpoint.
//   • Both pools keep insertion order; removal preserves the order of the rest.
//
// Complexity:
//   • Time: O(n²) worst case for pool removal plus O(k·d) for k extra attempts.
//   • Space: O(n).

package builder

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/rng"
)

const methodCircular = "Circular"

// Circular generates a connected graph of nodeCount nodes on a circle with an
// average degree approaching avgDegree.
func Circular(nodeCount int, avgDegree float64, opts ...BuilderOption) (*core.Graph, error) {
	cfg := newBuilderConfig(opts...)
	if cfg.err != nil {
		return nil, fmt.Errorf("%s: %w", methodCircular, cfg.err)
	}
	if nodeCount < 1 {
		return nil, fmt.Errorf("%s: nodeCount=%d: %w", methodCircular, nodeCount, ErrTooFewNodes)
	}
	if avgDegree < 0 || math.IsNaN(avgDegree) || math.IsInf(avgDegree, 0) {
		return nil, fmt.Errorf("%s: avgDegree=%v: %w", methodCircular, avgDegree, ErrBadDegree)
	}

	g := core.New()
	ids := make([]string, nodeCount)
	for i := 0; i < nodeCount; i++ {
		angle := float64(i) / float64(nodeCount) * 2 * math.Pi
		ids[i] = nodeID(i)
		x := cfg.centerX + cfg.radius*math.Cos(angle)
		y := cfg.centerY + cfg.radius*math.Sin(angle)
		if err := g.AddNode(ids[i], x, y); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCircular, err)
		}
	}

	if err := spanningTree(g, ids, cfg.src); err != nil {
		return nil, fmt.Errorf("%s: %w", methodCircular, err)
	}

	target := int(math.Floor(float64(nodeCount) * avgDegree / 2))
	extra := max(0, target-(nodeCount-1))
	for i := 0; i < extra; i++ {
		u := ids[rng.Intn(cfg.src, nodeCount)]
		v := ids[rng.Intn(cfg.src, nodeCount)]
		if u == v || g.HasEdge(u, v) {
			continue
		}
		if err := g.AddEdge(u, v); err != nil {
			return nil, fmt.Errorf("%s: %w", methodCircular, err)
		}
	}

	return g, nil
}

// spanningTree joins every node of ids into one random tree.
func spanningTree(g *core.Graph, ids []string, src rng.Source) error {
	connected := []string{ids[0]}
	unconnected := slices.Clone(ids[1:])
	for len(unconnected) > 0 {
		u := connected[rng.Intn(src, len(connected))]
		k := rng.Intn(src, len(unconnected))
		v := unconnected[k]
		if err := g.AddEdge(u, v); err != nil {
			return err
		}
		connected = append(connected, v)
		unconnected = slices.Delete(unconnected, k, k+1)
	}

	return nil
}

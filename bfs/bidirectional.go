package bfs

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/trace"
)

// frontier is one side of a bidirectional search. parent maps every node the
// side has discovered to its predecessor; the side's root maps to "".
type frontier struct {
	side   trace.Side
	queue  []string
	parent map[string]string

	current, discovered, visited trace.Kind
}

func newFrontier(side trace.Side, root string, n int) *frontier {
	f := &frontier{
		side:   side,
		queue:  []string{root},
		parent: make(map[string]string, n),
	}
	f.parent[root] = ""
	if side == trace.Forward {
		f.current, f.discovered, f.visited = trace.KindCurrentForward, trace.KindDiscoveredForward, trace.KindVisitedForward
	} else {
		f.current, f.discovered, f.visited = trace.KindCurrentBackward, trace.KindDiscoveredBackward, trace.KindVisitedBackward
	}
	return f
}

func (f *frontier) has(id string) bool {
	_, ok := f.parent[id]
	return ok
}

// pathTo returns the side's path from its root to id.
func (f *frontier) pathTo(id string) []string {
	var path []string
	for cur := id; cur != ""; cur = f.parent[cur] {
		path = append(path, cur)
	}
	slices.Reverse(path)
	return path
}

// meeting records where the two frontiers touched: current is the node being
// expanded on side, neighbor the node already owned by the other side.
type meeting struct {
	side              trace.Side
	current, neighbor string
}

// bidirectional holds the mutable state of one search.
type bidirectional struct {
	g        *core.Graph
	fwd, bwd *frontier
	rec      *trace.Recorder
}

// Bidirectional finds a minimum-hop path between start and end by growing one
// breadth-first frontier from each endpoint, a full level per side per round
// (forward first). Each neighbour is checked against the opposite side before
// novelty on its own side, and the search stops at the first contact.
//
// Trace per round (level ≥ 1), per side:
//
//	current-<side> for each node of the level, in queue order
//	goal-<side> for each newly discovered neighbour
//	visited-<side> once the node's neighbours are done
//
// On contact it emits intersection (with the level) and one path step per
// node of the combined path. start-forward/start-backward open the trace at
// level 0. When start == end the search meets immediately at start.
//
// WithOnStep and WithContext are honoured; the other options are ignored.
// Cancellation is checked once per round.
//
// Complexity: O(V + E) time and memory.
func Bidirectional(g *core.Graph, start, end string, opts ...Option) (*BidirectionalResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}
	if !g.HasNode(end) {
		return nil, fmt.Errorf("%w: %q", ErrEndVertexNotFound, end)
	}

	b := &bidirectional{
		g:   g,
		fwd: newFrontier(trace.Forward, start, g.Len()),
		bwd: newFrontier(trace.Backward, end, g.Len()),
		rec: trace.NewRecorder(o.OnStep),
	}
	b.rec.Emit(trace.Step{NodeID: start, Kind: trace.KindStartForward, Side: trace.Forward})
	b.rec.Emit(trace.Step{NodeID: end, Kind: trace.KindStartBackward, Side: trace.Backward})

	if start == end {
		return b.finish([]string{start}, start, 0), nil
	}

	for level := 1; len(b.fwd.queue) > 0 && len(b.bwd.queue) > 0; level++ {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		if m, ok := b.expand(b.fwd, b.bwd, level); ok {
			return b.join(m, level), nil
		}
		if m, ok := b.expand(b.bwd, b.fwd, level); ok {
			return b.join(m, level), nil
		}
	}

	return &BidirectionalResult{Path: []string{}, Steps: b.rec.Steps()}, nil
}

// expand processes every node of f's current level. It returns the first
// contact with other, leaving the rest of the level unprocessed.
func (b *bidirectional) expand(f, other *frontier, level int) (meeting, bool) {
	var next []string
	for _, cur := range f.queue {
		b.rec.Emit(trace.Step{NodeID: cur, Kind: f.current, Side: f.side, Level: level})

		node, ok := b.g.Node(cur)
		if !ok {
			continue
		}
		for _, nb := range node.Neighbors {
			if other.has(nb) {
				return meeting{side: f.side, current: cur, neighbor: nb}, true
			}
			if f.has(nb) {
				continue
			}
			f.parent[nb] = cur
			next = append(next, nb)
			b.rec.Emit(trace.Step{NodeID: nb, Kind: f.discovered, Side: f.side, Level: level})
		}

		b.rec.Emit(trace.Step{NodeID: cur, Kind: f.visited, Side: f.side, Level: level})
	}
	f.queue = next

	return meeting{}, false
}

// join stitches the forward path with the reversed backward path at m.
func (b *bidirectional) join(m meeting, level int) *BidirectionalResult {
	var head, tail []string
	if m.side == trace.Forward {
		head, tail = b.fwd.pathTo(m.current), b.bwd.pathTo(m.neighbor)
	} else {
		head, tail = b.fwd.pathTo(m.neighbor), b.bwd.pathTo(m.current)
	}
	slices.Reverse(tail)

	return b.finish(append(head, tail...), m.neighbor, level)
}

func (b *bidirectional) finish(path []string, at string, level int) *BidirectionalResult {
	b.rec.Emit(trace.Step{NodeID: at, Kind: trace.KindIntersection, Level: level})
	b.rec.EmitPath(trace.KindPath, path)

	return &BidirectionalResult{
		Path:         path,
		Steps:        b.rec.Steps(),
		Found:        true,
		Intersection: at,
	}
}

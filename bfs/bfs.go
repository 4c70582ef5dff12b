package bfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/trace"
)

// sweep is the state of one single-source search.
type sweep struct {
	g     *core.Graph
	opts  Options
	rec   *trace.Recorder
	queue []string
	res   *BFSResult
}

// BFS floods g level by level from start and records the run as a trace a
// renderer can replay next to Dijkstra and A*.
//
// Trace, per dequeued node u at depth d:
//
//	current  u                 (score distance d)
//	visiting v                 for each newly discovered neighbour, distance d+1
//	visited  u
//
// With WithTarget the search stops as soon as the target is dequeued and the
// trace ends with one path step per node from start to target. Without a
// target it runs until the component of start is exhausted. On a graph with
// unit edges the trace of BFS(g, s, WithTarget(t)) equals that of
// dijkstra.Dijkstra(g, s, t).
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrEndVertexNotFound (target),
// ErrOptionViolation, the context error, or a wrapped OnVisit error. On a
// hook error or cancellation the partial result is returned with the error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
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
	if o.Target != "" && !g.HasNode(o.Target) {
		return nil, fmt.Errorf("%w: %q", ErrEndVertexNotFound, o.Target)
	}

	n := g.Len()
	s := &sweep{
		g:     g,
		opts:  o,
		rec:   trace.NewRecorder(o.OnStep),
		queue: make([]string, 0, n),
		res: &BFSResult{
			Start:  start,
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	s.discover(start, "", 0)
	err := s.drain()
	s.finish()

	return s.res, err
}

// discover claims id at depth d. The root gets no trace step; it appears as
// current when dequeued.
func (s *sweep) discover(id, parent string, d int) {
	s.res.Depth[id] = d
	if parent != "" {
		s.res.Parent[id] = parent
		s.emit(id, trace.KindVisiting, d)
	}
	if s.opts.OnEnqueue != nil {
		s.opts.OnEnqueue(id, d)
	}
	s.queue = append(s.queue, id)
}

func (s *sweep) drain() error {
	for len(s.queue) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		u := s.queue[0]
		s.queue = s.queue[1:]
		d := s.res.Depth[u]
		if s.opts.OnDequeue != nil {
			s.opts.OnDequeue(u, d)
		}

		s.res.Order = append(s.res.Order, u)
		s.emit(u, trace.KindCurrent, d)
		if s.opts.OnVisit != nil {
			if err := s.opts.OnVisit(u, d); err != nil {
				return fmt.Errorf("bfs: OnVisit hook for %q: %w", u, err)
			}
		}
		if u == s.opts.Target {
			s.res.Found = true
			return nil
		}

		// MaxDepth 0 means unlimited
		if s.opts.MaxDepth == 0 || d < s.opts.MaxDepth {
			for _, v := range s.g.Neighbors(u) {
				if _, seen := s.res.Depth[v]; seen {
					continue
				}
				if s.opts.FilterNeighbor != nil && !s.opts.FilterNeighbor(u, v) {
					continue
				}
				s.discover(v, u, d+1)
			}
		}

		s.emit(u, trace.KindVisited, d)
	}

	return nil
}

// finish fills Path for a targeted search and seals the trace.
func (s *sweep) finish() {
	if s.opts.Target != "" {
		s.res.Path = []string{}
		if s.res.Found {
			s.res.Path, _ = s.res.PathTo(s.opts.Target)
			s.rec.EmitPath(trace.KindPath, s.res.Path)
		}
	}
	s.res.Steps = s.rec.Steps()
}

func (s *sweep) emit(id string, kind trace.Kind, d int) {
	s.rec.Emit(trace.Step{NodeID: id, Kind: kind, Score: &trace.Score{Distance: d}})
}

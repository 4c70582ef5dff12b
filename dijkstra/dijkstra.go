package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/pqueue"
	"github.com/katalvlaran/labyrinth/trace"
)

// heuristic estimates the remaining hops from id to the target.
// A nil heuristic turns the search into plain Dijkstra.
type heuristic func(id string) int

// Dijkstra finds a minimum-hop path from start to end.
//
// "current" and "visited" steps carry the node's settled distance; "visiting"
// steps carry the improved tentative distance of the neighbour.
func Dijkstra(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	cfg, err := prepare("Dijkstra", g, start, end, opts)
	if err != nil {
		return nil, err
	}

	return newRunner(g, start, end, nil, cfg).run(), nil
}

// AStar finds a minimum-hop path from start to end, guided by the Manhattan
// distance between grid coordinates. Both endpoints must be "x,y" IDs;
// intermediate nodes with other IDs get a heuristic of 0.
//
// Steps carry Distance (g), Heuristic (h) and F (g+h). "current" and
// "visited" report the f-score the node was last queued with.
func AStar(g *core.Graph, start, end string, opts ...Option) (*Result, error) {
	cfg, err := prepare("AStar", g, start, end, opts)
	if err != nil {
		return nil, err
	}
	if _, err := Manhattan(start, end); err != nil {
		return nil, fmt.Errorf("AStar: %w", err)
	}
	ex, ey, _ := core.ParseGridID(end)
	h := func(id string) int {
		x, y, err := core.ParseGridID(id)
		if err != nil {
			return 0
		}
		return abs(x-ex) + abs(y-ey)
	}

	return newRunner(g, start, end, h, cfg).run(), nil
}

// Manhattan returns |ax−bx| + |ay−by| for two "x,y" grid IDs.
func Manhattan(a, b string) (int, error) {
	ax, ay, err := core.ParseGridID(a)
	if err != nil {
		return 0, err
	}
	bx, by, err := core.ParseGridID(b)
	if err != nil {
		return 0, err
	}

	return abs(ax-bx) + abs(ay-by), nil
}

// prepare applies options and validates the inputs shared by both searches.
func prepare(method string, g *core.Graph, start, end string, opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return cfg, fmt.Errorf("%s: %w", method, cfg.err)
	}
	if g == nil {
		return cfg, fmt.Errorf("%s: %w", method, ErrGraphNil)
	}
	if !g.HasNode(start) {
		return cfg, fmt.Errorf("%s: %q: %w", method, start, ErrStartNotFound)
	}
	if !g.HasNode(end) {
		return cfg, fmt.Errorf("%s: %q: %w", method, end, ErrEndNotFound)
	}

	return cfg, nil
}

// runner holds the mutable state of one search. It is discarded on return.
type runner struct {
	g          *core.Graph
	start, end string
	h          heuristic
	opts       Options

	dist    map[string]int    // best known hop count; absent means infinity
	fScore  map[string]int    // priority the node was last queued with
	prev    map[string]string // predecessor on the best known path
	visited map[string]bool   // finalized nodes
	pq      *pqueue.Queue[string, int]
	rec     *trace.Recorder
}

func newRunner(g *core.Graph, start, end string, h heuristic, opts Options) *runner {
	n := g.Len()
	return &runner{
		g:       g,
		start:   start,
		end:     end,
		h:       h,
		opts:    opts,
		dist:    make(map[string]int, n),
		fScore:  make(map[string]int, n),
		prev:    make(map[string]string, n),
		visited: make(map[string]bool, n),
		pq:      pqueue.New[string, int](n),
		rec:     trace.NewRecorder(opts.OnStep),
	}
}

func (r *runner) run() *Result {
	r.dist[r.start] = 0
	r.fScore[r.start] = r.estimate(r.start)
	r.pq.Enqueue(r.start, r.fScore[r.start])

	r.loop()

	// only a finalized end has a settled predecessor chain
	path := []string{}
	if r.visited[r.end] {
		path = r.reconstruct()
	}
	r.rec.EmitPath(trace.KindPath, path)

	return &Result{
		Path:  path,
		Steps: r.rec.Steps(),
		Found: len(path) > 0,
	}
}

func (r *runner) loop() {
	expanded := 0
	for !r.pq.IsEmpty() {
		u, _ := r.pq.Dequeue()
		// stale duplicate
		if r.visited[u] {
			continue
		}
		if r.opts.MaxExpansions > 0 && expanded >= r.opts.MaxExpansions {
			return
		}
		r.visited[u] = true
		expanded++

		r.emit(u, trace.KindCurrent, r.dist[u], r.fScore[u])
		if u == r.end {
			return
		}

		node, ok := r.g.Node(u)
		if !ok {
			continue
		}
		next := r.dist[u] + 1
		for _, v := range node.Neighbors {
			if r.visited[v] {
				continue
			}
			if old, seen := r.dist[v]; seen && next >= old {
				continue
			}
			r.dist[v] = next
			r.prev[v] = u
			r.fScore[v] = next + r.estimate(v)
			r.pq.Enqueue(v, r.fScore[v])
			r.emit(v, trace.KindVisiting, next, r.fScore[v])
		}

		r.emit(u, trace.KindVisited, r.dist[u], r.fScore[u])
	}
}

// reconstruct walks predecessors from end back to start. A walk that does not
// reach start yields an empty path.
func (r *runner) reconstruct() []string {
	path := []string{r.end}
	for cur := r.end; cur != r.start; {
		p, ok := r.prev[cur]
		if !ok {
			return []string{}
		}
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path
}

func (r *runner) estimate(id string) int {
	if r.h == nil {
		return 0
	}
	return r.h(id)
}

// emit records a scored step. Dijkstra steps carry only the distance.
func (r *runner) emit(id string, kind trace.Kind, dist, f int) {
	score := &trace.Score{Distance: dist}
	if r.h != nil {
		score.Heuristic = f - dist
		score.F = f
	}
	r.rec.Emit(trace.Step{NodeID: id, Kind: kind, Score: score})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package bfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/labyrinth/trace"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrEndVertexNotFound is returned when the end of a bidirectional search
	// or the BFS target is absent.
	ErrEndVertexNotFound = errors.New("bfs: end vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by PathTo for a vertex the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option adjusts a search. An invalid value is recorded and reported as
// ErrOptionViolation when the search runs.
type Option func(*Options)

// Options configures BFS and Bidirectional. Bidirectional reads only Ctx and
// OnStep.
type Options struct {
	Ctx context.Context

	// OnStep observes each trace step right after it is recorded.
	OnStep func(trace.Step)

	// Target stops BFS once this node is dequeued and fills BFSResult.Path.
	Target string

	// MaxDepth stops BFS from expanding nodes at this depth; 0 is unlimited.
	MaxDepth int

	// FilterNeighbor vetoes the edge curr→neighbor when it returns false.
	FilterNeighbor func(curr, neighbor string) bool

	// Hooks on the BFS queue. OnVisit may abort the run with an error.
	OnEnqueue func(id string, depth int)
	OnDequeue func(id string, depth int)
	OnVisit   func(id string, depth int) error

	err error
}

// DefaultOptions returns a background context, no target, no depth limit and
// no hooks.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext cancels the search when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep streams trace steps to fn.
func WithOnStep(fn func(trace.Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithTarget turns BFS into a point-to-point search ending at id.
func WithTarget(id string) Option {
	return func(o *Options) {
		if id == "" {
			o.err = fmt.Errorf("%w: empty target", ErrOptionViolation)
			return
		}
		o.Target = id
	}
}

// WithMaxDepth limits BFS to nodes at most d edges from the start.
// d == 0 removes the limit; d < 0 is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// WithOnEnqueue calls fn when a node joins the queue.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		o.OnEnqueue = fn
	}
}

// WithOnDequeue calls fn when a node leaves the queue.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		o.OnDequeue = fn
	}
}

// WithOnVisit calls fn as each node is expanded; an error stops BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// BFSResult is the outcome of a single-source search.
type BFSResult struct {
	Start string

	// Order lists nodes in expansion order.
	Order []string
	// Depth and Parent cover every discovered node; the start has no parent.
	Depth  map[string]int
	Parent map[string]string

	// Path and Found are set for a targeted search. Path is empty when the
	// target was not reached.
	Path  []string
	Found bool

	Steps trace.Trace
}

// Hops returns the number of edges on Path, or 0 when nothing was found.
func (r *BFSResult) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// PathTo rebuilds the start→dest path from Parent. Returns ErrNoPath if dest
// was never discovered.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %q", ErrNoPath, dest)
	}
	path := []string{dest}
	for cur := dest; cur != r.Start; {
		cur = r.Parent[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}

// BidirectionalResult holds the outcome of a bidirectional search:
//   - Path: start to end inclusive; empty if the frontiers never met.
//   - Steps: the full trace in emission order.
//   - Found: true iff the frontiers met.
//   - Intersection: the node where they met ("" when not found).
type BidirectionalResult struct {
	Path         []string
	Steps        trace.Trace
	Found        bool
	Intersection string
}

// Hops returns the number of edges on Path, or 0 when nothing was found.
func (r *BidirectionalResult) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

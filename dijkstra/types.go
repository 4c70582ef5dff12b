package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/trace"
)

// Sentinel errors returned by Dijkstra and AStar.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist in the graph.
	ErrStartNotFound = errors.New("dijkstra: start node not found")

	// ErrEndNotFound indicates that the end node does not exist in the graph.
	ErrEndNotFound = errors.New("dijkstra: end node not found")

	// ErrNotGridID is core.ErrNotGridID, re-exported for A* callers.
	ErrNotGridID = core.ErrNotGridID

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// Options configures a search run.
type Options struct {
	// OnStep, if non-nil, observes every trace step right after it is recorded.
	OnStep func(trace.Step)

	// MaxExpansions, if > 0, stops the search after that many nodes have been
	// finalized. The target is then usually reported as not found.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// Option configures a search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no observer and no expansion limit.
func DefaultOptions() Options {
	return Options{}
}

// WithOnStep registers an observer for trace steps.
func WithOnStep(fn func(trace.Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxExpansions bounds the number of finalized nodes.
//
//	n > 0:  stop after n expansions; unless end was among them the
//	        result is not found, even if end was already discovered
//	n == 0: no limit
//	n < 0:  invalid → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// Result is the outcome of a single search.
//
//   - Path: node IDs from start to end inclusive; empty if the end is unreachable.
//   - Steps: the full trace in emission order.
//   - Found: true iff Path is non-empty and ends at the requested end.
type Result struct {
	Path  []string
	Steps trace.Trace
	Found bool
}

// Hops returns the number of edges on Path, or 0 when nothing was found.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

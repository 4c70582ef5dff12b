package tour

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/trace"
)

// Sentinel errors returned by Search.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed.
	ErrGraphNil = errors.New("tour: graph is nil")

	// ErrStartNotFound indicates that the start node does not exist.
	ErrStartNotFound = errors.New("tour: start node not found")

	// ErrGoalNotFound indicates that a goal node does not exist.
	ErrGoalNotFound = errors.New("tour: goal node not found")

	// ErrDuplicateGoal indicates a goal listed twice or equal to the start.
	ErrDuplicateGoal = errors.New("tour: duplicate goal")

	// ErrTooManyGoals indicates more goals than WithMaxGoals allows.
	ErrTooManyGoals = errors.New("tour: too many goals")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("tour: invalid option supplied")
)

// Options configures Search.
type Options struct {
	// OnStep, if non-nil, observes every trace step right after it is recorded.
	OnStep func(trace.Step)

	// MaxGoals, if > 0, rejects requests with more goals.
	MaxGoals int

	err error
}

// Option configures Search via functional arguments.
type Option func(*Options)

// DefaultOptions returns Options with no observer and no goal limit.
func DefaultOptions() Options {
	return Options{}
}

// WithOnStep registers an observer for trace steps.
func WithOnStep(fn func(trace.Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxGoals bounds the goal count (n > 0); 0 means no limit.
func WithMaxGoals(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxGoals cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxGoals = n
	}
}

// Candidate is a valid tour considered during the search.
type Candidate struct {
	// Attempt is the 1-based generation index of the goal permutation.
	Attempt int
	// Order is the goal visiting order.
	Order []string
	// Path is the stitched walk from start through every goal.
	Path []string
}

// Hops returns the number of edges of the candidate's path.
func (c Candidate) Hops() int { return len(c.Path) - 1 }

// Result is the outcome of Search.
type Result struct {
	// Goals echoes the requested goals.
	Goals []string
	// Order is the winning goal order; nil when no tour is valid.
	Order []string
	// Path is the winning walk; empty when no tour is valid.
	Path []string
	// Pairs maps from → to → minimum-hop path for every connected pair of
	// distinct nodes in {start} ∪ goals.
	Pairs map[string]map[string][]string
	// Candidates lists every valid tour in generation order.
	Candidates []Candidate
	// Evaluated counts permutations tried, valid or not.
	Evaluated int
	// Steps is the tour-test/tour-best trace.
	Steps trace.Trace
	// Found is true iff at least one tour is valid.
	Found bool
}

// Hops returns the number of edges on Path, or 0 when nothing was found.
func (r *Result) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}

// Package trace defines the step vocabulary emitted by the search algorithms
// and an append-only recorder for it.
//
// A trace is the value of this library: external renderers replay it event by
// event (including stepping backwards), so a Trace is strictly ordered and
// matches the order in which the algorithm took its actions. Recorders only
// ever append.
//
// Kind strings are part of the wire contract with renderers and must stay
// stable.
package trace

// Kind tags a Step with the visual state it represents.
type Kind string

// Dijkstra and A* events.
const (
	// KindCurrent marks a node popped from the queue for expansion.
	KindCurrent Kind = "current"
	// KindVisiting marks a neighbour whose tentative distance just improved.
	KindVisiting Kind = "visiting"
	// KindVisited marks a node whose neighbours have all been relaxed.
	KindVisited Kind = "visited"
	// KindPath marks a member of the final path, emitted start to end.
	KindPath Kind = "path"
)

// Bidirectional BFS events. Each carries the Side and Level it happened on.
const (
	KindStartForward  Kind = "start-forward"
	KindStartBackward Kind = "start-backward"

	// KindDiscoveredForward marks a node newly reached by the forward frontier.
	KindDiscoveredForward Kind = "goal-forward"
	// KindDiscoveredBackward marks a node newly reached by the backward frontier.
	KindDiscoveredBackward Kind = "goal-backward"

	KindCurrentForward  Kind = "current-forward"
	KindCurrentBackward Kind = "current-backward"
	KindVisitedForward  Kind = "visited-forward"
	KindVisitedBackward Kind = "visited-backward"

	// KindIntersection marks the node where the two frontiers met.
	KindIntersection Kind = "intersection"
)

// Tour search events.
const (
	// KindTourTest marks a node of a tested, valid tour; Attempt numbers the tour.
	KindTourTest Kind = "tour-test"
	// KindTourBest marks a node of the winning tour.
	KindTourBest Kind = "tour-best"
)

// Side identifies the frontier of a bidirectional search.
type Side string

const (
	Forward  Side = "forward"
	Backward Side = "backward"
)

// Score carries the search metrics attached to Dijkstra, A* and BFS events.
// Heuristic and F are zero outside A* and always encoded.
type Score struct {
	Distance  int `json:"distance"`
	Heuristic int `json:"heuristic"`
	F         int `json:"fScore"`
}

// Step is one observable moment of an algorithm run.
type Step struct {
	NodeID string `json:"nodeId"`
	Kind   Kind   `json:"type"`

	// Side and Level are set by bidirectional BFS. Level is always encoded;
	// the opening start steps sit at level 0.
	Side  Side `json:"side,omitempty"`
	Level int  `json:"level"`

	// Attempt numbers tested tours (1-based) in tour search.
	Attempt int `json:"attempt,omitempty"`

	// Score is set on Dijkstra, A* and BFS current, visiting and visited events.
	Score *Score `json:"score,omitempty"`
}

// Trace is an ordered sequence of steps.
type Trace []Step

// OfKind returns the steps whose Kind is one of kinds, preserving order.
func (t Trace) OfKind(kinds ...Kind) Trace {
	var out Trace
	for _, s := range t {
		for _, k := range kinds {
			if s.Kind == k {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// Count returns the number of steps of the given kind.
func (t Trace) Count(kind Kind) int {
	n := 0
	for _, s := range t {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// NodeIDs returns the node IDs of the steps in order.
func (t Trace) NodeIDs() []string {
	out := make([]string, len(t))
	for i, s := range t {
		out[i] = s.NodeID
	}
	return out
}

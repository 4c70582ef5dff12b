package trace

// Recorder accumulates steps in emission order. An optional observer sees
// every step right after it is appended, which lets callers stream progress
// while a search is still running.
//
// A Recorder belongs to a single algorithm call and is not safe for
// concurrent use.
type Recorder struct {
	steps   Trace
	observe func(Step)
}

// NewRecorder returns an empty recorder. observe may be nil.
func NewRecorder(observe func(Step)) *Recorder {
	return &Recorder{observe: observe}
}

// Emit appends s.
func (r *Recorder) Emit(s Step) {
	r.steps = append(r.steps, s)
	if r.observe != nil {
		r.observe(s)
	}
}

// EmitPath appends one step of the given kind per node of path, in order.
func (r *Recorder) EmitPath(kind Kind, path []string) {
	for _, id := range path {
		r.Emit(Step{NodeID: id, Kind: kind})
	}
}

// Steps returns the recorded trace. The recorder must not be used afterwards.
func (r *Recorder) Steps() Trace {
	return r.steps
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int { return len(r.steps) }

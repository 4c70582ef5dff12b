package tour

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/trace"
)

// Search finds the shortest walk from start through every goal.
//
// With no goals the walk is just [start]. Goals unreachable from the rest
// make every tour invalid: the result then has Found == false, an empty Path
// and the (possibly partial) pairwise table.
func Search(g *core.Graph, start string, goals []string, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, fmt.Errorf("Search: %w", o.err)
	}
	if err := validate(g, start, goals, o); err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	pairs, err := pairwise(g, append([]string{start}, goals...))
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	res := &Result{
		Goals: slices.Clone(goals),
		Path:  []string{},
		Pairs: pairs,
	}
	rec := trace.NewRecorder(o.OnStep)

	best := -1
	for i, perm := range Permutations(goals) {
		res.Evaluated++
		path, ok := stitch(pairs, start, perm)
		if !ok {
			continue
		}
		c := Candidate{Attempt: i + 1, Order: perm, Path: path}
		res.Candidates = append(res.Candidates, c)
		for _, id := range path {
			rec.Emit(trace.Step{NodeID: id, Kind: trace.KindTourTest, Attempt: c.Attempt})
		}
		if best < 0 || len(path) < len(res.Candidates[best].Path) {
			best = len(res.Candidates) - 1
		}
	}

	if best >= 0 {
		win := res.Candidates[best]
		res.Order = win.Order
		res.Path = win.Path
		res.Found = true
		for _, id := range win.Path {
			rec.Emit(trace.Step{NodeID: id, Kind: trace.KindTourBest, Attempt: win.Attempt})
		}
	}
	res.Steps = rec.Steps()

	return res, nil
}

func validate(g *core.Graph, start string, goals []string, o Options) error {
	if g == nil {
		return ErrGraphNil
	}
	if !g.HasNode(start) {
		return fmt.Errorf("%q: %w", start, ErrStartNotFound)
	}
	if o.MaxGoals > 0 && len(goals) > o.MaxGoals {
		return fmt.Errorf("%d goals, limit %d: %w", len(goals), o.MaxGoals, ErrTooManyGoals)
	}
	seen := map[string]bool{start: true}
	for _, id := range goals {
		if !g.HasNode(id) {
			return fmt.Errorf("%q: %w", id, ErrGoalNotFound)
		}
		if seen[id] {
			return fmt.Errorf("%q: %w", id, ErrDuplicateGoal)
		}
		seen[id] = true
	}

	return nil
}

// pairwise computes the minimum-hop path between every ordered pair of
// distinct nodes. Unconnected pairs are left out.
func pairwise(g *core.Graph, nodes []string) (map[string]map[string][]string, error) {
	pairs := make(map[string]map[string][]string, len(nodes))
	for _, from := range nodes {
		row := make(map[string][]string, len(nodes)-1)
		for _, to := range nodes {
			if from == to {
				continue
			}
			r, err := bfs.Bidirectional(g, from, to)
			if err != nil {
				return nil, err
			}
			if r.Found {
				row[to] = r.Path
			}
		}
		pairs[from] = row
	}

	return pairs, nil
}

// stitch concatenates the segments start→order[0]→…→order[k-1], dropping the
// first node of every segment after the first.
func stitch(pairs map[string]map[string][]string, start string, order []string) ([]string, bool) {
	path := []string{start}
	from := start
	for _, to := range order {
		seg, ok := pairs[from][to]
		if !ok {
			return nil, false
		}
		path = append(path, seg[1:]...)
		from = to
	}

	return path, true
}

// Permutations returns every ordering of ids. The i-th element is taken as the
// head in turn, followed by each permutation of the rest, so [A B C] yields
// ABC, ACB, BAC, BCA, CAB, CBA. An empty input yields one empty ordering.
func Permutations(ids []string) [][]string {
	if len(ids) <= 1 {
		return [][]string{append(make([]string, 0, len(ids)), ids...)}
	}
	var out [][]string
	for i, head := range ids {
		rest := make([]string, 0, len(ids)-1)
		rest = append(rest, ids[:i]...)
		rest = append(rest, ids[i+1:]...)
		for _, tail := range Permutations(rest) {
			out = append(out, append([]string{head}, tail...))
		}
	}

	return out
}

package dfs

import (
	"slices"
	"strings"

	"github.com/katalvlaran/labyrinth/core"
)

// DetectCycles lists the cycles closed by DFS back edges in g.
// Returns (true, cycles) if any are found, (false, nil) otherwise.
//
// Each back edge u→v (v Gray, v not u's parent) closes exactly one cycle
// [v … u v]. The set is a cycle basis of g, so it is empty iff g is a forest;
// it does not enumerate every simple cycle of g.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (C = #cycles, L = avg cycle length)
//   - Memory: O(V + L_max)
func DetectCycles(g *core.Graph) (bool, [][]string) {
	if g == nil {
		return false, nil
	}

	ids := g.IDs()
	c := &cycleFinder{
		g:     g,
		state: make(map[string]int, len(ids)),
		path:  make([]string, 0, len(ids)),
		seen:  make(map[string]struct{}),
	}
	for _, v := range ids {
		if c.state[v] == White {
			c.visit(v, "")
		}
	}
	if len(c.cycles) == 0 {
		return false, nil
	}
	slices.SortFunc(c.cycles, func(a, b []string) int {
		return strings.Compare(JoinSig(a), JoinSig(b))
	})

	return true, c.cycles
}

// IsForest reports whether g has no cycle.
func IsForest(g *core.Graph) bool {
	has, _ := DetectCycles(g)
	return !has
}

// cycleFinder holds the three-color DFS state of DetectCycles.
type cycleFinder struct {
	g      *core.Graph
	state  map[string]int
	path   []string // current DFS stack
	seen   map[string]struct{}
	cycles [][]string
}

func (c *cycleFinder) visit(id, parent string) {
	c.state[id] = Gray
	c.path = append(c.path, id)

	for _, nbr := range c.g.Neighbors(id) {
		// the tree edge back to the parent is not a cycle
		if nbr == parent {
			continue
		}
		switch c.state[nbr] {
		case White:
			c.visit(nbr, id)
		case Gray:
			c.record(nbr)
		}
	}

	c.path = c.path[:len(c.path)-1]
	c.state[id] = Black
}

// record extracts the cycle from start to the top of the stack, closes it
// and keeps it if its canonical form is new.
func (c *cycleFinder) record(start string) {
	idx := slices.Index(c.path, start)
	seq := append(slices.Clone(c.path[idx:]), start)

	sig, canon := canonical(seq)
	if _, dup := c.seen[sig]; dup {
		return
	}
	c.seen[sig] = struct{}{}
	c.cycles = append(c.cycles, canon)
}

// canonical returns the signature and closed form of the lexicographically
// smallest rotation of cycle or of its reversal. cycle is closed:
// cycle[0] == cycle[len(cycle)-1].
func canonical(cycle []string) (string, []string) {
	base := cycle[:len(cycle)-1]

	rotF := MinimalRotation(base)
	rev := slices.Clone(base)
	slices.Reverse(rev)
	rotB := MinimalRotation(rev)

	pick := rotF
	if slices.Compare(rotB, rotF) < 0 {
		pick = rotB
	}
	closed := append(slices.Clone(pick), pick[0])

	return JoinSig(closed), closed
}

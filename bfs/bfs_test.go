package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dijkstra"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/trace"
)

// chain builds ids[0]–ids[1]–…–ids[n-1].
func chain(t testing.TB, ids ...string) *core.Graph {
	t.Helper()
	g := core.New()
	for i, id := range ids {
		require.NoError(t, g.AddNode(id, float64(i), 0))
		if i > 0 {
			require.NoError(t, g.AddEdge(ids[i-1], id))
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := chain(t, "A")
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, "A", bfs.WithTarget(""))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.BFS(g, "A", bfs.WithTarget("missing"))
	assert.ErrorIs(t, err, bfs.ErrEndVertexNotFound)
}

// TestBFS_SimpleTraversal covers the trivial one-vertex graph.
func TestBFS_SimpleTraversal(t *testing.T) {
	res, err := bfs.BFS(chain(t, "A"), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
}

// TestCycleAndDepths covers a simple cycle and checks depths.
func TestCycleAndDepths(t *testing.T) {
	g := chain(t, "A", "B", "C", "D")
	require.NoError(t, g.AddEdge("D", "A"))

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	// A lists B then D
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)
	assert.Equal(t, "B", res.Parent["C"])
}

// TestBFS_Disconnected ensures BFS only explores the component of the start vertex.
func TestBFS_Disconnected(t *testing.T) {
	g := chain(t, "X", "Y")
	require.NoError(t, g.AddNode("P", 0, 1))
	require.NoError(t, g.AddNode("Q", 1, 1))
	require.NoError(t, g.AddEdge("P", "Q"))

	resX, err := bfs.BFS(g, "X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y"}, resX.Order)
	resP, err := bfs.BFS(g, "P")
	require.NoError(t, err)
	assert.Equal(t, []string{"P", "Q"}, resP.Order)
}

// TestBFS_MaxDepth verifies WithMaxDepth behavior for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := chain(t, "A", "B", "C")
	for d, want := range map[int][]string{
		1:  {"A", "B"},
		0:  {"A", "B", "C"},
		10: {"A", "B", "C"},
	} {
		res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(d))
		require.NoError(t, err)
		assert.Equal(t, want, res.Order, "MaxDepth=%d", d)
	}
}

// TestBFS_FilterNeighbor shows how filtering prunes certain edges.
func TestBFS_FilterNeighbor(t *testing.T) {
	g := chain(t, "A", "B", "C")
	res, err := bfs.BFS(g, "A",
		bfs.WithFilterNeighbor(func(curr, nbr string) bool {
			return !(curr == "B" && nbr == "C")
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_Hooks asserts that hooks fire in the expected sequence and count.
func TestBFS_Hooks(t *testing.T) {
	g := chain(t, "A", "B", "C")

	var enq, deq, vis []string
	entry := func(id string, d int) string { return id + "@" + strconv.Itoa(d) }

	_, err := bfs.BFS(
		g, "A",
		bfs.WithOnEnqueue(func(id string, d int) { enq = append(enq, entry(id, d)) }),
		bfs.WithOnDequeue(func(id string, d int) { deq = append(deq, entry(id, d)) }),
		bfs.WithOnVisit(func(id string, d int) error { vis = append(vis, entry(id, d)); return nil }),
	)
	require.NoError(t, err)

	want := []string{"A@0", "B@1", "C@2"}
	assert.Equal(t, want, enq)
	assert.Equal(t, want, deq)
	assert.Equal(t, want, vis)
}

// TestBFS_OnVisitAborts checks that a hook error stops the walk and is wrapped.
func TestBFS_OnVisitAborts(t *testing.T) {
	stop := errors.New("stop")
	res, err := bfs.BFS(chain(t, "A", "B", "C"), "A",
		bfs.WithOnVisit(func(id string, _ int) error {
			if id == "B" {
				return stop
			}
			return nil
		}))
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, []string{"A", "B"}, res.Order)
}

// TestBFS_PathTo covers both trivial (start→start) and unreachable targets.
func TestBFS_PathTo(t *testing.T) {
	g := chain(t, "X", "Y", "Z")
	require.NoError(t, g.AddNode("W", 9, 9))
	res, err := bfs.BFS(g, "X")
	require.NoError(t, err)

	path, err := res.PathTo("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, path)

	path, err = res.PathTo("Z")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Y", "Z"}, path)

	_, err = res.PathTo("W")
	assert.ErrorIs(t, err, bfs.ErrNoPath)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	ids := make([]string, 100)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
	}
	g := chain(t, ids...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "v0", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_ConcurrentSafety ensures two concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(t, "A", "B")
	errs := make(chan error, 2)
	for i := 0; i < 2; i++ {
		go func() { _, err := bfs.BFS(g, "A"); errs <- err }()
	}
	for i := 0; i < 2; i++ {
		assert.NoError(t, <-errs, "run #%d", i)
	}
}

// TestBFS_TraceToTarget pins the full trace of a targeted run on A–B–C.
func TestBFS_TraceToTarget(t *testing.T) {
	var observed trace.Trace
	res, err := bfs.BFS(chain(t, "A", "B", "C"), "A",
		bfs.WithTarget("C"),
		bfs.WithOnStep(func(s trace.Step) { observed = append(observed, s) }),
	)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Equal(t, 2, res.Hops())

	type ev struct {
		id   string
		kind trace.Kind
		dist int
	}
	want := []ev{
		{"A", trace.KindCurrent, 0},
		{"B", trace.KindVisiting, 1},
		{"A", trace.KindVisited, 0},
		{"B", trace.KindCurrent, 1},
		{"C", trace.KindVisiting, 2},
		{"B", trace.KindVisited, 1},
		{"C", trace.KindCurrent, 2},
	}
	require.Len(t, res.Steps, len(want)+3)
	for i, w := range want {
		s := res.Steps[i]
		require.NotNil(t, s.Score, "step %d", i)
		assert.Equal(t, ev{w.id, w.kind, w.dist}, ev{s.NodeID, s.Kind, s.Score.Distance}, "step %d", i)
	}
	assert.Equal(t, []string{"A", "B", "C"}, res.Steps.OfKind(trace.KindPath).NodeIDs())
	assert.Equal(t, res.Steps, observed)
}

// TestBFS_TargetUnreachable reports not-found with an empty path and no path steps.
func TestBFS_TargetUnreachable(t *testing.T) {
	g := chain(t, "A", "B")
	require.NoError(t, g.AddNode("Z", 5, 5))

	res, err := bfs.BFS(g, "A", bfs.WithTarget("Z"))
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Empty(t, res.Path)
	assert.NotNil(t, res.Path)
	assert.Zero(t, res.Steps.Count(trace.KindPath))
	assert.Equal(t, 2, res.Steps.Count(trace.KindCurrent))
}

// TestBFS_Untargeted floods the whole component and leaves Path unset.
func TestBFS_Untargeted(t *testing.T) {
	g, err := maze.Generate(6, 6, maze.WithSeed(3))
	require.NoError(t, err)

	res, err := bfs.BFS(g, "0,0")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Len(t, res.Order, g.Len())
	assert.Equal(t, g.Len(), res.Steps.Count(trace.KindCurrent))
	assert.Equal(t, g.Len()-1, res.Steps.Count(trace.KindVisiting))
}

// TestBFS_MatchesDijkstra checks that on unit edges the flood replays
// Dijkstra's trace step for step.
func TestBFS_MatchesDijkstra(t *testing.T) {
	for seed := uint32(1); seed <= 15; seed++ {
		g, err := maze.Generate(8, 8, maze.WithSeed(seed), maze.Braided())
		require.NoError(t, err)

		b, err := bfs.BFS(g, "0,0", bfs.WithTarget("7,7"))
		require.NoError(t, err)
		d, err := dijkstra.Dijkstra(g, "0,0", "7,7")
		require.NoError(t, err)

		assert.Equal(t, d.Found, b.Found, "seed %d", seed)
		assert.Equal(t, d.Path, b.Path, "seed %d", seed)
		assert.Equal(t, d.Steps, b.Steps, "seed %d", seed)
	}
}

// TestBFS_TargetIsStart stops on the first dequeue.
func TestBFS_TargetIsStart(t *testing.T) {
	res, err := bfs.BFS(chain(t, "A", "B"), "A", bfs.WithTarget("A"))
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"A"}, res.Path)
	assert.Equal(t, []trace.Kind{trace.KindCurrent, trace.KindPath},
		[]trace.Kind{res.Steps[0].Kind, res.Steps[1].Kind})
}

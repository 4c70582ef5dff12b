package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/builder"
	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
)

// script is an rng.Source replaying fixed values, cycling when exhausted.
type script struct {
	vals []float64
	i    int
}

func (s *script) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func TestCircular_Errors(t *testing.T) {
	_, err := builder.Circular(0, 2)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, err = builder.Circular(5, -1)
	assert.ErrorIs(t, err, builder.ErrBadDegree)
	_, err = builder.Circular(5, math.NaN())
	assert.ErrorIs(t, err, builder.ErrBadDegree)
	_, err = builder.Circular(5, 2, builder.WithSource(nil))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.Circular(5, 2, builder.WithRand(nil))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
	_, err = builder.Circular(5, 2, builder.WithCircle(0, 0, 0))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

func TestCircular_Layout(t *testing.T) {
	g, err := builder.Circular(4, 0, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n1", "n2", "n3"}, g.IDs())

	n0, _ := g.Node("n0")
	assert.InDelta(t, 500, n0.X, 1e-9)
	assert.InDelta(t, 300, n0.Y, 1e-9)
	n1, _ := g.Node("n1")
	assert.InDelta(t, 300, n1.X, 1e-9)
	assert.InDelta(t, 500, n1.Y, 1e-9)

	g, err = builder.Circular(2, 0, builder.WithSeed(1), builder.WithCircle(10, 20, 5))
	require.NoError(t, err)
	n0, _ = g.Node("n0")
	assert.InDelta(t, 15, n0.X, 1e-9)
	assert.InDelta(t, 20, n0.Y, 1e-9)
}

// TestCircular_SpanningTreeScripted drives the tree with a constant source:
// every draw picks index 0, so n0 becomes the hub.
func TestCircular_SpanningTreeScripted(t *testing.T) {
	g, err := builder.Circular(3, 0, builder.WithSource(&script{vals: []float64{0}}))
	require.NoError(t, err)
	assert.Equal(t, []string{"n1", "n2"}, g.Neighbors("n0"))
	assert.Equal(t, []string{"n0"}, g.Neighbors("n1"))
	assert.Equal(t, 2, g.EdgeCount())
}

func TestCircular_ConnectedAndBounded(t *testing.T) {
	for seed := uint32(0); seed < 20; seed++ {
		g, err := builder.Circular(15, 3, builder.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, g.Validate())
		assert.True(t, g.Connected(), "seed %d", seed)
		assert.GreaterOrEqual(t, g.EdgeCount(), 14)
		assert.LessOrEqual(t, g.EdgeCount(), 22) // floor(15·3/2)
	}
}

func TestCircular_LowDegreeIsTree(t *testing.T) {
	g, err := builder.Circular(10, 1.5, builder.WithSeed(8))
	require.NoError(t, err)
	assert.Equal(t, 9, g.EdgeCount())
	assert.True(t, g.Connected())
	assert.True(t, dfs.IsForest(g))

	g, err = builder.Circular(1, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
}

// TestCircular_Undershoot documents that colliding picks are skipped, not retried:
// with a source that always picks the same node no extra edge can be added.
func TestCircular_Undershoot(t *testing.T) {
	g, err := builder.Circular(6, 5, builder.WithSource(&script{vals: []float64{0}}))
	require.NoError(t, err)
	assert.Equal(t, 5, g.EdgeCount())
}

func TestCircular_SeedDeterminism(t *testing.T) {
	a, err := builder.Circular(25, 4, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.Circular(25, 4, builder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Nodes(), b.Nodes())

	c, err := builder.Circular(25, 4, builder.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	d, err := builder.Circular(25, 4, builder.WithRand(rand.New(rand.NewSource(99))))
	require.NoError(t, err)
	assert.Equal(t, c.Nodes(), d.Nodes())
}

func TestProximity_Errors(t *testing.T) {
	_, err := builder.Proximity(0, 3, 100)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)
	_, err = builder.Proximity(5, 0, 100)
	assert.ErrorIs(t, err, builder.ErrBadCapacity)
	_, err = builder.Proximity(5, 3, -1)
	assert.ErrorIs(t, err, builder.ErrBadRadius)
	_, err = builder.Proximity(5, 3, 10, builder.WithBounds(100, 50, 30))
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}

// TestProximity_Scripted places three nodes by hand: (0,0), (10,0), (90,90).
func TestProximity_Scripted(t *testing.T) {
	positions := []float64{0, 0, 0.1, 0, 0.9, 0.9}

	g, err := builder.Proximity(3, 2, 20,
		builder.WithBounds(100, 100, 0),
		builder.WithSource(&script{vals: positions}))
	require.NoError(t, err)
	n2, _ := g.Node("n2")
	assert.InDelta(t, 90, n2.X, 1e-9)
	assert.InDelta(t, 90, n2.Y, 1e-9)
	// n0–n1 from the radius pass, n2 repaired to its nearest node n1.
	assert.Equal(t, []string{"n1"}, g.Neighbors("n0"))
	assert.Equal(t, []string{"n0", "n2"}, g.Neighbors("n1"))
	assert.Equal(t, []string{"n1"}, g.Neighbors("n2"))

	// With a cap of 1 every other node is full when n2 is repaired,
	// so it falls back to the nearest node regardless of the cap.
	g, err = builder.Proximity(3, 1, 20,
		builder.WithBounds(100, 100, 0),
		builder.WithSource(&script{vals: positions}))
	require.NoError(t, err)
	assert.Equal(t, []string{"n0", "n2"}, g.Neighbors("n1"))
}

func TestProximity_RadiusZeroOnlyRepairs(t *testing.T) {
	g, err := builder.Proximity(12, 3, 0, builder.WithSeed(4))
	require.NoError(t, err)
	for _, id := range g.IDs() {
		assert.GreaterOrEqual(t, g.Degree(id), 1, id)
	}
}

func TestProximity_Invariants(t *testing.T) {
	for seed := uint32(0); seed < 15; seed++ {
		g, err := builder.Proximity(30, 4, 60, builder.WithSeed(seed))
		require.NoError(t, err)
		require.NoError(t, g.Validate())
		for _, n := range g.Nodes() {
			assert.GreaterOrEqual(t, len(n.Neighbors), 1, "seed %d node %s isolated", seed, n.ID)
			assert.LessOrEqual(t, len(n.Neighbors), 4, "seed %d node %s over cap", seed, n.ID)
			assert.True(t, n.X >= 40 && n.X <= 760, "x out of bounds: %v", n.X)
			assert.True(t, n.Y >= 40 && n.Y <= 560, "y out of bounds: %v", n.Y)
		}
	}
}

func TestProximity_SingleNode(t *testing.T) {
	g, err := builder.Proximity(1, 3, 50, builder.WithSeed(2))
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())
	assert.Equal(t, 0, g.EdgeCount())
}

func TestProximity_SeedDeterminism(t *testing.T) {
	a, err := builder.Proximity(40, 3, 120, builder.WithSeed(2024))
	require.NoError(t, err)
	b, err := builder.Proximity(40, 3, 120, builder.WithSeed(2024))
	require.NoError(t, err)
	assert.Equal(t, a.Nodes(), b.Nodes())
}

func TestRandomGraph_Dispatch(t *testing.T) {
	assert.False(t, builder.Spec{NodeCount: 5, AvgDegree: 3}.Proximal())
	assert.True(t, builder.Spec{NodeCount: 5, MaxConnectionsPerNode: 2}.Proximal())
	assert.True(t, builder.Spec{NodeCount: 5, ConnectionRadius: 10}.Proximal())

	circ, err := builder.RandomGraph(builder.Spec{NodeCount: 8, AvgDegree: 3}, builder.WithSeed(5))
	require.NoError(t, err)
	want, err := builder.Circular(8, 3, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, want.Nodes(), circ.Nodes())

	cloud, err := builder.RandomGraph(builder.Spec{NodeCount: 8, MaxConnectionsPerNode: 3, ConnectionRadius: 200}, builder.WithSeed(5))
	require.NoError(t, err)
	want, err = builder.Proximity(8, 3, 200, builder.WithSeed(5))
	require.NoError(t, err)
	assert.Equal(t, want.Nodes(), cloud.Nodes())

	_, err = builder.RandomGraph(builder.Spec{NodeCount: 8, ConnectionRadius: 50})
	assert.ErrorIs(t, err, builder.ErrBadCapacity)
}

func TestFindOppositeCornerNodes(t *testing.T) {
	_, _, err := builder.FindOppositeCornerNodes(core.New())
	assert.ErrorIs(t, err, builder.ErrEmptyGraph)
	_, _, err = builder.FindOppositeCornerNodes(nil)
	assert.ErrorIs(t, err, builder.ErrEmptyGraph)

	g := core.New()
	require.NoError(t, g.AddNode("mid", 50, 50))
	require.NoError(t, g.AddNode("tl", 1, 2))
	require.NoError(t, g.AddNode("tl2", 2, 1)) // ties with tl, inserted later
	require.NoError(t, g.AddNode("br", 90, 95))
	lo, hi, err := builder.FindOppositeCornerNodes(g)
	require.NoError(t, err)
	assert.Equal(t, "tl", lo)
	assert.Equal(t, "br", hi)

	single := core.New()
	require.NoError(t, single.AddNode("only", 3, 3))
	lo, hi, err = builder.FindOppositeCornerNodes(single)
	require.NoError(t, err)
	assert.Equal(t, "only", lo)
	assert.Equal(t, "only", hi)
}

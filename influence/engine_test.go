package influence_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/influence"
	"github.com/katalvlaran/influence/matrix"
)

type edgeSpec struct {
	from, to string
	w        float64
}

// buildGraph creates a graph with the given node values and weighted edges.
func buildGraph(t *testing.T, values map[string]float64, edges []edgeSpec, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for id, v := range values {
		require.NoError(t, g.AddVertex(id, core.WithValue(v)))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

func chain(t *testing.T) *core.Graph {
	return buildGraph(t,
		map[string]float64{"A": 1, "B": 1, "C": 1},
		[]edgeSpec{{"A", "B", 0.5}, {"B", "C", 1.0}},
	)
}

// recorder counts observer events.
type recorder struct {
	contributions, barriers, cycles int
	done                            map[string]float64
}

func (r *recorder) Contribution(string, string, int, float64) { r.contributions++ }
func (r *recorder) Barrier(string, string)                    { r.barriers++ }
func (r *recorder) CycleTruncated(string, string)             { r.cycles++ }
func (r *recorder) SourceDone(s string, idx float64) {
	if r.done == nil {
		r.done = map[string]float64{}
	}
	r.done[s] = idx
}

func TestCompute_Chain(t *testing.T) {
	g := chain(t)
	e := influence.NewEngine(nil)

	got, err := e.Compute(context.Background(), g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got["A"], 1e-12)
	assert.InDelta(t, 1.0, got["B"], 1e-12)
	assert.Zero(t, got["C"])
	assert.InDelta(t, 1.0, e.State().Index("A"), 1e-12)
	assert.InDelta(t, 2.0, e.State().Total(), 1e-12)
	assert.Empty(t, e.Active())

	an, err := influence.AnalyticalGraph(context.Background(), g, nil)
	require.NoError(t, err)
	cmp := influence.Compare(got, an.ByVertex, 0)
	assert.True(t, cmp.Agree, "max delta %g at %s", cmp.MaxDelta, cmp.Worst)
	assert.InDelta(t, 2.0, an.Total, 1e-9)
}

func TestCompute_AcyclicMatchesAnalytical(t *testing.T) {
	// Diamond with a tail: D is reached over two paths from A.
	g := buildGraph(t,
		map[string]float64{"A": 2, "B": 3, "C": 0.5, "D": 4, "E": 1},
		[]edgeSpec{
			{"A", "B", 0.5}, {"A", "C", 0.25},
			{"B", "D", 0.5}, {"C", "D", 1.0},
			{"D", "E", 0.8}, {"A", "E", 0.1},
		},
	)
	e := influence.NewEngine(nil)
	got, err := e.Compute(context.Background(), g)
	require.NoError(t, err)

	// A: 0.5·3 + 0.25·0.5 + 0.1·1 + (0.25+0.25)·4 + (0.25+0.25)·0.8·1
	assert.InDelta(t, 4.125, got["A"], 1e-12)

	an, err := influence.AnalyticalGraph(context.Background(), g, nil)
	require.NoError(t, err)
	cmp := influence.Compare(got, an.ByVertex, 1e-9)
	assert.True(t, cmp.Agree, "max delta %g at %s", cmp.MaxDelta, cmp.Worst)
}

func TestCompute_TwoCycle(t *testing.T) {
	g := buildGraph(t,
		map[string]float64{"A": 1, "B": 1},
		[]edgeSpec{{"A", "B", 1.0}, {"B", "A", 1.0}},
	)
	obs := &recorder{}
	e := influence.NewEngine(nil, influence.WithObserver(obs))

	got, err := e.Compute(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got["A"])
	assert.Equal(t, 1.0, got["B"])
	assert.Equal(t, 2, obs.cycles)
	assert.Equal(t, 2, obs.contributions)
	assert.Equal(t, map[string]float64{"A": 1, "B": 1}, obs.done)
	assert.Empty(t, e.Active())

	_, err = influence.AnalyticalGraph(context.Background(), g, nil)
	assert.ErrorIs(t, err, influence.ErrSingularMatrix)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestCompute_SelfLoopAndLongCycle(t *testing.T) {
	g := buildGraph(t,
		map[string]float64{"A": 1, "B": 1, "C": 1},
		[]edgeSpec{{"A", "A", 0.5}, {"A", "B", 0.5}, {"B", "C", 0.5}, {"C", "A", 0.5}},
		core.WithLoops(),
	)
	e := influence.NewEngine(nil)

	got, err := e.Compute(context.Background(), g)
	require.NoError(t, err)
	assert.InDelta(t, 0.75, got["A"], 1e-12)
	// B reaches C then A, whose self-loop and edge back to B are both on the path.
	assert.InDelta(t, 0.75, got["B"], 1e-12)
	assert.InDelta(t, 0.75, got["C"], 1e-12)
	assert.Empty(t, e.Active())

	// Spectral radius < 1: the closed form exists and counts the cycles fully.
	an, err := influence.AnalyticalGraph(context.Background(), g, nil)
	require.NoError(t, err)
	cmp := influence.Compare(got, an.ByVertex, 1e-9)
	assert.False(t, cmp.Agree)
	assert.Greater(t, an.ByVertex["A"], got["A"])
}

func TestCompute_ReexpandsWithoutMemo(t *testing.T) {
	// B is reached over two paths; its subtree counts once per path.
	g := buildGraph(t,
		map[string]float64{"S": 0, "X": 0, "Y": 0, "B": 0, "Z": 1},
		[]edgeSpec{{"S", "X", 1}, {"S", "Y", 1}, {"X", "B", 1}, {"Y", "B", 1}, {"B", "Z", 1}},
	)
	obs := &recorder{}
	e := influence.NewEngine(nil, influence.WithObserver(obs))
	got, err := e.Compute(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got["S"])
	assert.Equal(t, 1.0, got["X"])
	// S: X, B, Z, Y, B, Z. X and Y: B, Z. B: Z.
	assert.Equal(t, 11, obs.contributions)
}

func TestCompute_MissingAttribute(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", core.WithValue(1)))
	require.NoError(t, g.AddVertex("B"))
	_, err := g.AddEdge("A", "B", 0.5)
	require.NoError(t, err)

	e := influence.NewEngine(nil)
	_, err = e.Compute(context.Background(), g)
	assert.ErrorIs(t, err, influence.ErrMissingAttribute)
	assert.ErrorIs(t, err, core.ErrMissingAttribute)
	assert.Empty(t, e.Active())
	assert.Zero(t, e.State().Index("A"))

	g2 := core.NewGraph()
	require.NoError(t, g2.AddVertex("A", core.WithValue(1)))
	require.NoError(t, g2.AddVertex("B", core.WithValue(1)))
	_, err = g2.AddUnweightedEdge("A", "B")
	require.NoError(t, err)
	_, err = e.Compute(context.Background(), g2)
	assert.ErrorIs(t, err, influence.ErrMissingAttribute)
	assert.ErrorIs(t, err, core.ErrMissingAttribute)
	assert.Empty(t, e.Active())

	_, err = influence.AnalyticalGraph(context.Background(), g2, nil)
	assert.ErrorIs(t, err, influence.ErrMissingAttribute)
}

func TestCompute_Limits(t *testing.T) {
	g := chain(t)

	_, err := influence.NewEngine(nil, influence.WithMaxDepth(1)).Compute(context.Background(), g)
	assert.ErrorIs(t, err, influence.ErrDepthLimit)

	got, err := influence.NewEngine(nil, influence.WithMaxDepth(2)).Compute(context.Background(), g)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got["A"], 1e-12)

	e := influence.NewEngine(nil, influence.WithMaxSteps(1))
	_, err = e.Compute(context.Background(), g)
	assert.ErrorIs(t, err, influence.ErrStepLimit)
	assert.Empty(t, e.Active())
}

func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := influence.NewEngine(nil).Compute(ctx, chain(t))
	assert.ErrorIs(t, err, context.Canceled)

	e := influence.NewEngine(nil, influence.WithContext(ctx))
	_, err = e.Compute(nil, chain(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompute_NilGraph(t *testing.T) {
	e := influence.NewEngine(nil)
	_, err := e.Compute(context.Background(), nil)
	assert.ErrorIs(t, err, influence.ErrGraphNil)

	var g *core.Graph
	_, err = e.Compute(context.Background(), g)
	assert.ErrorIs(t, err, influence.ErrGraphNil)

	_, err = influence.AnalyticalGraph(context.Background(), nil, nil)
	assert.ErrorIs(t, err, influence.ErrGraphNil)
}

func TestAnalytical_Raw(t *testing.T) {
	a, err := matrix.NewDenseFrom([][]float64{{0, 0.5}, {0, 0}})
	require.NoError(t, err)

	res, err := influence.Analytical(a, []float64{1, 2})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, res.Centrality[0], 1e-12)
	assert.Zero(t, res.Centrality[1])
	assert.InDelta(t, 1.0, res.Total, 1e-12)

	_, err = influence.Analytical(a, []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = influence.Analytical(a, []float64{1, math.NaN()})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestAnalyticalGraph_Empty(t *testing.T) {
	res, err := influence.AnalyticalGraph(context.Background(), core.NewGraph(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.ByVertex)
	assert.Zero(t, res.Total)
}

func TestCompare(t *testing.T) {
	cmp := influence.Compare(
		map[string]float64{"A": 1, "B": 2},
		map[string]float64{"A": 1.5, "C": 0.25},
		0.1,
	)
	assert.False(t, cmp.Agree)
	assert.Equal(t, "B", cmp.Worst)
	assert.Equal(t, 2.0, cmp.MaxDelta)
	assert.Equal(t, 0.25, cmp.Deltas["C"])

	assert.Equal(t, influence.DefaultTolerance, influence.Compare(nil, nil, 0).Tolerance)
	assert.True(t, influence.Compare(nil, nil, 0).Agree)
}

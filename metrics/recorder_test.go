package metrics_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/influence/core"
	"github.com/katalvlaran/influence/influence"
	"github.com/katalvlaran/influence/metrics"
)

func cycleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A", core.WithValue(1), core.WithCategory("IN")))
	require.NoError(t, g.AddVertex("B", core.WithValue(1), core.WithCategory("IN")))
	require.NoError(t, g.AddVertex("C", core.WithValue(1)))
	for _, e := range [][2]string{{"A", "B"}, {"B", "A"}, {"B", "C"}} {
		_, err := g.AddEdge(e[0], e[1], 0.5)
		require.NoError(t, err)
	}

	return g
}

func TestRecorder_FullPass(t *testing.T) {
	rec := metrics.NewRecorder()
	e := influence.NewEngine(nil, influence.WithObserver(rec))

	_, err := e.Compute(context.Background(), cycleGraph(t))
	require.NoError(t, err)

	// A: B, C (B→A truncated). B: A, C (A→B truncated).
	assert.Equal(t, 4.0, testutil.ToFloat64(rec.Contributions))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.CycleTruncations))
	assert.Equal(t, 3.0, testutil.ToFloat64(rec.Sources))
	assert.Zero(t, testutil.ToFloat64(rec.BarrierHits))
}

func TestRecorder_RestrictedPass(t *testing.T) {
	rec := metrics.NewRecorder()
	e := influence.NewEngine(nil, influence.WithObserver(rec))

	res, err := e.ComputeCumulative(context.Background(), cycleGraph(t), "IN")
	require.NoError(t, err)
	assert.InDelta(t, 0.5, res.Total, 1e-12)
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.BarrierHits))
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Contributions))
	assert.Equal(t, 2.0, testutil.ToFloat64(rec.Sources))
}

func TestRecorder_Snapshot(t *testing.T) {
	rec := metrics.NewRecorder()
	e := influence.NewEngine(nil, influence.WithObserver(rec))
	_, err := e.Compute(context.Background(), cycleGraph(t))
	require.NoError(t, err)

	samples, err := rec.Snapshot()
	require.NoError(t, err)
	got := map[string]float64{}
	for _, s := range samples {
		got[s.Name] = s.Value
	}
	assert.Equal(t, 4.0, got["influence_contributions_total"])
	assert.Equal(t, 4.0, got["influence_path_depth_count"])
	assert.Equal(t, 3.0, got["influence_source_index_count"])

	const want = `
# HELP influence_sources_total Sources whose index was computed.
# TYPE influence_sources_total counter
influence_sources_total 3
`
	assert.NoError(t, testutil.GatherAndCompare(rec.Registry(), strings.NewReader(want), "influence_sources_total"))
}

package instrument

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.Observe(search.AStar, search.Found.String(), 12, 3*time.Millisecond)
	m.Observe(search.AStar, search.Found.String(), 4, time.Millisecond)
	m.Observe(search.BreadthFirst, StatusError, 0, time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.searches.WithLabelValues("astar", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("bfs", "error")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.expanded))

	n, err := testutil.GatherAndCount(reg, "lvsearch_search_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.Observe(search.DepthFirst, "found", 1, time.Second) })
}

func TestSearch_RecordsOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	g, err := builder.BuildGraph(nil, nil, builder.Cycle(6))
	require.NoError(t, err)
	rp, err := core.NewRouteProblem(g, "0", "3")
	require.NoError(t, err)

	res, err := Search[string, string](m, rp, search.UniformCost, nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, res.Cost)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Search[string, string](m, rp, search.UniformCost, nil, search.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("ucs", "found")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.searches.WithLabelValues("ucs", StatusError)))
}

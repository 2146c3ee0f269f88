package builder_test

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/search"
)

func TestBuildGraph_Topologies(t *testing.T) {
	cases := []struct {
		name     string
		gopts    []core.GraphOption
		cons     builder.Constructor
		vertices int
		edges    int
	}{
		{"Path5", nil, builder.Path(5), 5, 4},
		{"Cycle4", nil, builder.Cycle(4), 4, 4},
		{"Star6", nil, builder.Star(6), 6, 5},
		{"Complete5", nil, builder.Complete(5), 5, 10},
		{"Complete4Directed", []core.GraphOption{core.WithDirected(true)}, builder.Complete(4), 4, 12},
		{"Grid3x4", nil, builder.Grid(3, 4), 12, 17},
		{"Grid2x2Directed", []core.GraphOption{core.WithDirected(true)}, builder.Grid(2, 2), 4, 8},
		{"RandomSparseFull", nil, builder.RandomSparse(5, 1), 5, 10},
		{"RandomSparseEmpty", nil, builder.RandomSparse(5, 0), 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.gopts, nil, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.vertices, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestBuildGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		err  error
	}{
		{"PathTooShort", builder.Path(1), builder.ErrTooFewVertices},
		{"CycleTooShort", builder.Cycle(2), builder.ErrTooFewVertices},
		{"StarTooSmall", builder.Star(1), builder.ErrTooFewVertices},
		{"CompleteEmpty", builder.Complete(0), builder.ErrTooFewVertices},
		{"GridNoRows", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"SparseBadP", builder.RandomSparse(4, 1.5), builder.ErrInvalidProbability},
		{"SparseNoRNG", builder.RandomSparse(4, 0.5), builder.ErrNeedRandSource},
		{"NilConstructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.cons)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestBuildGraph_Deterministic(t *testing.T) {
	build := func() []core.Edge {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformWeight(1, 10)},
			builder.RandomSparse(30, 0.2))
		require.NoError(t, err)
		return g.Edges()
	}
	assert.Equal(t, build(), build())
}

func TestGrid_CoordinatesAndIDs(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithConstantWeight(2)}, builder.Grid(2, 3))
	require.NoError(t, err)

	v, err := g.Vertex(builder.GridID(1, 2))
	require.NoError(t, err)
	assert.True(t, v.HasCoords)
	assert.Equal(t, 2.0, v.X)
	assert.Equal(t, 1.0, v.Y)
	for _, e := range g.Edges() {
		assert.Equal(t, 2.0, e.Weight)
	}
}

func TestComposition_IDPrefix(t *testing.T) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDPrefix("v")},
		builder.Path(3), builder.Star(3))
	require.NoError(t, err)
	assert.Equal(t, []string{"v0", "v1", "v2", builder.StarCenter}, g.Vertices())
	assert.True(t, g.HasEdge(builder.StarCenter, "v1"))
}

// shortestCosts relaxes every edge |V| times from src. Weights are non-negative.
func shortestCosts(g *core.Graph, src string) map[string]float64 {
	dist := make(map[string]float64, g.VertexCount())
	for _, id := range g.Vertices() {
		dist[id] = math.Inf(1)
	}
	dist[src] = 0
	edges := g.Edges()
	for range g.Vertices() {
		for _, e := range edges {
			if d := dist[e.From] + e.Weight; d < dist[e.To] {
				dist[e.To] = d
			}
			if !e.Directed {
				if d := dist[e.To] + e.Weight; d < dist[e.From] {
					dist[e.From] = d
				}
			}
		}
	}

	return dist
}

// Uniform-cost search and A* must match exhaustive relaxation on random graphs.
func TestRandomGraphs_OptimalCost(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		directed := seed%2 == 0
		g, err := builder.BuildGraph(
			[]core.GraphOption{core.WithDirected(directed)},
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntegerWeight(1, 4)},
			builder.RandomSparse(12, 0.25),
		)
		require.NoError(t, err)

		want := shortestCosts(g, "0")
		for goal := 1; goal < 12; goal++ {
			id := strconv.Itoa(goal)
			rp, err := core.NewRouteProblem(g, "0", id)
			require.NoError(t, err)

			res, err := search.Search[string, string](rp, search.UniformCost, nil)
			require.NoError(t, err)
			if math.IsInf(want[id], 1) {
				assert.Equal(t, search.NotFound, res.Status, "seed %d goal %s", seed, id)
				continue
			}
			require.Equal(t, search.Found, res.Status, "seed %d goal %s", seed, id)
			assert.Equal(t, want[id], res.Cost, "seed %d goal %s", seed, id)
			assert.Equal(t, want[id], rp.CostOfActions(search.AStarSearch[string, string](rp, search.NullHeuristic[string, string])))
		}
	}
}

// On a weighted grid, straight-line A* stays optimal and expands no more than UCS.
func TestGrid_StraightLineAStar(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3), builder.WithUniformWeight(1, 5)},
		builder.Grid(8, 8))
	require.NoError(t, err)
	rp, err := core.NewRouteProblem(g, builder.GridID(0, 0), builder.GridID(7, 7))
	require.NoError(t, err)

	ucs, err := search.Search[string, string](rp, search.UniformCost, nil)
	require.NoError(t, err)
	astar, err := search.Search[string, string](rp, search.AStar, rp.StraightLine(1))
	require.NoError(t, err)

	assert.InDelta(t, ucs.Cost, astar.Cost, 1e-9)
	assert.LessOrEqual(t, astar.Expanded, ucs.Expanded)
}

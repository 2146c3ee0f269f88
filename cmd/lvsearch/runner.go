package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/lvsearch/batch"
	"github.com/katalvlaran/lvsearch/config"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/instrument"
	"github.com/katalvlaran/lvsearch/search"
)

// summary is a domain-independent view of one search run.
type summary struct {
	Strategy    search.Strategy
	Status      string
	Actions     []string
	Cost        float64
	Expanded    int
	Generated   int
	MaxFrontier int
	Duration    time.Duration
	Err         error
}

func summarize[A any](strategy search.Strategy, res *search.Result[A], err error, d time.Duration) summary {
	s := summary{Strategy: strategy, Duration: d, Err: err, Status: instrument.StatusError}
	if res == nil {
		return s
	}
	if err == nil {
		s.Status = res.Status.String()
	}
	s.Actions = make([]string, len(res.Actions))
	for i, a := range res.Actions {
		s.Actions[i] = fmt.Sprint(a)
	}
	s.Cost = res.Cost
	s.Expanded, s.Generated, s.MaxFrontier = res.Expanded, res.Generated, res.MaxFrontier

	return s
}

// heuristicLabel names the estimate the scenario strategy actually uses:
// only A* consults the scenario heuristic.
func heuristicLabel(p *config.Problem) string {
	if p.Strategy != search.AStar {
		return config.HeuristicNull
	}

	return p.HeuristicName
}

// solveOne runs the scenario's strategy once. For mazes it also returns the
// rendered route.
func solveOne(ctx context.Context, p *config.Problem, m *instrument.Metrics, log *slog.Logger) (summary, string) {
	opts := append(p.SearchOptions(), search.WithContext(ctx), search.WithLogger(log))
	began := time.Now()
	if p.IsMaze() {
		res, err := instrument.Search[gridgraph.Point, gridgraph.Direction](m, p.MazeProblem, p.Strategy, p.MazeHeuristic, opts...)
		s := summarize(p.Strategy, res, err, time.Since(began))
		var drawing string
		if err == nil {
			drawing = p.Maze.Render(res.Actions)
		}
		return s, drawing
	}
	res, err := instrument.Search[string, string](m, p.Route, p.Strategy, p.RouteHeuristic, opts...)

	return summarize(p.Strategy, res, err, time.Since(began)), ""
}

// compareAll runs every strategy on the scenario concurrently. The scenario
// heuristic is used by A* only.
func compareAll(ctx context.Context, p *config.Problem, workers int, m *instrument.Metrics, log *slog.Logger) (string, []summary, error) {
	bopts := []batch.Option{
		batch.WithWorkers(workers),
		batch.WithLogger(log),
		batch.WithMetrics(m),
		batch.WithSearchOptions(p.SearchOptions()...),
	}
	if p.IsMaze() {
		qs := make([]batch.Query[gridgraph.Point, gridgraph.Direction], 0, len(search.Strategies))
		for _, s := range search.Strategies {
			qs = append(qs, batch.Query[gridgraph.Point, gridgraph.Direction]{
				Problem: p.MazeProblem, Strategy: s, Heuristic: p.MazeHeuristic,
			})
		}
		rep, err := batch.Run(ctx, qs, bopts...)
		return collect(rep, err)
	}
	qs := make([]batch.Query[string, string], 0, len(search.Strategies))
	for _, s := range search.Strategies {
		qs = append(qs, batch.Query[string, string]{Problem: p.Route, Strategy: s, Heuristic: p.RouteHeuristic})
	}
	rep, err := batch.Run(ctx, qs, bopts...)

	return collect(rep, err)
}

func collect[A any](rep *batch.Report[A], err error) (string, []summary, error) {
	if err != nil {
		return "", nil, err
	}
	out := make([]summary, len(rep.Outcomes))
	for i, o := range rep.Outcomes {
		out[i] = summarize(o.Strategy, o.Result, o.Err, o.Duration)
	}

	return rep.RunID, out, nil
}

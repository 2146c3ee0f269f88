package config

import (
	"fmt"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/gridgraph"
	"github.com/katalvlaran/lvsearch/search"
)

// Problem is a built scenario. Exactly one of the Maze or Route groups is set.
type Problem struct {
	Name     string
	Strategy search.Strategy
	// HeuristicName is the validated heuristic of the scenario.
	HeuristicName string
	MaxExpansions int

	Maze          *gridgraph.Maze
	MazeProblem   *gridgraph.MazeProblem
	MazeHeuristic search.Heuristic[gridgraph.Point, gridgraph.Direction]

	Route          *core.RouteProblem
	RouteHeuristic search.Heuristic[string, string]
}

// IsMaze reports whether the scenario is a maze.
func (p *Problem) IsMaze() bool { return p.MazeProblem != nil }

// SearchOptions returns the driver options implied by the scenario.
func (p *Problem) SearchOptions() []search.Option {
	if p.MaxExpansions > 0 {
		return []search.Option{search.WithMaxExpansions(p.MaxExpansions)}
	}

	return nil
}

// Build validates the scenario and constructs its problem.
func (sc *Scenario) Build() (*Problem, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	strategy, _ := search.ParseStrategy(sc.Strategy)
	p := &Problem{
		Name:          sc.Name,
		Strategy:      strategy,
		HeuristicName: sc.Heuristic,
		MaxExpansions: sc.MaxExpansions,
	}
	if sc.Maze != nil {
		return p, sc.Maze.build(p, sc.Heuristic)
	}

	return p, sc.Graph.build(p, sc.Heuristic)
}

func (m *MazeSpec) build(p *Problem, heuristic string) error {
	conn := gridgraph.Conn4
	if m.Connectivity == 8 {
		conn = gridgraph.Conn8
	}
	maze, err := gridgraph.ParseLayout(m.Layout, conn)
	if err != nil {
		return fmt.Errorf("config: maze: %w", err)
	}
	mp, err := maze.Problem()
	if err != nil {
		return fmt.Errorf("config: maze: %w", err)
	}
	h, ok := mp.Heuristic(heuristic)
	if !ok {
		return fmt.Errorf("%w: %q for a maze", ErrUnknownHeuristic, heuristic)
	}
	p.Maze, p.MazeProblem, p.MazeHeuristic = maze, mp, h

	return nil
}

func (g *GraphSpec) build(p *Problem, heuristic string) error {
	var (
		graph *core.Graph
		err   error
	)
	if g.Generate != nil {
		graph, err = g.Generate.build(g.Directed)
	} else {
		graph, err = g.explicit()
	}
	if err != nil {
		return err
	}
	rp, err := core.NewRouteProblem(graph, g.Start, g.Goals...)
	if err != nil {
		return fmt.Errorf("config: graph: %w", err)
	}
	p.Route = rp
	if heuristic == HeuristicStraightLine {
		p.RouteHeuristic = rp.StraightLine(g.Scale)
	} else {
		p.RouteHeuristic = search.NullHeuristic[string, string]
	}

	return nil
}

func (g *GraphSpec) explicit() (*core.Graph, error) {
	graph := core.NewGraph(core.WithDirected(g.Directed))
	for _, v := range g.Vertices {
		var opts []core.VertexOption
		if v.X != nil {
			opts = append(opts, core.WithCoordinates(*v.X, *v.Y))
		}
		if err := graph.AddVertex(v.ID, opts...); err != nil {
			return nil, fmt.Errorf("config: graph: %w", err)
		}
	}
	for i, e := range g.Edges {
		var opts []core.EdgeOption
		if e.Label != "" {
			opts = append(opts, core.WithLabel(e.Label))
		}
		if _, err := graph.AddEdge(e.From, e.To, e.Weight, opts...); err != nil {
			return nil, fmt.Errorf("config: graph.edges[%d]: %w", i, err)
		}
	}

	return graph, nil
}

func (gs *GenerateSpec) build(directed bool) (*core.Graph, error) {
	var con builder.Constructor
	switch gs.Kind {
	case KindPath:
		con = builder.Path(gs.N)
	case KindCycle:
		con = builder.Cycle(gs.N)
	case KindStar:
		con = builder.Star(gs.N)
	case KindGrid:
		con = builder.Grid(gs.Rows, gs.Cols)
	case KindComplete:
		con = builder.Complete(gs.N)
	case KindRandomSparse:
		con = builder.RandomSparse(gs.N, gs.P)
	default:
		return nil, fmt.Errorf("%w: graph.generate.kind %q", ErrInvalidScenario, gs.Kind)
	}
	bopts := []builder.BuilderOption{builder.WithSeed(gs.Seed)}
	if gs.MaxWeight > 0 {
		bopts = append(bopts, builder.WithIntegerWeight(gs.MinWeight, gs.MaxWeight))
	}
	graph, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(directed)}, bopts, con)
	if err != nil {
		return nil, fmt.Errorf("config: graph.generate: %w", err)
	}

	return graph, nil
}

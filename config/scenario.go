package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for scenario loading.
var (
	// ErrInvalidScenario indicates a scenario that fails validation.
	ErrInvalidScenario = errors.New("config: invalid scenario")
	// ErrUnknownHeuristic indicates a heuristic name the problem kind does not offer.
	ErrUnknownHeuristic = errors.New("config: unknown heuristic")
	// ErrInadmissibleHeuristic indicates a heuristic that can overestimate on
	// the scenario's problem, which breaks A* optimality.
	ErrInadmissibleHeuristic = errors.New("config: heuristic is not admissible")
)

// Heuristic names.
const (
	HeuristicNull         = "null"
	HeuristicManhattan    = "manhattan"
	HeuristicEuclidean    = "euclidean"
	HeuristicOctile       = "octile"
	HeuristicStraightLine = "straightline"
)

// Scenario is one search problem with its solving parameters.
type Scenario struct {
	Name          string `mapstructure:"name"`
	Strategy      string `mapstructure:"strategy"`
	Heuristic     string `mapstructure:"heuristic"`
	MaxExpansions int    `mapstructure:"max_expansions"`

	Maze  *MazeSpec  `mapstructure:"maze"`
	Graph *GraphSpec `mapstructure:"graph"`
}

// MazeSpec describes a grid maze in layout glyphs.
type MazeSpec struct {
	Layout       string `mapstructure:"layout"`
	Connectivity int    `mapstructure:"connectivity"`
}

// GraphSpec describes a weighted graph, either explicitly through Vertices
// and Edges or through a Generate topology.
type GraphSpec struct {
	Directed bool          `mapstructure:"directed"`
	Vertices []VertexSpec  `mapstructure:"vertices"`
	Edges    []EdgeSpec    `mapstructure:"edges"`
	Generate *GenerateSpec `mapstructure:"generate"`
	Start    string        `mapstructure:"start"`
	Goals    []string      `mapstructure:"goals"`
	// Scale multiplies the straight-line heuristic; 0 means 1.
	Scale float64 `mapstructure:"scale"`
}

// VertexSpec declares a vertex, optionally with coordinates.
type VertexSpec struct {
	ID string   `mapstructure:"id"`
	X  *float64 `mapstructure:"x"`
	Y  *float64 `mapstructure:"y"`
}

// EdgeSpec declares an edge. An empty label makes the destination ID the action.
type EdgeSpec struct {
	From   string  `mapstructure:"from"`
	To     string  `mapstructure:"to"`
	Weight float64 `mapstructure:"weight"`
	Label  string  `mapstructure:"label"`
}

// Generated topologies.
const (
	KindPath         = "path"
	KindCycle        = "cycle"
	KindStar         = "star"
	KindGrid         = "grid"
	KindComplete     = "complete"
	KindRandomSparse = "random_sparse"
)

// GenerateSpec builds the graph from a fixture topology. Vertices are named
// "0", "1", ... except for grids ("r,c", with coordinates) and the star hub
// ("Center"). Edge weights are integers in [MinWeight, MaxWeight] drawn from
// Seed; both zero means every edge weighs 1.
type GenerateSpec struct {
	Kind      string  `mapstructure:"kind"`
	N         int     `mapstructure:"n"`
	Rows      int     `mapstructure:"rows"`
	Cols      int     `mapstructure:"cols"`
	P         float64 `mapstructure:"p"`
	Seed      int64   `mapstructure:"seed"`
	MinWeight int     `mapstructure:"min_weight"`
	MaxWeight int     `mapstructure:"max_weight"`
}

// minWeight is the cheapest edge the spec can generate.
func (gs *GenerateSpec) minWeight() float64 {
	if gs.MinWeight == 0 && gs.MaxWeight == 0 {
		return 1
	}

	return float64(gs.MinWeight)
}

func (gs *GenerateSpec) validate() error {
	switch gs.Kind {
	case KindPath, KindCycle, KindStar, KindGrid, KindComplete, KindRandomSparse:
	default:
		return fmt.Errorf("%w: graph.generate.kind %q", ErrInvalidScenario, gs.Kind)
	}
	if gs.MinWeight < 0 || gs.MaxWeight < gs.MinWeight {
		return fmt.Errorf("%w: graph.generate weights need 0 ≤ min_weight ≤ max_weight, got [%d,%d]",
			ErrInvalidScenario, gs.MinWeight, gs.MaxWeight)
	}

	return nil
}

// Load reads and parses the scenario file at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes and validates a YAML scenario. Missing strategy defaults to
// astar and missing heuristic to null.
func Parse(data []byte) (*Scenario, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("config: yaml: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidScenario)
	}

	var sc Scenario
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &sc,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	sc.applyDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	return &sc, nil
}

func (sc *Scenario) applyDefaults() {
	if sc.Strategy == "" {
		sc.Strategy = search.AStar.String()
	}
	if sc.Heuristic == "" {
		sc.Heuristic = HeuristicNull
	}
	if sc.Maze != nil && sc.Maze.Connectivity == 0 {
		sc.Maze.Connectivity = 4
	}
	if sc.Graph != nil && sc.Graph.Scale == 0 {
		sc.Graph.Scale = 1
	}
}

// Validate checks the scenario without building it.
func (sc *Scenario) Validate() error {
	if _, err := search.ParseStrategy(sc.Strategy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if sc.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions=%d must be ≥ 0", ErrInvalidScenario, sc.MaxExpansions)
	}
	switch {
	case sc.Maze == nil && sc.Graph == nil:
		return fmt.Errorf("%w: one of maze or graph is required", ErrInvalidScenario)
	case sc.Maze != nil && sc.Graph != nil:
		return fmt.Errorf("%w: maze and graph are exclusive", ErrInvalidScenario)
	case sc.Maze != nil:
		return sc.Maze.validate(sc.Heuristic)
	default:
		return sc.Graph.validate(sc.Heuristic)
	}
}

func (m *MazeSpec) validate(heuristic string) error {
	if m.Layout == "" {
		return fmt.Errorf("%w: maze.layout is empty", ErrInvalidScenario)
	}
	if m.Connectivity != 4 && m.Connectivity != 8 {
		return fmt.Errorf("%w: maze.connectivity=%d, want 4 or 8", ErrInvalidScenario, m.Connectivity)
	}
	switch heuristic {
	case HeuristicManhattan:
		// a diagonal step covers dx+dy = 2 for a cost of √2
		if m.Connectivity == 8 {
			return fmt.Errorf("%w: %q with maze.connectivity=8", ErrInadmissibleHeuristic, heuristic)
		}
		return nil
	case HeuristicNull, HeuristicEuclidean, HeuristicOctile:
		return nil
	}

	return fmt.Errorf("%w: %q for a maze", ErrUnknownHeuristic, heuristic)
}

func (g *GraphSpec) validate(heuristic string) error {
	if g.Start == "" {
		return fmt.Errorf("%w: graph.start is empty", ErrInvalidScenario)
	}
	if len(g.Goals) == 0 {
		return fmt.Errorf("%w: graph.goals is empty", ErrInvalidScenario)
	}
	if g.Generate != nil {
		if len(g.Vertices) > 0 || len(g.Edges) > 0 {
			return fmt.Errorf("%w: graph.generate excludes vertices and edges", ErrInvalidScenario)
		}
		if err := g.Generate.validate(); err != nil {
			return err
		}
		// grid cells are one unit apart
		if heuristic == HeuristicStraightLine && g.Generate.Kind == KindGrid && g.Scale > g.Generate.minWeight() {
			return fmt.Errorf("%w: %q with scale %g above the minimum edge weight %g",
				ErrInadmissibleHeuristic, heuristic, g.Scale, g.Generate.minWeight())
		}
	}
	for i, e := range g.Edges {
		if e.From == "" || e.To == "" {
			return fmt.Errorf("%w: graph.edges[%d] needs from and to", ErrInvalidScenario, i)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: graph.edges[%d] weight %g is negative", ErrInvalidScenario, i, e.Weight)
		}
	}
	for i, v := range g.Vertices {
		if v.ID == "" {
			return fmt.Errorf("%w: graph.vertices[%d] has no id", ErrInvalidScenario, i)
		}
		if (v.X == nil) != (v.Y == nil) {
			return fmt.Errorf("%w: graph.vertices[%d] needs both x and y", ErrInvalidScenario, i)
		}
	}
	switch heuristic {
	case HeuristicNull, HeuristicStraightLine:
		return nil
	}

	return fmt.Errorf("%w: %q for a graph", ErrUnknownHeuristic, heuristic)
}

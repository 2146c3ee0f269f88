package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	dirs := conn4Directions
	if opts.Conn == Conn8 {
		dirs = conn8Directions
	}
	gg := &GridGraph{
		Width:         w,
		Height:        h,
		CellValues:    cells,
		Conn:          opts.Conn,
		OpenThreshold: opts.OpenThreshold,
		Weighted:      opts.Weighted,
		directions:    dirs,
	}
	gg.minCost = gg.lowestCost()

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Passable reports whether p is inside the grid and open.
func (gg *GridGraph) Passable(p Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] >= gg.OpenThreshold
}

// Directions returns the moves allowed by the grid connectivity, in the
// order successors are generated.
func (gg *GridGraph) Directions() []Direction {
	return gg.directions
}

// CellCost returns the cost of entering p: its value when Weighted, else 1.
func (gg *GridGraph) CellCost(p Point) float64 {
	if !gg.Weighted {
		return 1
	}

	return float64(gg.CellValues[p.Y][p.X])
}

// StepCost returns the cost of moving from p in direction d, and false when
// the target is outside the grid or a wall. Diagonal moves cost √2 × CellCost.
func (gg *GridGraph) StepCost(p Point, d Direction) (Point, float64, bool) {
	next := p.Add(d)
	if !gg.Passable(next) {
		return next, 0, false
	}
	c := gg.CellCost(next)
	if d.Diagonal() {
		c *= math.Sqrt2
	}

	return next, c, true
}

// MinCellCost returns the cheapest cost of entering any open cell; heuristics
// scale distances by it to stay admissible. It is 1 for unweighted grids.
func (gg *GridGraph) MinCellCost() float64 { return gg.minCost }

func (gg *GridGraph) lowestCost() float64 {
	if !gg.Weighted {
		return 1
	}
	best := math.Inf(1)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if v := gg.CellValues[y][x]; v >= gg.OpenThreshold {
				best = math.Min(best, float64(v))
			}
		}
	}
	if math.IsInf(best, 1) || best < 0 {
		return 0
	}

	return best
}

// ToCoreGraph converts the open cells into a directed *core.Graph.
// Each open cell (x,y) becomes a vertex "x,y" with coordinates (x,y) and
// metadata {value}. An edge labelled with the direction name leads to every
// open neighbor, weighted by StepCost.
// Complexity: O(W×H×d + E) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() *core.Graph {
	g := core.NewGraph(core.WithDirected(true))
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{X: x, Y: y}
			if !gg.Passable(p) {
				continue
			}
			_ = g.AddVertex(p.String(),
				core.WithCoordinates(float64(x), float64(y)),
				core.WithMetadata("value", gg.CellValues[y][x]),
			)
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{X: x, Y: y}
			if !gg.Passable(p) {
				continue
			}
			for _, d := range gg.directions {
				next, cost, ok := gg.StepCost(p, d)
				if !ok {
					continue
				}
				_, _ = g.AddEdge(p.String(), next.String(), cost, core.WithLabel(d.String()))
			}
		}
	}

	return g
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

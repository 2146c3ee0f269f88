package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// MazeProblem searches a GridGraph for a path from Start to any goal cell.
// States are Points and actions are Directions.
type MazeProblem struct {
	grid      *GridGraph
	start     Point
	goals     []Point
	goalIndex map[Point]struct{}
}

var _ search.Problem[Point, Direction] = (*MazeProblem)(nil)

// NewMazeProblem validates the endpoints against the grid.
// Errors: ErrOutOfBounds, ErrBlockedCell, ErrNoGoal.
func NewMazeProblem(gg *GridGraph, start Point, goals ...Point) (*MazeProblem, error) {
	if err := checkCell(gg, start); err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	if len(goals) == 0 {
		return nil, ErrNoGoal
	}
	idx := make(map[Point]struct{}, len(goals))
	for _, g := range goals {
		if err := checkCell(gg, g); err != nil {
			return nil, fmt.Errorf("goal: %w", err)
		}
		idx[g] = struct{}{}
	}
	gs := make([]Point, len(goals))
	copy(gs, goals)

	return &MazeProblem{grid: gg, start: start, goals: gs, goalIndex: idx}, nil
}

func checkCell(gg *GridGraph, p Point) error {
	if !gg.InBounds(p.X, p.Y) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	if !gg.Passable(p) {
		return fmt.Errorf("%w: %v", ErrBlockedCell, p)
	}

	return nil
}

// Grid returns the underlying grid.
func (mp *MazeProblem) Grid() *GridGraph { return mp.grid }

// Goals returns a copy of the goal cells.
func (mp *MazeProblem) Goals() []Point {
	out := make([]Point, len(mp.goals))
	copy(out, mp.goals)

	return out
}

// StartState returns the start cell.
func (mp *MazeProblem) StartState() Point { return mp.start }

// IsGoal reports whether p is a goal cell.
func (mp *MazeProblem) IsGoal(p Point) bool {
	_, ok := mp.goalIndex[p]
	return ok
}

// Successors lists the open neighbors of p in Directions() order.
func (mp *MazeProblem) Successors(p Point) []search.Successor[Point, Direction] {
	out := make([]search.Successor[Point, Direction], 0, len(mp.grid.directions))
	for _, d := range mp.grid.directions {
		next, cost, ok := mp.grid.StepCost(p, d)
		if !ok {
			continue
		}
		out = append(out, search.Successor[Point, Direction]{State: next, Action: d, Cost: cost})
	}

	return out
}

// CostOfActions replays the moves from Start. A move into a wall, off the
// grid or not allowed by the connectivity yields +Inf.
func (mp *MazeProblem) CostOfActions(actions []Direction) float64 {
	cur, total := mp.start, 0.0
	for _, d := range actions {
		if mp.grid.Conn == Conn4 && d.Diagonal() {
			return math.Inf(1)
		}
		next, cost, ok := mp.grid.StepCost(cur, d)
		if !ok {
			return math.Inf(1)
		}
		cur, total = next, total+cost
	}

	return total
}

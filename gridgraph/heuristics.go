package gridgraph

import (
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// distanceFunc measures the grid distance between two points.
type distanceFunc func(dx, dy float64) float64

// Manhattan estimates |dx|+|dy| to the nearest goal, scaled by the cheapest
// cell cost. Admissible under Conn4; it can overestimate under Conn8.
func (mp *MazeProblem) Manhattan() search.Heuristic[Point, Direction] {
	return mp.nearestGoal(func(dx, dy float64) float64 { return dx + dy })
}

// Euclidean estimates the straight-line distance to the nearest goal, scaled
// by the cheapest cell cost. Admissible under both connectivities.
func (mp *MazeProblem) Euclidean() search.Heuristic[Point, Direction] {
	return mp.nearestGoal(math.Hypot)
}

// Octile estimates the exact obstacle-free Conn8 distance, where diagonal
// moves cost √2, scaled by the cheapest cell cost. Under Conn4 use Manhattan.
func (mp *MazeProblem) Octile() search.Heuristic[Point, Direction] {
	return mp.nearestGoal(func(dx, dy float64) float64 {
		lo, hi := math.Min(dx, dy), math.Max(dx, dy)
		return (hi - lo) + math.Sqrt2*lo
	})
}

// Heuristic returns the named estimate ("manhattan", "euclidean", "octile",
// or "null"), and false for an unknown name.
func (mp *MazeProblem) Heuristic(name string) (search.Heuristic[Point, Direction], bool) {
	switch name {
	case "manhattan":
		return mp.Manhattan(), true
	case "euclidean":
		return mp.Euclidean(), true
	case "octile":
		return mp.Octile(), true
	case "null", "":
		return search.NullHeuristic[Point, Direction], true
	}

	return nil, false
}

func (mp *MazeProblem) nearestGoal(dist distanceFunc) search.Heuristic[Point, Direction] {
	scale := mp.grid.MinCellCost()
	goals := mp.Goals()

	return func(p Point, _ search.Problem[Point, Direction]) float64 {
		best := math.Inf(1)
		for _, g := range goals {
			dx := math.Abs(float64(p.X - g.X))
			dy := math.Abs(float64(p.Y - g.Y))
			best = math.Min(best, dist(dx, dy))
		}

		return scale * best
	}
}

package core

import (
	"math"

	"github.com/katalvlaran/lvsearch/search"
)

// StraightLine returns a heuristic estimating the Euclidean distance from a
// vertex to the nearest goal, using vertex coordinates. Vertices without
// coordinates estimate 0.
//
// The estimate is admissible when every edge weight is at least the
// Euclidean distance between its endpoints, e.g. road networks whose
// weights are lengths. Scale lets callers shrink it for graphs where that
// does not hold (weight = scale × distance at minimum).
func (rp *RouteProblem) StraightLine(scale float64) search.Heuristic[string, string] {
	type point struct{ x, y float64 }
	goals := make([]point, 0, len(rp.goals))
	for _, id := range rp.Goals() {
		v, err := rp.g.Vertex(id)
		if err != nil || !v.HasCoords {
			// one goal without coordinates makes every estimate unsafe
			return search.NullHeuristic[string, string]
		}
		goals = append(goals, point{v.X, v.Y})
	}

	return func(id string, _ search.Problem[string, string]) float64 {
		v, err := rp.g.Vertex(id)
		if err != nil || !v.HasCoords {
			return 0
		}
		best := math.Inf(1)
		for _, p := range goals {
			best = math.Min(best, math.Hypot(v.X-p.x, v.Y-p.y))
		}

		return scale * best
	}
}

package search

// The wrappers below panic with ErrNilProblem when p is nil, like an
// Unimplemented capability; use Search for error returns.

// DepthFirstSearch searches the deepest states first (LIFO frontier).
// It returns the first path found, which is not necessarily the cheapest.
func DepthFirstSearch[S comparable, A any](p Problem[S, A]) []A {
	return solve(p, DepthFirst, nil)
}

// BreadthFirstSearch searches the shallowest states first (FIFO frontier).
// The path is minimal in number of actions, not in accumulated step cost.
func BreadthFirstSearch[S comparable, A any](p Problem[S, A]) []A {
	return solve(p, BreadthFirst, nil)
}

// UniformCostSearch searches the cheapest paths first. It is AStarSearch
// with NullHeuristic.
func UniformCostSearch[S comparable, A any](p Problem[S, A]) []A {
	return AStarSearch(p, NullHeuristic[S, A])
}

// AStarSearch searches the lowest path cost plus heuristic estimate first.
// A nil h defaults to NullHeuristic, which makes the call uniform-cost search.
func AStarSearch[S comparable, A any](p Problem[S, A], h Heuristic[S, A]) []A {
	return solve(p, AStar, h)
}

// solve runs Search without bounds and collapses the Result to its actions.
// An empty slice means either "no path" or "start is goal". Without options
// the only possible error is ErrNilProblem, a contract violation that panics.
func solve[S comparable, A any](p Problem[S, A], s Strategy, h Heuristic[S, A]) []A {
	res, err := Search(p, s, h)
	if err != nil {
		panic(err)
	}

	return res.Actions
}

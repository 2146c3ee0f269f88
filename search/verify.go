package search

import "fmt"

// Verify replays actions from p's start state by successor lookup and returns
// the final state. It fails with ErrIllegalAction when an action matches no
// successor, ErrRepeatedState when the path revisits a state, and ErrNotGoal
// when the final state fails the goal test.
//
// When several successors share an action the first one in Successors order
// is taken, mirroring how the driver records paths.
func Verify[S comparable, A comparable](p Problem[S, A], actions []A) (S, error) {
	var zero S
	if p == nil {
		return zero, ErrNilProblem
	}

	state := p.StartState()
	seen := map[S]struct{}{state: {}}
	for i, a := range actions {
		next, ok := step(p, state, a)
		if !ok {
			return zero, fmt.Errorf("%w: step %d action %v from %v", ErrIllegalAction, i, a, state)
		}
		if _, dup := seen[next]; dup {
			return zero, fmt.Errorf("%w: step %d reaches %v again", ErrRepeatedState, i, next)
		}
		seen[next] = struct{}{}
		state = next
	}
	if !p.IsGoal(state) {
		return zero, fmt.Errorf("%w: ends at %v", ErrNotGoal, state)
	}

	return state, nil
}

// step returns the successor of state reached through action a.
func step[S comparable, A comparable](p Problem[S, A], state S, a A) (S, bool) {
	for _, succ := range p.Successors(state) {
		if succ.Action == a {
			return succ.State, true
		}
	}
	var zero S

	return zero, false
}

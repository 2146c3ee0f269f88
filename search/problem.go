package search

import "fmt"

// Successor is one transition produced by Problem.Successors: the resulting
// state, the action that leads there and its non-negative step cost.
type Successor[S comparable, A any] struct {
	State  S
	Action A
	Cost   float64
}

// Problem is the capability set a domain implements to be searchable.
// The engine never mutates a Problem and only compares states for equality.
type Problem[S comparable, A any] interface {
	// StartState returns the state the search begins from.
	StartState() S

	// IsGoal reports whether state satisfies the goal predicate.
	IsGoal(state S) bool

	// Successors returns the finite set of transitions out of state. The order
	// must be deterministic so that equal-priority ties replay identically.
	Successors(state S) []Successor[S, A]

	// CostOfActions returns the total cost of a legal action sequence from the
	// start state. Priority disciplines use it as the authoritative path cost.
	CostOfActions(actions []A) float64
}

// Heuristic estimates the remaining cost from state to the nearest goal.
// A* is optimal only when the estimate never exceeds the true remaining cost.
type Heuristic[S comparable, A any] func(state S, p Problem[S, A]) float64

// NullHeuristic is the trivial estimate 0. It turns A* into uniform-cost search.
func NullHeuristic[S comparable, A any](S, Problem[S, A]) float64 { return 0 }

// Unimplemented can be embedded in a domain type under construction. Each
// capability it still provides panics with an error wrapping ErrNotImplemented,
// so a missing method fails loudly instead of returning a silent default.
type Unimplemented[S comparable, A any] struct{}

// StartState panics with ErrNotImplemented.
func (Unimplemented[S, A]) StartState() S { panic(notImplemented("StartState")) }

// IsGoal panics with ErrNotImplemented.
func (Unimplemented[S, A]) IsGoal(S) bool { panic(notImplemented("IsGoal")) }

// Successors panics with ErrNotImplemented.
func (Unimplemented[S, A]) Successors(S) []Successor[S, A] { panic(notImplemented("Successors")) }

// CostOfActions panics with ErrNotImplemented.
func (Unimplemented[S, A]) CostOfActions([]A) float64 { panic(notImplemented("CostOfActions")) }

func notImplemented(capability string) error {
	return fmt.Errorf("%w: %s", ErrNotImplemented, capability)
}

package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsearch/frontier"
)

// node is one frontier entry: a state and the actions taken to reach it.
type node[S comparable, A any] struct {
	state S
	path  []A
}

// walker holds the mutable state of a single Search call.
type walker[S comparable, A any] struct {
	problem   Problem[S, A]
	heuristic Heuristic[S, A]
	keyed     bool
	opts      Options
	ctx       context.Context
	log       *slog.Logger
	fringe    frontier.Frontier[node[S, A]]
	visited   map[S]struct{}
	res       *Result[A]
}

// Search runs the traversal driver on p with the frontier discipline of
// strategy. h is consulted only by AStar; UniformCost always uses
// NullHeuristic and a nil h falls back to it.
//
// Returns ErrNilProblem, ErrUnknownStrategy or ErrOptionViolation for invalid
// input, ErrExpansionLimit or a context error when a bound stops the run, or
// the error returned by an OnExpand hook. On those errors the Result still
// carries the counters gathered so far.
func Search[S comparable, A any](p Problem[S, A], strategy Strategy, h Heuristic[S, A], opts ...Option) (*Result[A], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	if !strategy.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int(strategy))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if strategy != AStar || h == nil {
		h = NullHeuristic[S, A]
	}

	fringe, err := frontier.New[node[S, A]](strategy.Discipline())
	if err != nil {
		return nil, err
	}
	w := &walker[S, A]{
		problem:   p,
		heuristic: h,
		keyed:     strategy.Discipline().Keyed(),
		opts:      o,
		ctx:       o.Ctx,
		log:       o.Logger.With("strategy", strategy.String()),
		fringe:    fringe,
		visited:   make(map[S]struct{}),
		res:       &Result[A]{Status: NotFound, Actions: []A{}},
	}

	err = w.loop()
	w.log.Debug("search finished",
		"status", w.res.Status.String(),
		"actions", len(w.res.Actions),
		"cost", w.res.Cost,
		"expanded", w.res.Expanded,
		"generated", w.res.Generated,
		"max_frontier", w.res.MaxFrontier,
	)

	return w.res, err
}

// loop pops entries until a goal is expanded, the frontier empties, or a
// bound aborts the run.
func (w *walker[S, A]) loop() error {
	start := w.problem.StartState()
	w.log.Debug("search started", "start", start)
	w.push(start, []A{})

	for !w.fringe.IsEmpty() {
		// cancellation check (once per pop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		n := w.fringe.Pop()
		// lazy deletion: a stale duplicate of a closed state
		if _, seen := w.visited[n.state]; seen {
			continue
		}
		w.visited[n.state] = struct{}{}

		if w.problem.IsGoal(n.state) {
			w.finish(n.path)
			return nil
		}

		if err := w.expand(n); err != nil {
			return err
		}
	}

	return nil
}

// expand generates the successors of n and pushes one entry per successor.
func (w *walker[S, A]) expand(n node[S, A]) error {
	if w.opts.MaxExpansions > 0 && w.res.Expanded >= w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, w.res.Expanded)
	}
	if err := w.opts.OnExpand(n.state, len(n.path)); err != nil {
		return fmt.Errorf("search: OnExpand error at %v: %w", n.state, err)
	}
	w.res.Expanded++

	for _, succ := range w.problem.Successors(n.state) {
		w.push(succ.State, extend(n.path, succ.Action))
	}

	return nil
}

// push adds (state, path) to the frontier. Keyed disciplines order the entry
// by CostOfActions(path) + h(state); the start entry uses 0 + h(start).
func (w *walker[S, A]) push(state S, path []A) {
	var key float64
	if w.keyed {
		if len(path) > 0 {
			key = w.problem.CostOfActions(path)
		}
		key += w.heuristic(state, w.problem)
	}
	w.fringe.Push(node[S, A]{state: state, path: path}, key)
	w.opts.OnPush(state, key)

	w.res.Generated++
	if l := w.fringe.Len(); l > w.res.MaxFrontier {
		w.res.MaxFrontier = l
	}
}

// finish records a successful outcome for path.
func (w *walker[S, A]) finish(path []A) {
	if len(path) == 0 {
		w.res.Status = FoundAtStart
		return
	}
	w.res.Status = Found
	w.res.Actions = path
	w.res.Cost = w.problem.CostOfActions(path)
}

// extend returns a fresh slice holding path followed by a. Paths are never
// shared between frontier entries, so siblings cannot overwrite each other.
func extend[A any](path []A, a A) []A {
	next := make([]A, len(path)+1)
	copy(next, path)
	next[len(path)] = a

	return next
}

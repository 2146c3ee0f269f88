package search

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvsearch/frontier"
)

// Sentinel errors for search execution.
var (
	// ErrNilProblem is returned when a nil Problem is passed to Search.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNotImplemented is wrapped by the panic value of Unimplemented capabilities.
	ErrNotImplemented = errors.New("search: capability not implemented")

	// ErrUnknownStrategy is returned for a Strategy outside the defined set.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionLimit is returned when WithMaxExpansions stops a run.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrIllegalAction is returned by Verify when no successor matches an action.
	ErrIllegalAction = errors.New("search: illegal action")

	// ErrRepeatedState is returned by Verify when a path revisits a state.
	ErrRepeatedState = errors.New("search: path revisits a state")

	// ErrNotGoal is returned by Verify when a path does not end in a goal state.
	ErrNotGoal = errors.New("search: path does not reach a goal")
)

// Strategy names one of the configurations of the traversal driver.
type Strategy int

const (
	// DepthFirst expands the most recently discovered state first.
	DepthFirst Strategy = iota
	// BreadthFirst expands states in discovery order.
	BreadthFirst
	// UniformCost expands the cheapest path first.
	UniformCost
	// AStar expands the lowest path cost plus heuristic estimate first.
	AStar
)

// Strategies lists every strategy in declaration order.
var Strategies = []Strategy{DepthFirst, BreadthFirst, UniformCost, AStar}

// String returns the short name of the strategy.
func (s Strategy) String() string {
	switch s {
	case DepthFirst:
		return "dfs"
	case BreadthFirst:
		return "bfs"
	case UniformCost:
		return "ucs"
	case AStar:
		return "astar"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Valid reports whether s is one of the defined strategies.
func (s Strategy) Valid() bool { return s >= DepthFirst && s <= AStar }

// Discipline returns the frontier ordering the strategy runs on.
func (s Strategy) Discipline() frontier.Discipline {
	switch s {
	case DepthFirst:
		return frontier.LIFO
	case BreadthFirst:
		return frontier.FIFO
	default:
		return frontier.Priority
	}
}

// ParseStrategy maps a strategy name to its Strategy. Short and long names
// are accepted case-insensitively ("dfs", "depth-first", "a*", ...).
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first", "depthfirst":
		return DepthFirst, nil
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "ucs", "uniform-cost", "uniformcost":
		return UniformCost, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Status classifies the outcome of a search.
type Status int

const (
	// NotFound means the frontier emptied without reaching a goal.
	NotFound Status = iota
	// FoundAtStart means the start state is itself a goal; no actions are needed.
	FoundAtStart
	// Found means a non-empty path to a goal was found.
	Found
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case NotFound:
		return "not-found"
	case FoundAtStart:
		return "found-at-start"
	case Found:
		return "found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result holds the outcome of one Search call:
//   - Status:      NotFound, FoundAtStart or Found.
//   - Actions:     the path from start to goal; never nil, empty unless Status == Found.
//   - Cost:        CostOfActions(Actions) when Status == Found, otherwise 0.
//   - Expanded:    states whose successors were generated.
//   - Generated:   frontier pushes, including the start entry.
//   - MaxFrontier: peak frontier length.
type Result[A any] struct {
	Status      Status
	Actions     []A
	Cost        float64
	Expanded    int
	Generated   int
	MaxFrontier int
}

// Solved reports whether a goal was reached.
func (r *Result[A]) Solved() bool {
	return r != nil && r.Status != NotFound
}

// Option configures Search via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds embedding-level knobs for Search. None of them changes the
// traversal order; they only bound or observe it.
type Options struct {
	// Ctx is checked once per pop; cancellation aborts with ctx.Err().
	Ctx context.Context

	// MaxExpansions, if > 0, aborts with ErrExpansionLimit before the
	// (MaxExpansions+1)-th expansion. 0 means no limit.
	MaxExpansions int

	// Logger receives Debug events for the run.
	Logger *slog.Logger

	// OnExpand is called before a state's successors are generated.
	// Returning an error aborts the search with that error.
	OnExpand func(state any, depth int) error

	// OnPush is called for every frontier push with the entry's key
	// (0 for unkeyed disciplines).
	OnPush func(state any, key float64)

	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no expansion limit
//   - a discarding logger
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		Logger:        slog.New(slog.DiscardHandler),
		OnExpand:      func(any, int) error { return nil },
		OnPush:        func(any, float64) {},
	}
}

// WithContext sets a context for cancellation and deadlines.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: stop with ErrExpansionLimit after n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger routes Debug events of the run to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run before each expansion.
func WithOnExpand(fn func(state any, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnPush registers a callback run on each frontier push.
func WithOnPush(fn func(state any, key float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

package instrument

import (
	"sync"

	"go.uber.org/atomic"

	"github.com/katalvlaran/lvsearch/search"
)

// Counts is a snapshot of capability calls made on a Counting problem.
type Counts struct {
	StartState    int64
	IsGoal        int64
	Successors    int64
	CostOfActions int64
}

// Counting wraps a problem and counts calls to each capability.
// It is safe to share between goroutines; the wrapped problem must be too.
type Counting[S comparable, A any] struct {
	inner search.Problem[S, A]

	start     atomic.Int64
	goalTests atomic.Int64
	expanded  atomic.Int64
	costs     atomic.Int64

	mu       sync.Mutex
	record   bool
	expOrder []S
}

var _ search.Problem[int, int] = (*Counting[int, int])(nil)

// NewCounting wraps p. With recordOrder set, the states passed to
// Successors are also kept in call order (see Expansions).
func NewCounting[S comparable, A any](p search.Problem[S, A], recordOrder bool) *Counting[S, A] {
	return &Counting[S, A]{inner: p, record: recordOrder}
}

// StartState delegates to the wrapped problem.
func (c *Counting[S, A]) StartState() S {
	c.start.Inc()
	return c.inner.StartState()
}

// IsGoal delegates to the wrapped problem.
func (c *Counting[S, A]) IsGoal(s S) bool {
	c.goalTests.Inc()
	return c.inner.IsGoal(s)
}

// Successors delegates to the wrapped problem. Each call is one expansion.
func (c *Counting[S, A]) Successors(s S) []search.Successor[S, A] {
	c.expanded.Inc()
	if c.record {
		c.mu.Lock()
		c.expOrder = append(c.expOrder, s)
		c.mu.Unlock()
	}

	return c.inner.Successors(s)
}

// CostOfActions delegates to the wrapped problem.
func (c *Counting[S, A]) CostOfActions(actions []A) float64 {
	c.costs.Inc()
	return c.inner.CostOfActions(actions)
}

// Counts returns the current call counts.
func (c *Counting[S, A]) Counts() Counts {
	return Counts{
		StartState:    c.start.Load(),
		IsGoal:        c.goalTests.Load(),
		Successors:    c.expanded.Load(),
		CostOfActions: c.costs.Load(),
	}
}

// Expansions returns the expanded states in call order. It is empty unless
// the wrapper was created with recordOrder.
func (c *Counting[S, A]) Expansions() []S {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]S, len(c.expOrder))
	copy(out, c.expOrder)

	return out
}

// Reset zeroes the counters and forgets the expansion order.
func (c *Counting[S, A]) Reset() {
	c.start.Store(0)
	c.goalTests.Store(0)
	c.expanded.Store(0)
	c.costs.Store(0)

	c.mu.Lock()
	c.expOrder = nil
	c.mu.Unlock()
}

package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/google/uuid"

	"github.com/katalvlaran/lvsearch/instrument"
	"github.com/katalvlaran/lvsearch/search"
)

// Sentinel errors for batch runs.
var (
	// ErrNoQueries indicates an empty query list.
	ErrNoQueries = errors.New("batch: no queries")
	// ErrBadWorkers indicates a non-positive worker count.
	ErrBadWorkers = errors.New("batch: worker count must be positive")
	// ErrQueryPanicked wraps the panic value of a query whose problem panicked,
	// e.g. a search.Unimplemented capability.
	ErrQueryPanicked = errors.New("batch: query panicked")
)

const defaultWorkers = 4

// Query is one search to run.
type Query[S comparable, A any] struct {
	// Name identifies the query in logs and outcomes; it defaults to
	// "<index>-<strategy>".
	Name      string
	Problem   search.Problem[S, A]
	Strategy  search.Strategy
	Heuristic search.Heuristic[S, A]
}

// Outcome is the result of one Query.
type Outcome[A any] struct {
	Name     string
	Strategy search.Strategy
	Result   *search.Result[A]
	Err      error
	Duration time.Duration
}

// Report is the result of one Run.
type Report[A any] struct {
	// RunID tags every log line of the run.
	RunID    string
	Outcomes []Outcome[A]
}

// Failed returns the outcomes that ended with an error.
func (r *Report[A]) Failed() []Outcome[A] {
	var out []Outcome[A]
	for _, o := range r.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}

	return out
}

// Options configures Run.
type Options struct {
	Workers    int
	Logger     *slog.Logger
	Metrics    *instrument.Metrics
	SearchOpts []search.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns four workers, a discarding logger, no metrics and
// no extra search options.
func DefaultOptions() Options {
	return Options{
		Workers: defaultWorkers,
		Logger:  slog.New(slog.DiscardHandler),
	}
}

// WithWorkers bounds the number of concurrent searches.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger sets the run logger; nil keeps the current one.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records every query in m.
func WithMetrics(m *instrument.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithSearchOptions appends options passed to every search. Run always adds
// its own context after them.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) { o.SearchOpts = append(o.SearchOpts, opts...) }
}

// Run executes queries on a pool of Options.Workers goroutines and waits for
// all of them. Cancelling ctx stops running searches at their next pop and
// skips queries that have not started; both report the context error in
// their Outcome.
//
// A query whose problem panics ends with an ErrQueryPanicked Outcome that
// also wraps the panic value when it is an error (search.ErrNotImplemented).
//
// Run itself fails only for invalid input: ErrNoQueries, ErrBadWorkers.
func Run[S comparable, A any](ctx context.Context, queries []Query[S, A], opts ...Option) (*Report[A], error) {
	if len(queries) == 0 {
		return nil, ErrNoQueries
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Workers <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadWorkers, o.Workers)
	}

	runID := newRunID()
	log := o.Logger.With("run_id", runID)
	log.Info("batch started", "queries", len(queries), "workers", o.Workers)

	pool := pond.NewPool(o.Workers)
	defer pool.StopAndWait()

	report := &Report[A]{RunID: runID, Outcomes: make([]Outcome[A], len(queries))}
	tasks := make([]pond.Task, len(queries))
	names := make([]string, len(queries))
	for i, q := range queries {
		names[i] = q.Name
		if names[i] == "" {
			names[i] = fmt.Sprintf("%d-%s", i, q.Strategy)
		}
		// each task writes only its own slot
		tasks[i] = pool.Submit(func() {
			report.Outcomes[i] = runOne(ctx, log, o, names[i], q)
		})
	}
	for i, t := range tasks {
		// runOne recovers its own panics; a task error means the slot was never written
		if err := t.Wait(); err != nil && report.Outcomes[i].Err == nil {
			report.Outcomes[i] = Outcome[A]{Name: names[i], Strategy: queries[i].Strategy, Err: err}
		}
	}

	log.Info("batch finished", "failed", len(report.Failed()))

	return report, nil
}

func runOne[S comparable, A any](ctx context.Context, log *slog.Logger, o Options, name string, q Query[S, A]) (out Outcome[A]) {
	out = Outcome[A]{Name: name, Strategy: q.Strategy}
	if err := ctx.Err(); err != nil {
		out.Err = err
		return out
	}

	sopts := append(append([]search.Option{}, o.SearchOpts...), search.WithContext(ctx))
	began := time.Now()
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		out.Result, out.Err = nil, panicError(r)
		out.Duration = time.Since(began)
		o.Metrics.Observe(q.Strategy, instrument.StatusError, 0, out.Duration)
		log.Error("query panicked", "query", name, "err", out.Err)
	}()
	out.Result, out.Err = instrument.Search(o.Metrics, q.Problem, q.Strategy, q.Heuristic, sopts...)
	out.Duration = time.Since(began)

	if out.Err != nil {
		log.Warn("query failed", "query", name, "err", out.Err)
		return out
	}
	log.Debug("query finished",
		"query", name,
		"status", out.Result.Status.String(),
		"cost", out.Result.Cost,
		"expanded", out.Result.Expanded,
		"duration", out.Duration,
	)

	return out
}

// panicError turns a recovered panic value into an ErrQueryPanicked error,
// keeping an error value in the chain.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrQueryPanicked, err)
	}

	return fmt.Errorf("%w: %v", ErrQueryPanicked, r)
}

// newRunID returns a time-ordered UUID, falling back to a random one.
func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

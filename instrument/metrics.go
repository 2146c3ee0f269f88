package instrument

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvsearch/search"
)

// StatusError labels runs that returned an error (cancelled, over budget, ...).
const StatusError = "error"

// Metrics holds the Prometheus collectors for search runs.
type Metrics struct {
	searches *prometheus.CounterVec
	expanded *prometheus.HistogramVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the search collectors with reg. A nil reg uses the
// default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		searches: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "lvsearch_searches_total",
			Help: "Total number of searches by strategy and outcome status",
		}, []string{"strategy", "status"}),
		expanded: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvsearch_expanded_states",
			Help:    "Number of states expanded per search by strategy",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}, []string{"strategy"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lvsearch_search_duration_seconds",
			Help:    "Duration of a search by strategy",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"strategy"}),
	}
}

// Observe records one finished run. status is a search.Status string or
// StatusError.
func (m *Metrics) Observe(strategy search.Strategy, status string, expanded int, d time.Duration) {
	if m == nil {
		return
	}
	s := strategy.String()
	m.searches.WithLabelValues(s, status).Inc()
	m.expanded.WithLabelValues(s).Observe(float64(expanded))
	m.duration.WithLabelValues(s).Observe(d.Seconds())
}

// Search runs search.Search and records its outcome in m. A nil m only runs
// the search.
func Search[S comparable, A any](
	m *Metrics,
	p search.Problem[S, A],
	strategy search.Strategy,
	h search.Heuristic[S, A],
	opts ...search.Option,
) (*search.Result[A], error) {
	began := time.Now()
	res, err := search.Search(p, strategy, h, opts...)
	elapsed := time.Since(began)

	status, expanded := StatusError, 0
	if res != nil {
		expanded = res.Expanded
	}
	if err == nil {
		status = res.Status.String()
	}
	m.Observe(strategy, status, expanded, elapsed)

	return res, err
}

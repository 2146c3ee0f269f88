// Package instrument observes searches without changing them.
//
// Counting wraps any search.Problem and counts how often the driver calls
// each capability; Metrics exports per-run outcomes to Prometheus. Search
// ties both together around search.Search.
package instrument

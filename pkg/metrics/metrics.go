// Package metrics defines the Prometheus metric collectors used across the
// backend and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the backend.
type Metrics struct {
	ReindexTotal             *prometheus.CounterVec
	ReindexDuration          prometheus.Histogram
	IndexRowsWritten         *prometheus.CounterVec
	ProgressTransitionsTotal *prometheus.CounterVec
	BooksDeletedTotal        prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	m := &Metrics{
		ReindexTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "reindex_total",
				Help: "Total reindex runs by result (success, conflict, error).",
			},
			[]string{"result"},
		),
		ReindexDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "reindex_duration_seconds",
				Help:    "Wall-clock duration of one book reindex in seconds.",
				Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
			},
		),
		IndexRowsWritten: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "index_rows_written_total",
				Help: "Inverted-index rows touched by reconciliation, by operation (insert, update, delete).",
			},
			[]string{"op"},
		),
		ProgressTransitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "progress_transitions_total",
				Help: "Learning-progress transitions by action and result (ok, rejected, error).",
			},
			[]string{"action", "result"},
		),
		BooksDeletedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "books_deleted_total",
				Help: "Books removed from the library, including all index rows.",
			},
		),
	}

	prometheus.MustRegister(
		m.ReindexTotal,
		m.ReindexDuration,
		m.IndexRowsWritten,
		m.ProgressTransitionsTotal,
		m.BooksDeletedTotal,
	)

	return m
}

// Handler returns the HTTP handler serving the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

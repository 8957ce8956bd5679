package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the Prometheus metrics for the risk service.
type Registry struct {
	registry *prometheus.Registry

	// Analyses run, labeled by analysis kind and outcome
	Analyses *prometheus.CounterVec

	// AnalysisDuration tracks wall time per analysis kind
	AnalysisDuration *prometheus.HistogramVec

	// HistoryRows gauges the archived run counts per table
	HistoryRows *prometheus.GaugeVec
}

// New creates the metrics registry.
func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		Analyses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "riskcore_analyses_total",
				Help: "Total analyses run by kind and status",
			},
			[]string{"kind", "status"},
		),

		AnalysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "riskcore_analysis_duration_seconds",
				Help:    "Duration of each analysis in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"kind"},
		),

		HistoryRows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "riskcore_history_rows",
				Help: "Archived result rows per table",
			},
			[]string{"table"},
		),
	}

	r.registry.MustRegister(r.Analyses, r.AnalysisDuration, r.HistoryRows)
	return r
}

// Observe records one analysis run.
func (r *Registry) Observe(kind, status string, elapsed time.Duration) {
	r.Analyses.WithLabelValues(kind, status).Inc()
	r.AnalysisDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

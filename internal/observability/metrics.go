package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, gauges, and histograms for one
// pipeline run. They live on a private registry so the end-of-run textfile
// export gathers exactly this tool's series and repeated construction in
// tests cannot collide.
type Metrics struct {
	registry *prometheus.Registry

	IncidentsLoaded prometheus.Counter
	RowsDropped     prometheus.Counter
	Aggregates      prometheus.Gauge
	Categories      prometheus.Gauge
	Locations       prometheus.Gauge

	StageDuration *prometheus.HistogramVec // label: stage={extract,aggregate,render,write}

	// Geocoding enrichment metrics.
	GeocodeRequests *prometheus.CounterVec // labels: outcome={success,error,empty}
	GeocodeCache    *prometheus.CounterVec // labels: result={hit,miss}
}

// NewMetrics creates all pipeline metrics registered on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		IncidentsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crimemap",
			Name:      "incidents_loaded_total",
			Help:      "Valid incident rows that survived cleaning.",
		}),
		RowsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crimemap",
			Name:      "rows_dropped_total",
			Help:      "Rows dropped for missing or non-numeric coordinates.",
		}),
		Aggregates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crimemap",
			Name:      "aggregates",
			Help:      "Distinct (location, category) aggregate rows.",
		}),
		Categories: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crimemap",
			Name:      "categories",
			Help:      "Distinct incident categories.",
		}),
		Locations: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crimemap",
			Name:      "locations",
			Help:      "Distinct incident coordinates.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crimemap",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each pipeline stage.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10},
		}, []string{"stage"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crimemap",
			Name:      "geocode_requests_total",
			Help:      "Reverse geocoding requests by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crimemap",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		m.IncidentsLoaded,
		m.RowsDropped,
		m.Aggregates,
		m.Categories,
		m.Locations,
		m.StageDuration,
		m.GeocodeRequests,
		m.GeocodeCache,
	)

	return m
}

// WriteTextfile dumps the run's metrics to path in the Prometheus text
// exposition format, the standard handoff for run-to-completion jobs
// scraped via the node-exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

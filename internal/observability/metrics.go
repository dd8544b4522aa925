package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for the report service.
type Metrics struct {
	ReportsSubmitted   prometheus.Counter
	ValidationFailures *prometheus.CounterVec // label: reason={incomplete,coordinate,filter,date_range}
	SearchesTotal      prometheus.Counter
	StatsRequests      *prometheus.CounterVec   // label: kind={areas,hourly,monthly,weekdays,summary,map}
	RequestDuration    *prometheus.HistogramVec // label: handler

	// Geocoding metrics.
	GeocodeRequests *prometheus.CounterVec // label: outcome={success,empty}
	GeocodeCache    *prometheus.CounterVec // label: result={hit,miss}
	GeocodeEnabled  prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.ReportsSubmitted,
		m.ValidationFailures,
		m.SearchesTotal,
		m.StatsRequests,
		m.RequestDuration,
		m.GeocodeRequests,
		m.GeocodeCache,
		m.GeocodeEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		ReportsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crimewatch",
			Name:      "reports_submitted_total",
			Help:      "Total reports accepted and persisted.",
		}),
		ValidationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crimewatch",
			Name:      "validation_failures_total",
			Help:      "Rejected submissions and searches by failure reason.",
		}, []string{"reason"}),
		SearchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "crimewatch",
			Name:      "searches_total",
			Help:      "Total report searches executed.",
		}),
		StatsRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crimewatch",
			Name:      "stats_requests_total",
			Help:      "Statistics computations by kind.",
		}, []string{"kind"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "crimewatch",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration by handler.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"handler"}),
		GeocodeRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crimewatch",
			Name:      "geocode_requests_total",
			Help:      "Reverse-geocoding lookups by outcome.",
		}, []string{"outcome"}),
		GeocodeCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "crimewatch",
			Name:      "geocode_cache_total",
			Help:      "Geocoding cache lookups by result.",
		}, []string{"result"}),
		GeocodeEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "crimewatch",
			Name:      "geocode_enabled",
			Help:      "1 when reverse geocoding is enabled, 0 otherwise.",
		}),
	}
}

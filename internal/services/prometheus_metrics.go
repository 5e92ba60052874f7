package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	searchRequests    *prometheus.CounterVec
	searchDuration    prometheus.Histogram
	searchResults     prometheus.Histogram
	preferenceToggles *prometheus.CounterVec
	preferenceCorrupt *prometheus.CounterVec
}

// NewPrometheusMetrics registers the collectors on reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)
	return &PrometheusMetrics{
		searchRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "search_requests_total",
				Help: "Total number of search requests by outcome",
			},
			[]string{"status"},
		),
		searchDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_duration_seconds",
				Help:    "Search duration in seconds including the result delay",
				Buckets: prometheus.DefBuckets,
			},
		),
		searchResults: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "search_results",
				Help:    "Number of cards returned per search",
				Buckets: prometheus.LinearBuckets(0, 2, 10),
			},
		),
		preferenceToggles: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "preference_toggles_total",
				Help: "Total number of owned and favorite toggles",
			},
			[]string{"list", "action"},
		),
		preferenceCorrupt: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "preference_corrupt_total",
				Help: "Total number of unreadable stored preference lists",
			},
			[]string{"list"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	list := tags["list"]

	switch name {
	case "search_request":
		if status := tags["status"]; status != "" {
			m.searchRequests.WithLabelValues(status).Inc()
		}
	case "preference_toggle":
		if action := tags["action"]; list != "" && action != "" {
			m.preferenceToggles.WithLabelValues(list, action).Inc()
		}
	case "preference_corrupt":
		if list != "" {
			m.preferenceCorrupt.WithLabelValues(list).Inc()
		}
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "search":
		m.searchDuration.Observe(duration.Seconds())
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "search_results":
		m.searchResults.Observe(value)
	}
}

// NoopMetrics discards everything
type NoopMetrics struct{}

func (NoopMetrics) IncrementCounter(string, map[string]string) {}
func (NoopMetrics) RecordProcessingTime(string, time.Duration) {}
func (NoopMetrics) RecordGauge(string, float64, map[string]string) {}

package services

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg)

	m.IncrementCounter("search_request", map[string]string{"status": "success"})
	m.IncrementCounter("search_request", map[string]string{"status": "success"})
	m.IncrementCounter("search_request", map[string]string{"status": "rejected"})
	m.IncrementCounter("search_request", nil)
	m.IncrementCounter("preference_toggle", map[string]string{"list": "myCards", "action": "added"})
	m.IncrementCounter("preference_corrupt", map[string]string{"list": "lastSearches"})
	m.IncrementCounter("unknown_metric", map[string]string{"status": "success"})

	expected := `
# HELP search_requests_total Total number of search requests by outcome
# TYPE search_requests_total counter
search_requests_total{status="rejected"} 1
search_requests_total{status="success"} 2
# HELP preference_toggles_total Total number of owned and favorite toggles
# TYPE preference_toggles_total counter
preference_toggles_total{action="added",list="myCards"} 1
# HELP preference_corrupt_total Total number of unreadable stored preference lists
# TYPE preference_corrupt_total counter
preference_corrupt_total{list="lastSearches"} 1
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"search_requests_total", "preference_toggles_total", "preference_corrupt_total")
	assert.NoError(t, err)
}

func TestPrometheusMetrics_Observations(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewPrometheusMetrics(reg).(*PrometheusMetrics)

	m.RecordProcessingTime("search", 350*time.Millisecond)
	m.RecordProcessingTime("other", time.Second)
	m.RecordGauge("search_results", 3, nil)

	families, err := reg.Gather()
	require.NoError(t, err)

	observed := map[string]uint64{}
	for _, f := range families {
		for _, metric := range f.GetMetric() {
			if h := metric.GetHistogram(); h != nil {
				observed[f.GetName()] = h.GetSampleCount()
			}
		}
	}
	assert.Equal(t, uint64(1), observed["search_duration_seconds"])
	assert.Equal(t, uint64(1), observed["search_results"])
}

func TestPrometheusMetrics_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewPrometheusMetrics(prometheus.NewRegistry())
		NewPrometheusMetrics(prometheus.NewRegistry())
	})
}

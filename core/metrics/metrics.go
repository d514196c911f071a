package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Item outcomes recorded by the sync orchestrators.
const (
	OutcomeAdded    = "added"
	OutcomeUpdated  = "updated"
	OutcomeSkipped  = "skipped"
	OutcomeRemoved  = "removed"
	OutcomeNotFound = "not_found"
)

var (
	// Upstream API
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wowsync_api_requests_total",
			Help: "Total number of upstream API requests by HTTP status",
		},
		[]string{"status"},
	)

	APIRetriesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "wowsync_api_retries_total",
			Help: "Total number of upstream API retries after a transient status",
		},
	)

	// Sync runs
	SyncItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wowsync_sync_items_total",
			Help: "Total number of items processed by sync runs, by outcome",
		},
		[]string{"domain", "outcome"},
	)

	SyncRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wowsync_sync_runs_total",
			Help: "Total number of sync runs by result",
		},
		[]string{"domain", "result"},
	)

	SyncDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "wowsync_sync_duration_seconds",
			Help:    "Duration of sync runs in seconds",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800},
		},
		[]string{"domain"},
	)
)

// RecordAPIRequest records one upstream response status. A status of 0 marks a
// transport failure.
func RecordAPIRequest(status int) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	APIRequestsTotal.WithLabelValues(label).Inc()
}

// RecordAPIRetry records one retry of an upstream request.
func RecordAPIRetry() {
	APIRetriesTotal.Inc()
}

// RecordItems adds count items with the given outcome for a domain.
func RecordItems(domain, outcome string, count int) {
	if count <= 0 {
		return
	}
	SyncItemsTotal.WithLabelValues(domain, outcome).Add(float64(count))
}

// RecordRun records the result and duration of one sync run.
func RecordRun(domain string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	SyncRunsTotal.WithLabelValues(domain, result).Inc()
	SyncDuration.WithLabelValues(domain).Observe(duration.Seconds())
}

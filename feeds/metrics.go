package feeds

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	fetchAttempts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedview_fetch_attempts_total",
		Help: "The total number of fetch requests handed to the worker",
	})

	fetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedview_fetch_errors_total",
		Help: "The total number of fetch requests that ended in an error",
	})

	fetchedEntries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedview_fetched_entries_total",
		Help: "The total number of feed entries delivered to the interactor",
	})

	fetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "feedview_fetch_duration_seconds",
		Help:    "Duration of feed fetches as seen by the worker",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10), // Start at 10ms, double each bucket, 10 buckets
	})
)

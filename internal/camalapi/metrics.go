package camalapi

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	apiRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "camal_api_requests_total",
			Help: "Total number of requests sent to the camal API",
		},
		[]string{"method", "resource", "outcome"},
	)

	apiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "camal_api_request_duration_seconds",
			Help:    "camal API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "resource"},
	)
)

func observe(method, resource, outcome string, start time.Time) {
	apiRequestsTotal.WithLabelValues(method, resource, outcome).Inc()
	apiRequestDuration.WithLabelValues(method, resource).Observe(time.Since(start).Seconds())
}

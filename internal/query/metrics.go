package query

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_hits_total",
			Help: "Reads served from the query cache without a network call",
		},
		[]string{"tag"},
	)

	cacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_cache_misses_total",
			Help: "Reads that needed a fetch",
		},
		[]string{"tag"},
	)

	fetchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_fetch_errors_total",
			Help: "Fetches that failed after retries",
		},
		[]string{"tag"},
	)

	invalidations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "query_invalidations_total",
			Help: "Tag invalidations triggered by mutations",
		},
		[]string{"tag"},
	)
)

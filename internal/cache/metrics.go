package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bridge_cache_hits_total",
			Help: "Total number of telemetry cache hits",
		},
	)

	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bridge_cache_misses_total",
			Help: "Total number of telemetry cache misses (absent or expired)",
		},
	)
)

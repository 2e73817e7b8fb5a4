package vaillant

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// vendorRequestsTotal counts vendor API calls by endpoint and HTTP status.
	vendorRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaillant_requests_total",
			Help: "Total Vaillant API requests by endpoint and status",
		},
		[]string{"endpoint", "status"},
	)

	// vendorAuthTotal counts login and refresh attempts by outcome.
	vendorAuthTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vaillant_auth_total",
			Help: "Total Vaillant authentication attempts by operation and outcome",
		},
		[]string{"operation", "outcome"}, // "login"/"refresh", "ok"/"error"
	)
)

package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "civic_client",
			Name:      "api_requests_total",
			Help:      "Requests issued to the backend, including retries.",
		},
		[]string{"operation"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "civic_client",
			Name:      "api_request_failures_total",
			Help:      "Requests that ended in a transport error or non-success status.",
		},
		[]string{"operation"},
	)
)

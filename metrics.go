package civic

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var staleResponsesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "civic_client",
		Name:      "stale_responses_discarded_total",
		Help:      "Responses discarded because a newer request for the same operation had already begun.",
	},
	[]string{"operation"},
)

// Package metrics holds the service's Prometheus instruments, registered on
// the default registry and exposed on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationCalls counts weather snapshots produced by the diurnal
	// model, labeled by body.
	SimulationCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planetweather_simulation_calls_total",
		Help: "Total simulated weather snapshots, labeled by body id.",
	}, []string{"body"})

	// ProviderFetches counts live provider fetch attempts by outcome.
	ProviderFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planetweather_provider_fetches_total",
		Help: "Live data provider fetch attempts, labeled by provider and outcome.",
	}, []string{"provider", "outcome"})

	// HTTPRequests counts served API requests by route and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "planetweather_http_requests_total",
		Help: "Handled HTTP API requests, labeled by route and status code.",
	}, []string{"route", "status"})
)

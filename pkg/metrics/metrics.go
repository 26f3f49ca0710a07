// Package metrics holds the prometheus counters the service emits and the
// exposition handler mounted at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// UnauthenticatedCalls counts requests rejected by the API key gate.
	UnauthenticatedCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "unauthenticated_calls_count",
		Help: "Requests rejected because the API key was missing or incorrect",
	}, []string{"uri"})

	// NoUniqueID counts create requests that exhausted all id candidates.
	NoUniqueID = promauto.NewCounter(prometheus.CounterOpts{
		Name: "saving_link_impossible_no_unique_id",
		Help: "Link creations that failed because no unique id could be generated",
	})

	// RequestErrors counts requests that ended in an internal failure.
	RequestErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "request_errors_total",
		Help: "Requests that failed with an internal error",
	}, []string{"path"})
)

// Handler returns the exposition endpoint for the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Package metrics registers prometheus collectors for the matching service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the matching core.
type Metrics struct {
	MatchesCreated    prometheus.Counter
	CandidateSearches *prometheus.CounterVec
	StatusTransitions *prometheus.CounterVec
	RequestDuration   *prometheus.HistogramVec
}

// New registers all collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		MatchesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "miharina_matches_created_total",
			Help: "Total number of matches created",
		}),
		CandidateSearches: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "miharina_candidate_searches_total",
			Help: "Total candidate discovery requests by kind",
		}, []string{"kind"}),
		StatusTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "miharina_match_status_transitions_total",
			Help: "Total match status transitions by new status",
		}, []string{"status"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "miharina_http_request_duration_seconds",
			Help:    "HTTP request duration by method and status",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"method", "status"}),
	}
}

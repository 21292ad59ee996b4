package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	recommendationsServedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_recommendations_served_total",
			Help: "Count of recommendations served, by producing algorithm.",
		},
		[]string{"algorithm"},
	)

	feedbackEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reco_feedback_events_total",
			Help: "Count of recorded interaction events by action.",
		},
		[]string{"action"},
	)

	catalogFallbackTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "reco_catalog_fallback_total",
			Help: "Catalog refreshes that failed and kept the previous or seed snapshot.",
		},
	)
)

func init() {
	prometheus.MustRegister(recommendationsServedTotal, feedbackEventsTotal, catalogFallbackTotal)
}

// Package observability exposes Prometheus collectors for roster operations.
package observability

import "github.com/prometheus/client_golang/prometheus"

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of accepted signups, labeled by activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of accepted unregistrations, labeled by activity.",
	}, []string{"activity"})

	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "rejected_requests_total",
		Help:      "Number of roster mutations rejected by validation, labeled by reason.",
	}, []string{"reason"})

	participantsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "activity_participants",
		Help:      "Current roster size per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectedCounter, participantsGauge)
}

// RecordSignup counts an accepted signup and updates the roster gauge.
func RecordSignup(activity string, rosterSize int) {
	signupCounter.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordUnregister counts an accepted unregistration and updates the roster gauge.
func RecordUnregister(activity string, rosterSize int) {
	unregisterCounter.WithLabelValues(activity).Inc()
	participantsGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

// RecordRejected counts a rejected roster mutation.
func RecordRejected(reason string) {
	rejectedCounter.WithLabelValues(reason).Inc()
}

// SetRosterSize primes the roster gauge, used at startup for the seed catalog.
func SetRosterSize(activity string, rosterSize int) {
	participantsGauge.WithLabelValues(activity).Set(float64(rosterSize))
}

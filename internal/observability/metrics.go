package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "signups_total",
		Help:      "Number of signup attempts grouped by activity and outcome.",
	}, []string{"activity", "outcome"})

	withdrawalCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "withdrawals_total",
		Help:      "Number of withdrawal attempts grouped by activity and outcome.",
	}, []string{"activity", "outcome"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "registry",
		Name:      "roster_size",
		Help:      "Current number of participants enrolled per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, withdrawalCounter, rosterSizeGauge)
}

// RecordSignup counts one enroll attempt for the activity.
func RecordSignup(activity, outcome string) {
	signupCounter.WithLabelValues(activity, outcome).Inc()
}

// RecordWithdrawal counts one withdraw attempt for the activity.
func RecordWithdrawal(activity, outcome string) {
	withdrawalCounter.WithLabelValues(activity, outcome).Inc()
}

// RecordRosterSize updates the roster size gauge for the activity.
func RecordRosterSize(activity string, size int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

var (
	// FormSubmissions counts form posts by form name and outcome.
	FormSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_form_submissions_total",
		Help: "Total number of form submissions by form and outcome",
	}, []string{"form", "outcome"})

	// Notifications counts notification email attempts.
	Notifications = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portfolio_notifications_total",
		Help: "Total number of notification emails by kind and outcome",
	}, []string{"kind", "outcome"})
)

// ObserveSubmission records one form submission.
func ObserveSubmission(form, outcome string) {
	FormSubmissions.WithLabelValues(form, outcome).Inc()
}

// ObserveNotification records one notification attempt.
func ObserveNotification(kind string, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailed
	}
	Notifications.WithLabelValues(kind, outcome).Inc()
}

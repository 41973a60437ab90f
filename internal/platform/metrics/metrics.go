package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	UsersRegistered prometheus.Counter
	Logins          prometheus.Counter
	AuthFailures    prometheus.Counter
	ReviewUpserts   prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookstand_users_registered_total",
			Help: "Total number of users registered",
		}),
		Logins: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookstand_logins_total",
			Help: "Total number of successful logins",
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookstand_auth_failures_total",
			Help: "Total number of rejected authentication attempts",
		}),
		ReviewUpserts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "bookstand_review_upserts_total",
			Help: "Total number of review create/overwrite operations",
		}),
	}
}

// IncrementUsersRegistered increments the registration counter by 1.
func (m *Metrics) IncrementUsersRegistered() {
	if m != nil {
		m.UsersRegistered.Inc()
	}
}

// IncrementLogins increments the successful login counter by 1.
func (m *Metrics) IncrementLogins() {
	if m != nil {
		m.Logins.Inc()
	}
}

// IncrementAuthFailures increments the rejected authentication counter by 1.
func (m *Metrics) IncrementAuthFailures() {
	if m != nil {
		m.AuthFailures.Inc()
	}
}

// IncrementReviewUpserts increments the review upsert counter by 1.
func (m *Metrics) IncrementReviewUpserts() {
	if m != nil {
		m.ReviewUpserts.Inc()
	}
}

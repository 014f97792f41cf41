// Package metrics provides observability for the user module.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks user account activity.
type Metrics struct {
	UserCreated        prometheus.Counter
	PasswordChanges    *prometheus.CounterVec
	ValidationRejected *prometheus.CounterVec
}

// New creates a Metrics instance with all user module metrics registered.
func New() *Metrics {
	return &Metrics{
		UserCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "registro_users_created_total",
			Help: "Total number of users created",
		}),
		PasswordChanges: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "registro_user_password_changes_total",
			Help: "Password change attempts by outcome",
		}, []string{"outcome"}),
		ValidationRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "registro_user_validation_rejected_total",
			Help: "User writes rejected by validation, by error code",
		}, []string{"code"}),
	}
}

// IncrementUserCreated records a successful user creation.
func (m *Metrics) IncrementUserCreated() {
	m.UserCreated.Inc()
}

// IncrementPasswordChange records a password change attempt. Outcome is
// "success", "unauthorized" or "rejected".
func (m *Metrics) IncrementPasswordChange(outcome string) {
	m.PasswordChanges.WithLabelValues(outcome).Inc()
}

// IncrementValidationRejected records a rejected write by error code.
func (m *Metrics) IncrementValidationRejected(code string) {
	m.ValidationRejected.WithLabelValues(code).Inc()
}

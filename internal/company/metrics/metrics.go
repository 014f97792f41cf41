// Package metrics provides observability for the company module.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks company creation counts and critical path durations.
type Metrics struct {
	CompanyCreated     prometheus.Counter
	ValidationRejected *prometheus.CounterVec
	ListDuration       prometheus.Histogram
}

// New creates a Metrics instance with all company module metrics registered.
func New() *Metrics {
	return &Metrics{
		CompanyCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "registro_companies_created_total",
			Help: "Total number of companies created",
		}),
		ValidationRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "registro_company_validation_rejected_total",
			Help: "Company writes rejected by validation, by error code",
		}, []string{"code"}),
		ListDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "registro_company_list_duration_seconds",
			Help:    "Duration of company list queries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// IncrementCompanyCreated records a successful company creation.
func (m *Metrics) IncrementCompanyCreated() {
	m.CompanyCreated.Inc()
}

// IncrementValidationRejected records a rejected write by error code.
func (m *Metrics) IncrementValidationRejected(code string) {
	m.ValidationRejected.WithLabelValues(code).Inc()
}

// ObserveList records the duration of a list query. Call with time.Now()
// captured at the start of the operation.
func (m *Metrics) ObserveList(start time.Time) {
	m.ListDuration.Observe(time.Since(start).Seconds())
}

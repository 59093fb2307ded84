package submission

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for SubmissionsTotal.
const (
	OutcomeAccepted    = "accepted"
	OutcomePartial     = "partial"
	OutcomeInvalid     = "invalid"
	OutcomeRejected    = "rejected"
	OutcomeUnavailable = "unavailable"
)

// Metrics holds Prometheus collectors for the submission pipeline.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	SubmissionsTotal *prometheus.CounterVec
	SendsTotal       *prometheus.CounterVec
	PersistTotal     *prometheus.CounterVec
	Duration         *prometheus.HistogramVec
}

// NewMetrics registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SubmissionsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_submissions_total",
			Help: "Total number of processed submissions, labeled by kind and outcome",
		}, []string{"kind", "outcome"}),
		SendsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_notifications_total",
			Help: "Total number of notification send attempts, labeled by kind, recipient and result",
		}, []string{"kind", "recipient", "result"}),
		PersistTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "intake_persist_total",
			Help: "Total number of persistence attempts, labeled by kind and result",
		}, []string{"kind", "result"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "intake_pipeline_duration_seconds",
			Help:    "Time spent processing a submission in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"kind"}),
	}
}

func (m *Metrics) observeSubmission(kind Kind, outcome string, took time.Duration) {
	if m == nil {
		return
	}
	m.SubmissionsTotal.WithLabelValues(string(kind), outcome).Inc()
	m.Duration.WithLabelValues(string(kind)).Observe(took.Seconds())
}

func (m *Metrics) observeSend(kind Kind, o NotificationOutcome) {
	if m == nil {
		return
	}
	m.SendsTotal.WithLabelValues(string(kind), string(o.Recipient), result(o.Sent)).Inc()
}

func (m *Metrics) observePersist(kind Kind, saved bool) {
	if m == nil {
		return
	}
	m.PersistTotal.WithLabelValues(string(kind), result(saved)).Inc()
}

func result(ok bool) string {
	if ok {
		return "ok"
	}
	return "failed"
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeCheckedIn      = "checked_in"
	OutcomeAlreadyChecked = "already_checked_in"
	OutcomeNotRegistered  = "not_registered"
	OutcomeUnavailable    = "storage_unavailable"
)

// Metrics holds the Prometheus collectors for the check-in engine. A nil
// *Metrics is valid and records nothing.
type Metrics struct {
	CheckIns            *prometheus.CounterVec
	NameUpdateFailures  prometheus.Counter
	IncrementFailures   prometheus.Counter
	EventsDropped       prometheus.Counter
	EventsPublished     *prometheus.CounterVec
	ReconcileDrift      prometheus.Counter
	ReconcileSweptTotal prometheus.Counter
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CheckIns: f.NewCounterVec(prometheus.CounterOpts{
			Name: "volunteer_checkins_total",
			Help: "Check-in attempts by outcome",
		}, []string{"outcome"}),
		NameUpdateFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "volunteer_checkin_name_update_failures_total",
			Help: "Display name updates that failed after a committed check-in",
		}),
		IncrementFailures: f.NewCounter(prometheus.CounterOpts{
			Name: "volunteer_checkin_counter_increment_failures_total",
			Help: "Position counter increments that failed after a committed check-in",
		}),
		EventsDropped: f.NewCounter(prometheus.CounterOpts{
			Name: "volunteer_checkin_events_dropped_total",
			Help: "Check-in events dropped because the publish queue was full",
		}),
		EventsPublished: f.NewCounterVec(prometheus.CounterOpts{
			Name: "volunteer_checkin_events_published_total",
			Help: "Check-in events handed to the publisher by result",
		}, []string{"result"}),
		ReconcileDrift: f.NewCounter(prometheus.CounterOpts{
			Name: "volunteer_checkin_reconcile_drift_total",
			Help: "Absolute counter drift corrected by reconciliation",
		}),
		ReconcileSweptTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "volunteer_checkin_reconcile_swept_total",
			Help: "Missed increments applied by the reconciliation sweep",
		}),
	}
}

func (m *Metrics) CheckIn(outcome string) {
	if m == nil {
		return
	}
	m.CheckIns.WithLabelValues(outcome).Inc()
}

func (m *Metrics) NameUpdateFailed() {
	if m == nil {
		return
	}
	m.NameUpdateFailures.Inc()
}

func (m *Metrics) IncrementFailed() {
	if m == nil {
		return
	}
	m.IncrementFailures.Inc()
}

func (m *Metrics) EventDropped() {
	if m == nil {
		return
	}
	m.EventsDropped.Inc()
}

func (m *Metrics) EventPublished(ok bool) {
	if m == nil {
		return
	}
	result := "ok"
	if !ok {
		result = "error"
	}
	m.EventsPublished.WithLabelValues(result).Inc()
}

func (m *Metrics) Reconciled(swept int, drift int64) {
	if m == nil {
		return
	}
	if drift < 0 {
		drift = -drift
	}
	m.ReconcileSweptTotal.Add(float64(swept))
	m.ReconcileDrift.Add(float64(drift))
}

package services

import "github.com/prometheus/client_golang/prometheus"

// BookingMetrics counts booking funnel events. A nil *BookingMetrics is a
// valid no-op.
type BookingMetrics struct {
	sessionsStarted    prometheus.Counter
	dispatched         prometheus.Counter
	validationFailures *prometheus.CounterVec
	emptySelection     prometheus.Counter
}

func NewBookingMetrics(reg prometheus.Registerer) *BookingMetrics {
	m := &BookingMetrics{
		sessionsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "barbershop",
			Subsystem: "booking",
			Name:      "sessions_started_total",
			Help:      "Booking wizards opened",
		}),
		dispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "barbershop",
			Subsystem: "booking",
			Name:      "dispatched_total",
			Help:      "Bookings handed off to WhatsApp",
		}),
		validationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "barbershop",
			Subsystem: "booking",
			Name:      "validation_failures_total",
			Help:      "Confirm attempts rejected, by field",
		}, []string{"field"}),
		emptySelection: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "barbershop",
			Subsystem: "booking",
			Name:      "empty_selection_total",
			Help:      "Continue pressed with no service selected",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.sessionsStarted, m.dispatched, m.validationFailures, m.emptySelection)
	return m
}

func (m *BookingMetrics) SessionStarted() {
	if m == nil {
		return
	}
	m.sessionsStarted.Inc()
}

func (m *BookingMetrics) Dispatched() {
	if m == nil {
		return
	}
	m.dispatched.Inc()
}

func (m *BookingMetrics) ValidationFailed(clientName, childName bool) {
	if m == nil {
		return
	}
	if clientName {
		m.validationFailures.WithLabelValues("clientName").Inc()
	}
	if childName {
		m.validationFailures.WithLabelValues("childName").Inc()
	}
}

func (m *BookingMetrics) EmptySelection() {
	if m == nil {
		return
	}
	m.emptySelection.Inc()
}

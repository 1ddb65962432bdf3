package services

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestBookingMetricsCount(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewBookingMetrics(reg)

	m.SessionStarted()
	m.SessionStarted()
	m.EmptySelection()
	m.ValidationFailed(true, false)
	m.ValidationFailed(true, true)
	m.Dispatched()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessionsStarted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.emptySelection))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.dispatched))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("clientName")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.validationFailures.WithLabelValues("childName")))
}

func TestBookingMetricsNilSafe(t *testing.T) {
	var m *BookingMetrics
	m.SessionStarted()
	m.Dispatched()
	m.ValidationFailed(true, true)
	m.EmptySelection()
}

package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("smc-barbershop", prometheus.NewRegistry())

	m.IncBookingCreated()
	m.IncBookingCreated()
	m.IncBookingRejected("slot_taken")
	m.IncBookingCancelled()
	m.IncReferenceFallback()
	m.ObserveQuery("select", 0.01, errors.New("boom"))
	m.ObserveHTTP("GET", "/api/v1/services", 200, 0.002)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreatedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsRejectedTotal.WithLabelValues("slot_taken")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsCancelledTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReferenceFallbacksTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueryErrorsTotal.WithLabelValues("select")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/services", "200")))
}

func TestMetrics_NilReceiverIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingCreated()
		m.IncBookingRejected("validation")
		m.IncBookingCancelled()
		m.IncReferenceFallback()
		m.ObserveQuery("insert", 0.1, nil)
		m.ObserveHTTP("POST", "/api/v1/bookings", 201, 0.1)
	})
}

func TestNamespace(t *testing.T) {
	assert.Equal(t, "smc_barber_shop", namespace(" SMC-Barber.Shop "))
}

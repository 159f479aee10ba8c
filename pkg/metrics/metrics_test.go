package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObservePaymentCall(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "hotel-booking")

	m.ObservePaymentCall("create_intent", "ok")
	m.ObservePaymentCall("create_intent", "ok")
	m.ObservePaymentCall("update_intent", "error")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.PaymentProviderCalls.WithLabelValues("create_intent", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PaymentProviderCalls.WithLabelValues("update_intent", "error")))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "hotel_booking_service", sanitize("Hotel-Booking service"))
}

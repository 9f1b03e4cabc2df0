package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTP("GET", "/api/v1/themes", 200, time.Millisecond)
		m.ObserveBackend("ListThemes", "ok", time.Millisecond)
		m.FlowTransition("reservation", "ChoosingDate", "ChoosingTime")
		m.SetActiveSessions("reservation", 3)
		m.DegradedLookup()
	})
}

func TestMetrics_Counters(t *testing.T) {
	m := New("keystone-front-test")

	m.ObserveBackend("CreateReservation", "conflict", 10*time.Millisecond)
	m.ObserveBackend("CreateReservation", "conflict", 10*time.Millisecond)
	m.DegradedLookup()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.backendRequestsTotal.WithLabelValues("CreateReservation", "conflict")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.degradedLookupsTotal))
}

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New("test", prometheus.NewRegistry())

	m.QuoteSubmitted(1200)
	m.QuoteSubmitted(500)
	m.ContactSubmitted()
	m.Notification("failed")
	m.QuoteStatusChanged("contacted")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.QuotesSubmitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ContactsSubmitted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Notifications.WithLabelValues("failed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.QuoteStatusChanges.WithLabelValues("contacted")))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.QuoteSubmitted(1)
		m.ContactSubmitted()
		m.Notification("sent")
		m.AuthAttempt("success")
		m.ObserveRequest("GET", "/health", "200", 0.1)
	})
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups every collector the service exports. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Lead capture metrics
	QuotesSubmitted    prometheus.Counter
	QuoteEstimateTotal prometheus.Histogram
	QuoteStatusChanges *prometheus.CounterVec
	ContactsSubmitted  prometheus.Counter

	// Notification metrics
	Notifications *prometheus.CounterVec

	// Authentication metrics
	AuthAttempts *prometheus.CounterVec
}

// New registers the collectors on reg with the given name prefix.
func New(prefix string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		HttpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HttpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    prefix + "_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		QuotesSubmitted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_quotes_submitted_total",
				Help: "Total number of accepted quote requests",
			},
		),
		QuoteEstimateTotal: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    prefix + "_quote_estimate_dollars",
				Help:    "Total estimate of accepted quote requests in dollars",
				Buckets: []float64{500, 1000, 1500, 2000, 3000, 5000, 10000},
			},
		),
		QuoteStatusChanges: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_quote_status_changes_total",
				Help: "Quote status updates by target status",
			},
			[]string{"status"},
		),
		ContactsSubmitted: factory.NewCounter(
			prometheus.CounterOpts{
				Name: prefix + "_contacts_submitted_total",
				Help: "Total number of accepted contact submissions",
			},
		),
		Notifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_notifications_total",
				Help: "Quote notifications by outcome (sent, failed, dropped)",
			},
			[]string{"result"},
		),
		AuthAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_auth_attempts_total",
				Help: "Login attempts by outcome",
			},
			[]string{"result"},
		),
	}
}

func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HttpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HttpRequestDuration.WithLabelValues(method, path, status).Observe(seconds)
}

func (m *Metrics) QuoteSubmitted(totalEstimate int) {
	if m == nil {
		return
	}
	m.QuotesSubmitted.Inc()
	m.QuoteEstimateTotal.Observe(float64(totalEstimate))
}

func (m *Metrics) QuoteStatusChanged(status string) {
	if m == nil {
		return
	}
	m.QuoteStatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) ContactSubmitted() {
	if m == nil {
		return
	}
	m.ContactsSubmitted.Inc()
}

func (m *Metrics) Notification(result string) {
	if m == nil {
		return
	}
	m.Notifications.WithLabelValues(result).Inc()
}

func (m *Metrics) AuthAttempt(result string) {
	if m == nil {
		return
	}
	m.AuthAttempts.WithLabelValues(result).Inc()
}

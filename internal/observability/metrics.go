package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts OpenSearch requests. Metrics are registered on the
// registerer passed to NewMetrics so the CLI can export them on demand and
// tests can use an isolated registry.
type Metrics struct {
	// RequestsTotal counts completed requests by search type and HTTP status
	// code ("error" for transport failures).
	RequestsTotal *prometheus.CounterVec

	// RequestDuration observes request latency in seconds by search type.
	RequestDuration *prometheus.HistogramVec
}

// NewMetrics registers the request metrics on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "cinii",
			Name:      "requests_total",
			Help:      "OpenSearch requests by search type and status code.",
		}, []string{"search_type", "code"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "cinii",
			Name:      "request_duration_seconds",
			Help:      "OpenSearch request latency.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"search_type"}),
	}
}

// RecordRequest records one request. code is 0 for a transport error.
func (m *Metrics) RecordRequest(searchType string, code int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.RequestsTotal.WithLabelValues(searchType, label).Inc()
	m.RequestDuration.WithLabelValues(searchType).Observe(elapsed.Seconds())
}

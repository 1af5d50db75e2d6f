package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the site's Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	inquiriesTotal   *prometheus.CounterVec
	inquiryDuration  *prometheus.HistogramVec
	headSyncsTotal   *prometheus.CounterVec
	headNodesCreated prometheus.Histogram

	registry *prometheus.Registry
}

// NewMetrics creates a metrics instance backed by its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "covera_web_http_requests_total",
				Help: "Total number of HTTP requests by route and status",
			},
			[]string{"method", "route", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "covera_web_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		inquiriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "covera_web_inquiries_total",
				Help: "Form submissions by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),

		inquiryDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "covera_web_inquiry_duration_seconds",
				Help:    "Latency of form delivery to the edge function",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"kind"},
		),

		headSyncsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "covera_web_head_syncs_total",
				Help: "Document head synchronizations by result",
			},
			[]string{"result"},
		),

		headNodesCreated: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "covera_web_head_nodes_created",
				Help:    "Head nodes created per synchronized page",
				Buckets: []float64{0, 5, 10, 20, 30, 40},
			},
		),

		registry: registry,
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.inquiriesTotal,
		m.inquiryDuration,
		m.headSyncsTotal,
		m.headNodesCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RecordHTTPRequest records a served request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordInquiry records a form submission outcome such as "sent", "invalid", "failed" or "busy".
func (m *Metrics) RecordInquiry(kind, outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.inquiriesTotal.WithLabelValues(kind, outcome).Inc()
	// only these outcomes reached the edge function
	if outcome == "sent" || outcome == "failed" {
		m.inquiryDuration.WithLabelValues(kind).Observe(duration.Seconds())
	}
}

// RecordHeadSync records one head synchronization.
func (m *Metrics) RecordHeadSync(created int, err error) {
	if m == nil {
		return
	}
	if err != nil {
		m.headSyncsTotal.WithLabelValues("error").Inc()
		return
	}
	m.headSyncsTotal.WithLabelValues("ok").Inc()
	m.headNodesCreated.Observe(float64(created))
}

// Handler returns an HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the Prometheus registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

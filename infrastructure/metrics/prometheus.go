// Package metrics provides the Prometheus-backed implementation of
// interfaces.Metrics plus the HTTP request collectors used by middleware.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metric names as constants for consistency.
const (
	MetricPipelineDuration    = "searchpilot_pipeline_duration_seconds"
	MetricPipelineRecords     = "searchpilot_pipeline_records"
	MetricSubmissionsTotal    = "searchpilot_submissions_total"
	MetricExtractionsTotal    = "searchpilot_extractions_total"
	MetricHTTPRequestDuration = "http_request_duration_seconds"
	MetricHTTPRequestsTotal   = "http_requests_total"
	MetricRateLimitBlocked    = "rate_limit_blocked_total"
)

// Metrics contains the service and HTTP collectors.
// All operations are thread-safe.
type Metrics struct {
	pipelineDuration    *prometheus.HistogramVec
	pipelineRecords     *prometheus.GaugeVec
	submissionsTotal    *prometheus.CounterVec
	extractionsTotal    *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec
	rateLimitBlocked    prometheus.Counter
}

// NewMetrics creates and returns a new Metrics instance with all collectors initialized.
// The metrics are not registered; call Register to register them with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		pipelineDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricPipelineDuration,
				Help:    "Duration of dashboard pipeline runs in seconds by operation",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
			},
			[]string{"operation"},
		),
		pipelineRecords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MetricPipelineRecords,
				Help: "Number of records in the snapshot of the last pipeline run by operation",
			},
			[]string{"operation"},
		),
		submissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricSubmissionsTotal,
				Help: "Total number of metadata submissions by status",
			},
			[]string{"status"},
		),
		extractionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricExtractionsTotal,
				Help: "Total number of page metadata extractions by status",
			},
			[]string{"status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricHTTPRequestDuration,
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.01, 0.1, 0.5, 1.0, 2.0},
			},
			[]string{"method", "path", "status"},
		),
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricHTTPRequestsTotal,
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		// Rejections happen before routing, so no label may come from the request
		rateLimitBlocked: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: MetricRateLimitBlocked,
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
	}
}

// Register registers all metrics with the given registry.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range m.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObservePipeline records one dashboard pipeline run
func (m *Metrics) ObservePipeline(operation string, duration time.Duration, records int) {
	m.pipelineDuration.WithLabelValues(operation).Observe(duration.Seconds())
	m.pipelineRecords.WithLabelValues(operation).Set(float64(records))
}

// IncSubmissions counts a submission attempt by outcome
func (m *Metrics) IncSubmissions(status string) {
	m.submissionsTotal.WithLabelValues(status).Inc()
}

// IncExtractions counts a page extraction attempt by outcome
func (m *Metrics) IncExtractions(status string) {
	m.extractionsTotal.WithLabelValues(status).Inc()
}

// ObserveHTTPRequest records one served request.
// path should be the route pattern, not the raw URL, to bound label cardinality.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	labels := prometheus.Labels{
		"method": method,
		"path":   path,
		"status": status,
	}
	m.httpRequestDuration.With(labels).Observe(duration.Seconds())
	m.httpRequestsTotal.With(labels).Inc()
}

// IncRateLimitBlocked counts a request rejected by the rate limiter
func (m *Metrics) IncRateLimitBlocked() {
	m.rateLimitBlocked.Inc()
}

// Collectors returns all Prometheus collectors.
func (m *Metrics) Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.pipelineDuration,
		m.pipelineRecords,
		m.submissionsTotal,
		m.extractionsTotal,
		m.httpRequestDuration,
		m.httpRequestsTotal,
		m.rateLimitBlocked,
	}
}

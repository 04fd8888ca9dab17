package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "course_comment"
)

// Metrics holds all application metrics. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Sentiment scorer metrics
	ScorerRequestDuration *prometheus.HistogramVec
	ScorerErrors          *prometheus.CounterVec

	// Business metrics
	CommentsSubmittedTotal *prometheus.CounterVec
	WebSocketConnections   prometheus.Gauge
}

// New creates and registers all metrics with the default registry
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates and registers all metrics with a custom registry
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "endpoint"},
		),
		ScorerRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "sentiment_request_duration_seconds",
				Help:      "Sentiment scorer call duration in seconds",
				Buckets:   []float64{.001, .005, .01, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"provider", "status"},
		),
		ScorerErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sentiment_errors_total",
				Help:      "Total number of failed sentiment scorer calls",
			},
			[]string{"provider", "error_type"},
		),
		CommentsSubmittedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "comments_submitted_total",
				Help:      "Total number of stored comments by sentiment bucket",
			},
			[]string{"bucket"},
		),
		WebSocketConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "websocket_connections",
				Help:      "Number of open live feed connections",
			},
		),
	}
}

// RecordHTTPRequest records HTTP request metrics
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	if m == nil {
		return
	}
	if endpoint == "" {
		endpoint = "unmatched"
	}
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, categorizeStatus(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordScorerCall records one call to an external sentiment scorer.
// statusCode is 0 when no HTTP response was received.
func (m *Metrics) RecordScorerCall(provider string, statusCode int, duration time.Duration, err error) {
	if m == nil {
		return
	}
	status := strconv.Itoa(statusCode)
	m.ScorerRequestDuration.WithLabelValues(provider, status).Observe(duration.Seconds())

	if err != nil || statusCode >= 400 {
		m.ScorerErrors.WithLabelValues(provider, getErrorType(statusCode, err)).Inc()
	}
}

// RecordCommentSubmitted counts a stored comment in its sentiment bucket
func (m *Metrics) RecordCommentSubmitted(bucket string) {
	if m == nil {
		return
	}
	m.CommentsSubmittedTotal.WithLabelValues(bucket).Inc()
}

// SetWebSocketConnections updates the live feed connection gauge
func (m *Metrics) SetWebSocketConnections(n int) {
	if m == nil {
		return
	}
	m.WebSocketConnections.Set(float64(n))
}

// categorizeStatus converts status code to category (2xx, 3xx, 4xx, 5xx)
func categorizeStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

func getErrorType(statusCode int, err error) string {
	switch {
	case statusCode >= 500:
		return "server_error"
	case statusCode >= 400:
		return "client_error"
	case err != nil && statusCode == 0:
		return "network_error"
	default:
		return "invalid_response"
	}
}

// ShouldSkipEndpoint checks if endpoint should be excluded from metrics
func ShouldSkipEndpoint(path string) bool {
	return path == "/metrics" || path == "/health"
}

package observability

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "pwc_mcp"

// Outcome labels.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Metrics contains the Prometheus metrics for the server.
type Metrics struct {
	// ToolCalls counts MCP tool invocations, labeled by tool and outcome.
	ToolCalls *prometheus.CounterVec

	// ToolCallDuration observes tool call duration in seconds, labeled by tool.
	ToolCallDuration *prometheus.HistogramVec

	// APIRequests counts research API requests, labeled by resource and status class.
	APIRequests *prometheus.CounterVec

	// APIRequestDuration observes research API request duration in seconds, labeled by resource.
	APIRequestDuration *prometheus.HistogramVec

	// DocumentsRead counts ingested documents, labeled by kind.
	DocumentsRead *prometheus.CounterVec

	// DocumentBytes observes the size of fetched documents.
	DocumentBytes prometheus.Histogram
}

// NewMetrics creates and registers all metrics on reg.
// The namespace is used as a prefix for all metric names.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		ToolCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tool_calls_total",
			Help:      "Total number of MCP tool calls",
		}, []string{"tool", "outcome"}),
		ToolCallDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tool_call_duration_seconds",
			Help:      "Duration of MCP tool calls in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"tool"}),
		APIRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_requests_total",
			Help:      "Total number of research API requests",
		}, []string{"resource", "status"}),
		APIRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Duration of research API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"resource"}),
		DocumentsRead: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_read_total",
			Help:      "Total number of documents read by URL",
		}, []string{"kind"}),
		DocumentBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "document_bytes",
			Help:      "Size of fetched documents in bytes",
			Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
		}),
	}
}

// RecordToolCall records a finished tool call. Safe on a nil receiver.
func (m *Metrics) RecordToolCall(tool string, failed bool, durationSeconds float64) {
	if m == nil {
		return
	}
	outcome := OutcomeSuccess
	if failed {
		outcome = OutcomeError
	}
	m.ToolCalls.WithLabelValues(tool, outcome).Inc()
	m.ToolCallDuration.WithLabelValues(tool).Observe(durationSeconds)
}

// RecordAPIRequest records a research API request. A zero status means the
// request failed before a response arrived. Safe on a nil receiver.
func (m *Metrics) RecordAPIRequest(resource string, status int, durationSeconds float64) {
	if m == nil {
		return
	}
	m.APIRequests.WithLabelValues(resource, StatusClass(status)).Inc()
	m.APIRequestDuration.WithLabelValues(resource).Observe(durationSeconds)
}

// RecordDocumentFetched records the size of a fetched document. Safe on a nil receiver.
func (m *Metrics) RecordDocumentFetched(size int) {
	if m == nil {
		return
	}
	m.DocumentBytes.Observe(float64(size))
}

// RecordDocumentRead records an ingestion result by kind. Safe on a nil receiver.
func (m *Metrics) RecordDocumentRead(kind string) {
	if m == nil {
		return
	}
	m.DocumentsRead.WithLabelValues(kind).Inc()
}

// StatusClass maps an HTTP status to "2xx", "4xx", etc. Zero maps to "error".
func StatusClass(status int) string {
	if status < 100 || status > 599 {
		return OutcomeError
	}
	return strconv.Itoa(status/100) + "xx"
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	processorFetchPendingTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compute_agent",
		Subsystem: "request_processor",
		Name:      "fetch_pending_total",
		Help:      "Count of attempts to fetch pending requests.",
	}, []string{"status"})

	processorFetchPendingDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "compute_agent",
		Subsystem: "request_processor",
		Name:      "fetch_pending_duration_seconds",
		Help:      "Duration of fetching pending requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	processorRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compute_agent",
		Subsystem: "request_processor",
		Name:      "requests_total",
		Help:      "Count of driven requests by resulting status.",
	}, []string{"result"})

	processorRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "compute_agent",
		Subsystem: "request_processor",
		Name:      "request_duration_seconds",
		Help:      "Duration of driving one request end to end.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120, 300},
	}, []string{"result"})
)

// RequestProcessor tracks metrics for the request state machine driver.
type RequestProcessor struct{}

// NewRequestProcessor creates a RequestProcessor metrics collector.
func NewRequestProcessor() *RequestProcessor {
	return &RequestProcessor{}
}

// ObserveFetchPending records a pending fetch attempt outcome and duration.
func (m RequestProcessor) ObserveFetchPending(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	processorFetchPendingTotal.WithLabelValues(status).Inc()
	processorFetchPendingDuration.WithLabelValues(status).
		Observe(time.Since(started).Seconds())
}

// ObserveRequest records the terminal result of driving one request.
func (m RequestProcessor) ObserveRequest(result string, started time.Time) {
	if result == "" {
		result = "unknown"
	}
	processorRequestsTotal.WithLabelValues(result).Inc()
	processorRequestDuration.WithLabelValues(result).Observe(time.Since(started).Seconds())
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	monitorFilterLogsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compute_agent",
		Subsystem: "event_monitor",
		Name:      "filter_logs_total",
		Help:      "Count of attempts to filter request events from the chain.",
	}, []string{"mode", "status"})

	monitorFilterLogsDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "compute_agent",
		Subsystem: "event_monitor",
		Name:      "filter_logs_duration_seconds",
		Help:      "Duration of filtering request events from the chain.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"mode", "status"})

	monitorProcessBatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compute_agent",
		Subsystem: "event_monitor",
		Name:      "process_batch_total",
		Help:      "Count of processed event batches.",
	}, []string{"mode", "status"})

	monitorProcessBatchSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "compute_agent",
		Subsystem: "event_monitor",
		Name:      "process_batch_size",
		Help:      "Number of request events recorded per batch.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1..2048
	}, []string{"mode"})

	monitorCheckpointBlock = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "compute_agent",
		Subsystem: "event_monitor",
		Name:      "checkpoint_block",
		Help:      "Block number of the persisted event monitor checkpoint.",
	})
)

// EventMonitor tracks metrics for the event monitor pipeline.
type EventMonitor struct {
	mode string
}

// NewEventMonitor constructs an EventMonitor for a mode (live or backfill).
func NewEventMonitor(mode string) *EventMonitor {
	if mode == "" {
		mode = "unknown"
	}
	return &EventMonitor{mode: mode}
}

// ObserveFilterLogs records a log filtering attempt outcome and duration.
func (m EventMonitor) ObserveFilterLogs(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	monitorFilterLogsTotal.WithLabelValues(m.mode, status).Inc()
	monitorFilterLogsDuration.WithLabelValues(m.mode, status).
		Observe(time.Since(started).Seconds())
}

// ObserveProcessBatch records the recording of a batch of request events.
func (m EventMonitor) ObserveProcessBatch(err error, events int) {
	status := "success"
	if err != nil {
		status = "error"
	}
	monitorProcessBatchTotal.WithLabelValues(m.mode, status).Inc()
	monitorProcessBatchSize.WithLabelValues(m.mode).Observe(float64(events))
}

// SetCheckpointBlock publishes the checkpoint block number.
func (m EventMonitor) SetCheckpointBlock(block uint64) {
	monitorCheckpointBlock.Set(float64(block))
}

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	schedulerSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compute_agent",
		Subsystem: "scheduler",
		Name:      "sync_total",
		Help:      "Count of subscription sync attempts.",
	}, []string{"status"})

	schedulerSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "compute_agent",
		Subsystem: "scheduler",
		Name:      "sync_duration_seconds",
		Help:      "Duration of subscription sync.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	schedulerTrackedSubscriptions = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "compute_agent",
		Subsystem: "scheduler",
		Name:      "tracked_subscriptions",
		Help:      "Number of subscriptions currently tracked.",
	})

	schedulerCommitTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compute_agent",
		Subsystem: "scheduler",
		Name:      "interval_commits_total",
		Help:      "Count of interval commitment transactions.",
	}, []string{"status"})

	schedulerCommitDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "compute_agent",
		Subsystem: "scheduler",
		Name:      "interval_commit_duration_seconds",
		Help:      "Duration of submitting an interval commitment transaction.",
		Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"status"})
)

// Scheduler tracks metrics for the interval scheduler.
type Scheduler struct{}

// NewScheduler creates a Scheduler metrics collector.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// ObserveSync records a subscription sync outcome, duration and result size.
func (m Scheduler) ObserveSync(err error, tracked int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	schedulerSyncTotal.WithLabelValues(status).Inc()
	schedulerSyncDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	if err == nil {
		schedulerTrackedSubscriptions.Set(float64(tracked))
	}
}

// ObserveCommit records an interval commitment attempt outcome and duration.
func (m Scheduler) ObserveCommit(err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	schedulerCommitTotal.WithLabelValues(status).Inc()
	schedulerCommitDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
}

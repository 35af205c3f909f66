package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chainRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "compute_agent",
		Subsystem: "chain_rpc",
		Name:      "operations_total",
		Help:      "Count of chain node RPC operations.",
	}, []string{"operation", "status"})
	chainRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "compute_agent",
		Subsystem: "chain_rpc",
		Name:      "operation_duration_seconds",
		Help:      "Duration of chain node RPC operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// ChainRPC tracks metrics for chain backend RPC operations.
type ChainRPC struct{}

// NewChainRPC creates a ChainRPC metrics collector.
func NewChainRPC() *ChainRPC {
	return &ChainRPC{}
}

// Observe records duration and status of a chain RPC operation.
func (m ChainRPC) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	chainRPCRequestsTotal.WithLabelValues(operation, status).Inc()
	chainRPCRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}

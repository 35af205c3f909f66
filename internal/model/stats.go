package model

import (
	"math/big"
	"time"
)

// EventStats aggregates the ledger by status.
type EventStats struct {
	Total      uint64 `json:"total"`
	Pending    uint64 `json:"pending"`
	Processing uint64 `json:"processing"`
	Completed  uint64 `json:"completed"`
	Failed     uint64 `json:"failed"`
	Skipped    uint64 `json:"skipped"`
	Expired    uint64 `json:"expired"`

	TotalGasUsed uint64   `json:"total_gas_used"`
	TotalGasCost *big.Int `json:"total_gas_cost"`
	TotalFees    *big.Int `json:"total_fees"`
}

// ContainerStats is the per-container slice of EventStats.
type ContainerStats struct {
	ContainerID string `json:"container_id"`
	Total       uint64 `json:"total"`
	Completed   uint64 `json:"completed"`
	Failed      uint64 `json:"failed"`
	Skipped     uint64 `json:"skipped"`
	Expired     uint64 `json:"expired"`
}

// SubscriptionStats is the per-subscription slice of EventStats.
type SubscriptionStats struct {
	SubscriptionID uint64 `json:"subscription_id"`
	Total          uint64 `json:"total"`
	Completed      uint64 `json:"completed"`
	LastInterval   uint32 `json:"last_interval"`
}

// PrepareTxStats aggregates commitment transaction spend.
type PrepareTxStats struct {
	Total        uint64   `json:"total"`
	Succeeded    uint64   `json:"succeeded"`
	Failed       uint64   `json:"failed"`
	TotalGasUsed uint64   `json:"total_gas_used"`
	TotalGasCost *big.Int `json:"total_gas_cost"`
}

// ActivityEntry is one row of the dashboard's recent-activity feed.
type ActivityEntry struct {
	RequestID      string      `json:"request_id"`
	SubscriptionID uint64      `json:"subscription_id"`
	Interval       uint32      `json:"interval"`
	ContainerID    string      `json:"container_id"`
	Status         EventStatus `json:"status"`
	ErrorMessage   string      `json:"error_message,omitempty"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

package model

import "time"

// CheckpointType keys one monitor stream's cursor.
type CheckpointType string

const (
	// EventMonitorCheckpoint is the live event monitor's cursor.
	EventMonitorCheckpoint CheckpointType = "event_monitor"
)

// Checkpoint is the last chain position whose events are known to be fully
// recorded in the ledger. It is overwritten, never historized: the latest
// value per type is the only one that matters.
type Checkpoint struct {
	Type        CheckpointType
	BlockNumber uint64
	BlockHash   string
	BlockTime   time.Time
}

// Package monitor follows the coordinator contract's request events, keeping
// the ledger and the monitor checkpoint in step with the chain.
package monitor

import (
	"context"
	"time"

	"github.com/noosphere-labs/compute-agent/internal/chain"
	"github.com/noosphere-labs/compute-agent/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	LogSource interface {
		FilterRequestStarted(ctx context.Context, fromBlock, toBlock uint64) ([]chain.RequestStartedLog, error)
	}
	HeadSource interface {
		BlockNumber(ctx context.Context) (uint64, error)
		BlockInfo(ctx context.Context, number uint64) (chain.BlockInfo, error)
	}
	EventLedger interface {
		SaveRequestStartedEvent(ctx context.Context, ev model.RequestEvent) (bool, error)
	}
	CheckpointStore interface {
		SaveCheckpoint(ctx context.Context, cp model.Checkpoint) error
		LoadCheckpoint(ctx context.Context, checkpointType model.CheckpointType) (model.Checkpoint, bool, error)
	}
	ContainerFilter interface {
		Services(containerID string) bool
	}
	Metrics interface {
		ObserveFilterLogs(err error, started time.Time)
		ObserveProcessBatch(err error, events int)
		SetCheckpointBlock(block uint64)
	}
)

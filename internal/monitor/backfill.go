package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noosphere-labs/compute-agent/internal/model"
	"github.com/noosphere-labs/compute-agent/pkg/batcher"
	"github.com/noosphere-labs/compute-agent/pkg/workerpool"
)

// Backfill is the reconciliation pass: it re-filters historical ranges and
// repairs holes in the ledger. Inserts go through the same idempotent gate as
// live ingestion, so overlap with already-recorded events is harmless. The
// checkpoint is read to pick a starting point but never written.
type Backfill struct {
	logger   *zap.Logger
	source   LogSource
	head     HeadSource
	ledger   EventLedger
	registry ContainerFilter
	metrics  Metrics

	checkpoints CheckpointStore

	deploymentBlock uint64
	chunkSize       uint64
	workerCount     int
}

// BackfillConfig carries the backfill tunables. Zero values fall back to
// defaults.
type BackfillConfig struct {
	DeploymentBlock uint64
	ChunkSize       uint64
	WorkerCount     int
}

func NewBackfill(
	source LogSource,
	head HeadSource,
	ledger EventLedger,
	checkpoints CheckpointStore,
	registry ContainerFilter,
	metrics Metrics,
	logger *zap.Logger,
	cfg BackfillConfig,
) (*Backfill, error) {
	if metrics == nil {
		return nil, errors.New("backfill metrics is required")
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = defaultBackfillChunkSize
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = defaultBackfillWorkerCount
	}

	return &Backfill{
		logger:          logger,
		source:          source,
		head:            head,
		ledger:          ledger,
		checkpoints:     checkpoints,
		registry:        registry,
		metrics:         metrics,
		deploymentBlock: cfg.DeploymentBlock,
		chunkSize:       cfg.ChunkSize,
		workerCount:     cfg.WorkerCount,
	}, nil
}

type blockRange struct {
	from uint64
	to   uint64
}

// Run reconciles [deploymentBlock, head] once and returns. The range is split
// into fixed chunks fanned out over a worker pool; recovered events are
// funneled through a batcher into the ledger.
func (b *Backfill) Run(ctx context.Context) error {
	head, err := b.head.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("chain head: %w", err)
	}

	from := b.deploymentBlock
	if cp, found, cpErr := b.checkpoints.LoadCheckpoint(ctx, model.EventMonitorCheckpoint); cpErr != nil {
		return fmt.Errorf("load checkpoint: %w", cpErr)
	} else if found && cp.BlockNumber > from {
		from = cp.BlockNumber
	}
	if from > head {
		b.logger.Info("nothing to backfill", zap.Uint64("from", from), zap.Uint64("head", head))
		return nil
	}

	chunks := splitRange(from, head, b.chunkSize)
	b.logger.Info("starting backfill",
		zap.Uint64("from", from),
		zap.Uint64("to", head),
		zap.Int("chunks", len(chunks)),
		zap.Int("workers", b.workerCount))

	events := batcher.New(b.logger.Named("batcher"), b.recordBatch,
		backfillBatcherCapacity, backfillBatcherFlushInterval, backfillBatcherFlushesPerSecond)
	events.Start(ctx)
	defer events.Stop()

	return workerpool.Process(ctx, b.workerCount, chunks, func(ctx context.Context, r blockRange) error {
		return b.processChunk(ctx, r, events)
	}, nil)
}

func (b *Backfill) processChunk(ctx context.Context, r blockRange, events *batcher.Batcher[model.RequestEvent]) error {
	started := time.Now()
	logs, err := b.source.FilterRequestStarted(ctx, r.from, r.to)
	b.metrics.ObserveFilterLogs(err, started)
	if err != nil {
		return fmt.Errorf("filter request events %d-%d: %w", r.from, r.to, err)
	}

	for _, log := range logs {
		if !b.registry.Services(log.ContainerID.Hex()) {
			continue
		}
		if err := events.Add(ctx, eventFromLog(log)); err != nil {
			return fmt.Errorf("queue request %s: %w", log.RequestID.Hex(), err)
		}
	}

	b.logger.Debug("backfill chunk scanned",
		zap.Uint64("from", r.from), zap.Uint64("to", r.to), zap.Int("logs", len(logs)))
	return nil
}

func (b *Backfill) recordBatch(ctx context.Context, events []model.RequestEvent) error {
	recorded := 0
	var err error
	for _, ev := range events {
		inserted, saveErr := b.ledger.SaveRequestStartedEvent(ctx, ev)
		if saveErr != nil {
			err = fmt.Errorf("record request %s: %w", ev.RequestID, saveErr)
			break
		}
		if inserted {
			recorded++
			b.logger.Info("backfill recovered request event",
				zap.String("request_id", ev.RequestID),
				zap.Uint64("block", ev.BlockNumber))
		}
	}
	b.metrics.ObserveProcessBatch(err, recorded)
	return err
}

func splitRange(from, to, chunkSize uint64) []blockRange {
	var chunks []blockRange
	for start := from; start <= to; start += chunkSize {
		end := start + chunkSize - 1
		if end > to {
			end = to
		}
		chunks = append(chunks, blockRange{from: start, to: end})
	}
	return chunks
}

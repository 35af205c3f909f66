package monitor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noosphere-labs/compute-agent/internal/clock"
	"github.com/noosphere-labs/compute-agent/internal/model"
)

// Monitor is the live event follower: it tracks the chain head and records
// every RequestStarted event for serviced containers, advancing the monitor
// checkpoint only after a range is durably ledgered.
type Monitor struct {
	logger      *zap.Logger
	source      LogSource
	head        HeadSource
	ledger      EventLedger
	checkpoints CheckpointStore
	registry    ContainerFilter
	metrics     Metrics

	sleep        func(context.Context, time.Duration) error
	headSignal   <-chan struct{}
	pollInterval time.Duration

	deploymentBlock uint64
	maxBlockRange   uint64
}

// Config carries the monitor's tunables. Zero values fall back to defaults.
type Config struct {
	DeploymentBlock uint64
	PollInterval    time.Duration
	MaxBlockRange   uint64

	// HeadSignal, when set, wakes the loop ahead of the poll cadence.
	HeadSignal <-chan struct{}
}

func New(
	source LogSource,
	head HeadSource,
	ledger EventLedger,
	checkpoints CheckpointStore,
	registry ContainerFilter,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Monitor, error) {
	if metrics == nil {
		return nil, errors.New("monitor metrics is required")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.MaxBlockRange == 0 {
		cfg.MaxBlockRange = defaultMaxBlockRange
	}

	return &Monitor{
		logger:          logger,
		source:          source,
		head:            head,
		ledger:          ledger,
		checkpoints:     checkpoints,
		registry:        registry,
		metrics:         metrics,
		sleep:           clock.SleepWithContext,
		headSignal:      cfg.HeadSignal,
		pollInterval:    cfg.PollInterval,
		deploymentBlock: cfg.DeploymentBlock,
		maxBlockRange:   cfg.MaxBlockRange,
	}, nil
}

// Run follows the chain until the context is canceled.
func (m *Monitor) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := m.run(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			m.logger.Warn("run iteration failed, backing off",
				zap.Error(err), zap.Duration("sleep", errorSleepDuration))
			if sleepErr := m.sleep(ctx, errorSleepDuration); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (m *Monitor) run(ctx context.Context) error {
	head, err := m.head.BlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("chain head: %w", err)
	}

	from, err := m.nextBlock(ctx)
	if err != nil {
		return err
	}
	if from > head {
		m.logger.Debug("caught up with chain head; sleeping",
			zap.Uint64("head", head), zap.Duration("sleep", idleSleepDuration))
		return m.wait(ctx, idleSleepDuration)
	}

	to := head
	if span := from + m.maxBlockRange - 1; span < to {
		to = span
	}

	started := time.Now()
	logs, err := m.source.FilterRequestStarted(ctx, from, to)
	m.metrics.ObserveFilterLogs(err, started)
	if err != nil {
		return fmt.Errorf("filter request events %d-%d: %w", from, to, err)
	}

	recorded := 0
	for _, log := range logs {
		if !m.registry.Services(log.ContainerID.Hex()) {
			m.logger.Debug("skipping request for unserviced container",
				zap.String("request_id", log.RequestID.Hex()),
				zap.String("container_id", log.ContainerID.Hex()))
			continue
		}

		inserted, saveErr := m.ledger.SaveRequestStartedEvent(ctx, eventFromLog(log))
		if saveErr != nil {
			m.metrics.ObserveProcessBatch(saveErr, recorded)
			return fmt.Errorf("record request %s: %w", log.RequestID.Hex(), saveErr)
		}
		if inserted {
			recorded++
			m.logger.Info("recorded request event",
				zap.String("request_id", log.RequestID.Hex()),
				zap.Uint64("block", log.BlockNumber))
		}
	}
	m.metrics.ObserveProcessBatch(nil, recorded)

	if err := m.saveCheckpoint(ctx, to); err != nil {
		return err
	}

	if to < head {
		// More ranges behind the head; keep going without sleeping.
		return nil
	}
	return m.wait(ctx, m.pollInterval)
}

// nextBlock is checkpoint+1, floored at the coordinator deployment block.
func (m *Monitor) nextBlock(ctx context.Context) (uint64, error) {
	cp, found, err := m.checkpoints.LoadCheckpoint(ctx, model.EventMonitorCheckpoint)
	if err != nil {
		return 0, fmt.Errorf("load checkpoint: %w", err)
	}
	from := m.deploymentBlock
	if found && cp.BlockNumber+1 > from {
		from = cp.BlockNumber + 1
	}
	return from, nil
}

func (m *Monitor) saveCheckpoint(ctx context.Context, block uint64) error {
	info, err := m.head.BlockInfo(ctx, block)
	if err != nil {
		return fmt.Errorf("checkpoint block info: %w", err)
	}
	if err := m.checkpoints.SaveCheckpoint(ctx, model.Checkpoint{
		Type:        model.EventMonitorCheckpoint,
		BlockNumber: block,
		BlockHash:   info.Hash.Hex(),
		BlockTime:   info.Time,
	}); err != nil {
		return fmt.Errorf("save checkpoint: %w", err)
	}
	m.metrics.SetCheckpointBlock(block)
	return nil
}

func (m *Monitor) wait(ctx context.Context, d time.Duration) error {
	if m.headSignal == nil {
		return m.sleep(ctx, d)
	}
	return clock.SleepOrSignal(ctx, d, m.headSignal)
}

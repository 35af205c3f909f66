package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/noosphere-labs/compute-agent/internal/clock"
	"github.com/noosphere-labs/compute-agent/internal/container"
	"github.com/noosphere-labs/compute-agent/internal/model"
	"github.com/noosphere-labs/compute-agent/pkg/workerpool"
)

// Processor consumes pending request events and drives each to a terminal
// status. It shares nothing with the monitor but the ledger, so ingestion
// never waits on execution.
type Processor struct {
	logger    *zap.Logger
	ledger    RequestLedger
	fulfiller Fulfiller
	subs      SubscriptionReader
	registry  ContainerResolver
	runner    ContainerRunner
	metrics   Metrics

	sleep func(context.Context, time.Duration) error
	now   func() time.Time

	workerCount int
	batchSize   uint64
}

// Config carries the processor's tunables. Zero values fall back to defaults.
type Config struct {
	WorkerCount int
	BatchSize   uint64
}

func New(
	ledger RequestLedger,
	fulfiller Fulfiller,
	subs SubscriptionReader,
	registry ContainerResolver,
	runner ContainerRunner,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Processor, error) {
	if metrics == nil {
		return nil, errors.New("processor metrics is required")
	}
	if cfg.WorkerCount < 1 {
		cfg.WorkerCount = defaultWorkerCount
	}
	if cfg.BatchSize == 0 {
		cfg.BatchSize = defaultBatchSize
	}

	return &Processor{
		logger:      logger,
		ledger:      ledger,
		fulfiller:   fulfiller,
		subs:        subs,
		registry:    registry,
		runner:      runner,
		metrics:     metrics,
		sleep:       clock.SleepWithContext,
		now:         time.Now,
		workerCount: cfg.WorkerCount,
		batchSize:   cfg.BatchSize,
	}, nil
}

// Run repairs crash leftovers, then consumes pending events until the
// context is canceled; on the way out it releases any claims that never made
// it on chain.
func (p *Processor) Run(ctx context.Context) error {
	if err := p.recover(ctx); err != nil {
		return err
	}

	for ctx.Err() == nil {
		if err := p.run(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				break
			}
			p.logger.Warn("run iteration failed, backing off",
				zap.Error(err), zap.Duration("sleep", errorSleepDuration))
			if sleepErr := p.sleep(ctx, errorSleepDuration); sleepErr != nil {
				break
			}
		}
	}

	drainCtx, cancel := context.WithTimeout(context.Background(), drainTimeout)
	defer cancel()
	p.drain(drainCtx)

	return ctx.Err()
}

// recover repairs the footprint of an unclean shutdown: events whose
// transaction mined but whose status write was lost become completed, and
// stale processing claims go back to pending.
func (p *Processor) recover(ctx context.Context) error {
	repaired, err := p.ledger.FixInconsistentEventStatuses(ctx)
	if err != nil {
		return fmt.Errorf("repair inconsistent events: %w", err)
	}
	if repaired > 0 {
		p.logger.Info("repaired inconsistent events", zap.Int("count", repaired))
	}

	stale, err := p.ledger.ProcessingEvents(ctx, drainLimit)
	if err != nil {
		return fmt.Errorf("load stale processing events: %w", err)
	}
	for _, ev := range stale {
		if err := p.ledger.RevertProcessingToPending(ctx, ev.RequestID); err != nil {
			return fmt.Errorf("release stale claim %s: %w", ev.RequestID, err)
		}
	}
	if len(stale) > 0 {
		p.logger.Info("released stale processing claims", zap.Int("count", len(stale)))
	}
	return nil
}

func (p *Processor) run(ctx context.Context) error {
	started := time.Now()
	events, err := p.ledger.PendingEvents(ctx, p.batchSize)
	p.metrics.ObserveFetchPending(err, started)
	if err != nil {
		return fmt.Errorf("fetch pending events: %w", err)
	}

	if len(events) == 0 {
		p.logger.Debug("no pending events; sleeping", zap.Duration("sleep", idleSleepDuration))
		return p.sleep(ctx, idleSleepDuration)
	}

	p.logger.Info("driving pending events", zap.Int("count", len(events)))
	return workerpool.Process(ctx, p.workerCount, events, p.processEvent, nil)
}

// processEvent drives one request to a terminal status. Request-level
// problems are absorbed into the ledger as failed/skipped/expired; only
// infrastructure errors propagate and stop the batch.
func (p *Processor) processEvent(ctx context.Context, ev model.RequestEvent) error {
	started := time.Now()
	result, err := p.driveEvent(ctx, ev)
	if err != nil {
		p.metrics.ObserveRequest(resultFailed, started)
		return err
	}
	p.metrics.ObserveRequest(result, started)
	return nil
}

func (p *Processor) driveEvent(ctx context.Context, ev model.RequestEvent) (string, error) {
	logger := p.logger.With(
		zap.String("request_id", ev.RequestID),
		zap.Uint64("subscription_id", ev.SubscriptionID),
		zap.Uint32("interval", ev.Interval),
	)

	processed, err := p.ledger.IsEventProcessed(ctx, ev.RequestID)
	if err != nil {
		return "", fmt.Errorf("check processed %s: %w", ev.RequestID, err)
	}
	if processed {
		logger.Debug("request already processed")
		return resultDuplicate, nil
	}

	sub, err := p.subs.Subscription(ctx, ev.SubscriptionID)
	if err != nil {
		return "", fmt.Errorf("read subscription %d: %w", ev.SubscriptionID, err)
	}

	deadline, hasDeadline := intervalDeadline(ev, sub)
	if hasDeadline && !p.now().Before(deadline) {
		logger.Info("request expired before execution", zap.Time("deadline", deadline))
		if _, err := p.ledger.MarkExpired(ctx, ev.RequestID, "interval deadline passed"); err != nil {
			return "", fmt.Errorf("mark expired %s: %w", ev.RequestID, err)
		}
		return resultExpired, nil
	}

	desc, ok := p.registry.Resolve(ev.ContainerID)
	if !ok {
		logger.Warn("container not registered", zap.String("container_id", ev.ContainerID))
		if _, err := p.ledger.MarkSkipped(ctx, ev.RequestID, "container not registered"); err != nil {
			return "", fmt.Errorf("mark skipped %s: %w", ev.RequestID, err)
		}
		return resultSkipped, nil
	}

	claimed, err := p.ledger.MarkProcessing(ctx, ev.RequestID, ev.Input)
	if err != nil {
		return "", fmt.Errorf("claim %s: %w", ev.RequestID, err)
	}
	if !claimed {
		logger.Debug("request claimed elsewhere")
		return resultConflict, nil
	}

	runCtx := ctx
	if hasDeadline {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithDeadline(ctx, deadline)
		defer cancel()
	}

	output, err := p.runner.Run(runCtx, desc, container.RunRequest{
		RequestID:      ev.RequestID,
		SubscriptionID: ev.SubscriptionID,
		Interval:       ev.Interval,
		Input:          ev.Input,
	})
	if err != nil {
		if ctx.Err() != nil {
			// Shutdown mid-run; drain releases the claim.
			return "", ctx.Err()
		}
		// An HTTP client timeout also surfaces as DeadlineExceeded; it only
		// counts as expiry once the interval deadline itself has elapsed.
		if hasDeadline && errors.Is(err, context.DeadlineExceeded) && !p.now().Before(deadline) {
			logger.Info("request expired during execution", zap.Time("deadline", deadline))
			if _, markErr := p.ledger.MarkExpired(ctx, ev.RequestID, "execution exceeded interval deadline"); markErr != nil {
				return "", fmt.Errorf("mark expired %s: %w", ev.RequestID, markErr)
			}
			return resultExpired, nil
		}
		logger.Warn("container execution failed", zap.Error(err))
		if _, markErr := p.ledger.MarkFailed(ctx, ev.RequestID, err.Error()); markErr != nil {
			return "", fmt.Errorf("mark failed %s: %w", ev.RequestID, markErr)
		}
		return resultFailed, nil
	}

	payload, err := hexutil.Decode(output)
	if err != nil {
		logger.Warn("container returned malformed output", zap.Error(err))
		if _, markErr := p.ledger.MarkFailed(ctx, ev.RequestID,
			fmt.Sprintf("invalid container output: %s", err)); markErr != nil {
			return "", fmt.Errorf("mark failed %s: %w", ev.RequestID, markErr)
		}
		return resultFailed, nil
	}

	res, err := p.fulfiller.FulfillRequest(ctx, common.HexToHash(ev.RequestID), payload, nil)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		logger.Warn("fulfillment submission failed", zap.Error(err))
		if _, markErr := p.ledger.MarkFailed(ctx, ev.RequestID, fmt.Sprintf("fulfill: %s", err)); markErr != nil {
			return "", fmt.Errorf("mark failed %s: %w", ev.RequestID, markErr)
		}
		return resultFailed, nil
	}
	if !res.Success {
		logger.Warn("fulfillment transaction reverted", zap.String("tx", res.TxHash.Hex()))
		if _, markErr := p.ledger.MarkFailed(ctx, ev.RequestID,
			fmt.Sprintf("fulfillment reverted in tx %s", res.TxHash.Hex())); markErr != nil {
			return "", fmt.Errorf("mark failed %s: %w", ev.RequestID, markErr)
		}
		return resultFailed, nil
	}

	if _, err := p.ledger.MarkCompleted(ctx, ev.RequestID, res.TxHash.Hex(), res.GasUsed, res.GasCost, output); err != nil {
		return "", fmt.Errorf("mark completed %s: %w", ev.RequestID, err)
	}
	logger.Info("request completed",
		zap.String("tx", res.TxHash.Hex()),
		zap.Uint64("gas_used", res.GasUsed))
	return resultCompleted, nil
}

// drain releases processing claims that never reached the chain so a later
// run re-drives them. Claims with a mined transaction are left for the
// startup repair.
func (p *Processor) drain(ctx context.Context) {
	stale, err := p.ledger.ProcessingEvents(ctx, drainLimit)
	if err != nil {
		p.logger.Error("drain: load processing events failed", zap.Error(err))
		return
	}
	for _, ev := range stale {
		if err := p.ledger.RevertProcessingToPending(ctx, ev.RequestID); err != nil {
			p.logger.Error("drain: release claim failed",
				zap.String("request_id", ev.RequestID), zap.Error(err))
		}
	}
	if len(stale) > 0 {
		p.logger.Info("released in-flight claims on shutdown", zap.Int("count", len(stale)))
	}
}

// intervalDeadline is blockTime + subscription period; a zero period means
// the request never expires.
func intervalDeadline(ev model.RequestEvent, sub model.Subscription) (time.Time, bool) {
	if sub.Period == 0 {
		return time.Time{}, false
	}
	return ev.BlockTime.Add(time.Duration(sub.Period) * time.Second), true
}

package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/noosphere-labs/compute-agent/internal/model"
	"github.com/noosphere-labs/compute-agent/pkg/safe"
)

const (
	defaultSyncPeriod   = time.Minute
	defaultCronInterval = 10 * time.Second
)

// Scheduler keeps a map of tracked subscriptions and, on every cron tick,
// commits each due interval exactly once. The exactly-once guarantee across
// restarts derives from the ledger: an interval with a recorded request event
// or a prior successful commitment is never committed again.
type Scheduler struct {
	logger    *zap.Logger
	subs      SubscriptionSource
	committer Committer
	store     CommitStore
	metrics   Metrics

	now func() time.Time

	syncPeriod   time.Duration
	cronInterval time.Duration

	// Both maps are touched only from the Run goroutine.
	tracked   map[uint64]model.Subscription
	committed map[model.IntervalKey]struct{}
}

// Config carries the scheduler's tunables. Zero values fall back to defaults.
type Config struct {
	SyncPeriod   time.Duration
	CronInterval time.Duration
}

func New(
	subs SubscriptionSource,
	committer Committer,
	store CommitStore,
	metrics Metrics,
	logger *zap.Logger,
	cfg Config,
) (*Scheduler, error) {
	if metrics == nil {
		return nil, errors.New("scheduler metrics is required")
	}
	if cfg.SyncPeriod <= 0 {
		cfg.SyncPeriod = defaultSyncPeriod
	}
	if cfg.CronInterval <= 0 {
		cfg.CronInterval = defaultCronInterval
	}

	return &Scheduler{
		logger:       logger,
		subs:         subs,
		committer:    committer,
		store:        store,
		metrics:      metrics,
		now:          time.Now,
		syncPeriod:   cfg.SyncPeriod,
		cronInterval: cfg.CronInterval,
		tracked:      make(map[uint64]model.Subscription),
		committed:    make(map[model.IntervalKey]struct{}),
	}, nil
}

// Run syncs tracked subscriptions and fires cron ticks until the context is
// canceled.
func (s *Scheduler) Run(ctx context.Context) error {
	if err := s.sync(ctx); err != nil {
		s.logger.Warn("initial subscription sync failed", zap.Error(err))
	}

	syncTicker := time.NewTicker(s.syncPeriod)
	defer syncTicker.Stop()
	cronTicker := time.NewTicker(s.cronInterval)
	defer cronTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-syncTicker.C:
			if err := s.sync(ctx); err != nil {
				s.logger.Warn("subscription sync failed", zap.Error(err))
			}
		case <-cronTicker.C:
			if err := s.tick(ctx); err != nil {
				s.logger.Warn("cron tick failed", zap.Error(err))
			}
		}
	}
}

// sync refreshes the tracked map from the coordinator's active set.
// Subscriptions that left the set stop being tracked.
func (s *Scheduler) sync(ctx context.Context) error {
	started := time.Now()

	ids, err := s.subs.ActiveSubscriptionIDs(ctx)
	if err != nil {
		s.metrics.ObserveSync(err, 0, started)
		return fmt.Errorf("list active subscriptions: %w", err)
	}

	next := make(map[uint64]model.Subscription, len(ids))
	for _, id := range ids {
		if sub, ok := s.tracked[id]; ok {
			next[id] = sub
			continue
		}
		sub, subErr := s.subs.Subscription(ctx, id)
		if subErr != nil {
			s.metrics.ObserveSync(subErr, 0, started)
			return fmt.Errorf("read subscription %d: %w", id, subErr)
		}
		next[id] = sub
		s.logger.Info("tracking subscription",
			zap.Uint64("subscription_id", id),
			zap.Uint32("frequency", sub.Frequency),
			zap.Uint32("period", sub.Period))
	}

	s.tracked = next
	for key := range s.committed {
		if _, ok := next[key.SubscriptionID]; !ok {
			delete(s.committed, key)
		}
	}
	s.metrics.ObserveSync(nil, len(next), started)
	return nil
}

// tick commits every due interval that has no prior footprint.
func (s *Scheduler) tick(ctx context.Context) error {
	if len(s.tracked) == 0 {
		return nil
	}

	ids := make([]uint64, 0, len(s.tracked))
	for id := range s.tracked {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	stored, err := s.store.CommittedIntervalKeys(ctx, ids)
	if err != nil {
		return fmt.Errorf("load committed intervals: %w", err)
	}
	for key := range stored {
		s.committed[key] = struct{}{}
	}

	now, err := safe.Uint64(s.now().Unix())
	if err != nil {
		return fmt.Errorf("wall clock: %w", err)
	}
	for id, sub := range s.tracked {
		interval := sub.IntervalAt(now)
		if interval == 0 {
			continue
		}
		if sub.Exhausted(interval) {
			s.logger.Debug("subscription exhausted",
				zap.Uint64("subscription_id", id), zap.Uint32("interval", interval))
			continue
		}

		key := model.IntervalKey{SubscriptionID: id, Interval: interval}
		if _, done := s.committed[key]; done {
			continue
		}

		if err := s.commit(ctx, key); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			// Retried on a later tick.
			s.logger.Warn("interval commitment failed",
				zap.Uint64("subscription_id", id),
				zap.Uint32("interval", interval),
				zap.Error(err))
		}
	}
	return nil
}

// commit submits one prepare transaction and records its outcome.
func (s *Scheduler) commit(ctx context.Context, key model.IntervalKey) error {
	started := time.Now()
	res, err := s.committer.PrepareNextInterval(ctx, key.SubscriptionID, key.Interval)
	s.metrics.ObserveCommit(err, started)

	record := model.PrepareTransaction{
		SubscriptionID: key.SubscriptionID,
		Interval:       key.Interval,
		CreatedAt:      s.now().UTC(),
	}

	switch {
	case err != nil:
		record.Status = model.PrepareTxFailed
		record.ErrorMessage = err.Error()
	case !res.Success:
		record.Status = model.PrepareTxFailed
		record.ErrorMessage = "transaction reverted"
		record.TxHash = res.TxHash.Hex()
		record.BlockNumber = res.BlockNumber
		record.GasUsed = res.GasUsed
		record.GasPrice = res.GasPrice
		record.GasCost = res.GasCost
	default:
		record.Status = model.PrepareTxSuccess
		record.TxHash = res.TxHash.Hex()
		record.BlockNumber = res.BlockNumber
		record.GasUsed = res.GasUsed
		record.GasPrice = res.GasPrice
		record.GasCost = res.GasCost
	}

	if insertErr := s.store.InsertPrepareTransaction(ctx, record); insertErr != nil {
		return fmt.Errorf("record prepare transaction: %w", insertErr)
	}

	if record.Status == model.PrepareTxSuccess {
		s.committed[key] = struct{}{}
		s.logger.Info("interval committed",
			zap.Uint64("subscription_id", key.SubscriptionID),
			zap.Uint32("interval", key.Interval),
			zap.String("tx", record.TxHash))
		return nil
	}
	return fmt.Errorf("prepare interval %d/%d: %s", key.SubscriptionID, key.Interval, record.ErrorMessage)
}

package ledger

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/big"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/noosphere-labs/compute-agent/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

// Store is the persistence surface the ledger drives. Rows are versioned
// inserts underneath; the ledger provides the serialization the storage
// engine does not.
type Store interface {
	InsertRequestEvents(ctx context.Context, events []model.RequestEvent) error
	EventExists(ctx context.Context, requestID string) (bool, error)
	RequestEvent(ctx context.Context, requestID string) (model.RequestEvent, bool, error)
	RequestEventsByStatus(ctx context.Context, status model.EventStatus, limit uint64) ([]model.RequestEvent, error)
	InconsistentEvents(ctx context.Context) ([]model.RequestEvent, error)
}

const lockStripes = 64

// Ledger owns every status change of request events. All writes to one
// request are serialized through a striped lock, so a load-check-insert
// sequence observes the latest version.
type Ledger struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time

	locks [lockStripes]sync.Mutex
}

func New(store Store, logger *zap.Logger) *Ledger {
	return &Ledger{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

func (l *Ledger) lock(requestID string) *sync.Mutex {
	h := fnv.New32a()
	_, _ = h.Write([]byte(requestID))
	return &l.locks[h.Sum32()%lockStripes]
}

// SaveRequestStartedEvent records a newly observed on-chain request as
// pending. Re-observing a stored request is a no-op, whatever status the
// stored row has reached; the bool reports whether a row was written.
func (l *Ledger) SaveRequestStartedEvent(ctx context.Context, ev model.RequestEvent) (bool, error) {
	mu := l.lock(ev.RequestID)
	mu.Lock()
	defer mu.Unlock()

	exists, err := l.store.EventExists(ctx, ev.RequestID)
	if err != nil {
		return false, fmt.Errorf("check event exists: %w", err)
	}
	if exists {
		return false, nil
	}

	now := l.now().UTC()
	ev.Status = model.EventPending
	ev.CreatedAt = now
	ev.UpdatedAt = now
	if err := l.store.InsertRequestEvents(ctx, []model.RequestEvent{ev}); err != nil {
		return false, fmt.Errorf("insert request event: %w", err)
	}
	return true, nil
}

// transition moves one request to next if the stored status permits it. An
// illegal or impossible transition is logged and dropped rather than
// propagated; the request keeps its stored status.
func (l *Ledger) transition(ctx context.Context, requestID string, next model.EventStatus, mutate func(*model.RequestEvent)) (bool, error) {
	mu := l.lock(requestID)
	mu.Lock()
	defer mu.Unlock()

	ev, found, err := l.store.RequestEvent(ctx, requestID)
	if err != nil {
		return false, fmt.Errorf("load request event: %w", err)
	}
	if !found {
		l.logger.Warn("transition for unknown request",
			zap.String("request_id", requestID),
			zap.String("next_status", string(next)))
		return false, nil
	}
	if !ev.Status.CanTransition(next) {
		l.logger.Warn("illegal status transition dropped",
			zap.String("request_id", requestID),
			zap.String("status", string(ev.Status)),
			zap.String("next_status", string(next)))
		return false, nil
	}

	ev.Status = next
	ev.UpdatedAt = l.now().UTC()
	if mutate != nil {
		mutate(&ev)
	}
	if err := l.store.InsertRequestEvents(ctx, []model.RequestEvent{ev}); err != nil {
		return false, fmt.Errorf("insert %s version: %w", next, err)
	}
	return true, nil
}

// MarkProcessing claims a pending request for execution. A false return
// means another path already moved the request on.
func (l *Ledger) MarkProcessing(ctx context.Context, requestID string, input string) (bool, error) {
	return l.transition(ctx, requestID, model.EventProcessing, func(ev *model.RequestEvent) {
		ev.Input = input
	})
}

// MarkCompleted records a delivered response with its chain footprint.
func (l *Ledger) MarkCompleted(ctx context.Context, requestID, txHash string, gasUsed uint64, gasCost *big.Int, output string) (bool, error) {
	return l.transition(ctx, requestID, model.EventCompleted, func(ev *model.RequestEvent) {
		ev.TransactionHash = txHash
		ev.GasUsed = gasUsed
		ev.GasCost = gasCost
		ev.Output = output
	})
}

func (l *Ledger) MarkFailed(ctx context.Context, requestID, reason string) (bool, error) {
	return l.transition(ctx, requestID, model.EventFailed, func(ev *model.RequestEvent) {
		ev.ErrorMessage = reason
	})
}

func (l *Ledger) MarkSkipped(ctx context.Context, requestID, reason string) (bool, error) {
	return l.transition(ctx, requestID, model.EventSkipped, func(ev *model.RequestEvent) {
		ev.ErrorMessage = reason
	})
}

func (l *Ledger) MarkExpired(ctx context.Context, requestID, reason string) (bool, error) {
	return l.transition(ctx, requestID, model.EventExpired, func(ev *model.RequestEvent) {
		ev.ErrorMessage = reason
	})
}

// IsEventProcessed reports whether the request already reached a terminal
// status.
func (l *Ledger) IsEventProcessed(ctx context.Context, requestID string) (bool, error) {
	ev, found, err := l.store.RequestEvent(ctx, requestID)
	if err != nil {
		return false, fmt.Errorf("load request event: %w", err)
	}
	if !found {
		return false, nil
	}
	return ev.Status.Terminal(), nil
}

// PendingEvents returns pending requests oldest block first.
func (l *Ledger) PendingEvents(ctx context.Context, limit uint64) ([]model.RequestEvent, error) {
	return l.store.RequestEventsByStatus(ctx, model.EventPending, limit)
}

// ProcessingEvents returns requests that were claimed but never finished,
// the leftovers of an unclean shutdown.
func (l *Ledger) ProcessingEvents(ctx context.Context, limit uint64) ([]model.RequestEvent, error) {
	return l.store.RequestEventsByStatus(ctx, model.EventProcessing, limit)
}

// FixInconsistentEventStatuses promotes events that carry a transaction hash
// but never reached a terminal status. The hash proves the response was
// delivered on chain before the crash, so the stored status is a lie; the
// usual transition rules are bypassed on purpose. Returns the number of
// repaired events.
func (l *Ledger) FixInconsistentEventStatuses(ctx context.Context) (int, error) {
	events, err := l.store.InconsistentEvents(ctx)
	if err != nil {
		return 0, fmt.Errorf("load inconsistent events: %w", err)
	}

	repaired := 0
	for _, ev := range events {
		mu := l.lock(ev.RequestID)
		mu.Lock()

		current, found, loadErr := l.store.RequestEvent(ctx, ev.RequestID)
		if loadErr != nil {
			mu.Unlock()
			return repaired, fmt.Errorf("reload request event: %w", loadErr)
		}
		if !found || current.Status.Terminal() || current.TransactionHash == "" {
			mu.Unlock()
			continue
		}

		current.Status = model.EventCompleted
		current.UpdatedAt = l.now().UTC()
		if insertErr := l.store.InsertRequestEvents(ctx, []model.RequestEvent{current}); insertErr != nil {
			mu.Unlock()
			return repaired, fmt.Errorf("repair request event: %w", insertErr)
		}
		mu.Unlock()

		repaired++
		l.logger.Info("repaired inconsistent event status",
			zap.String("request_id", current.RequestID),
			zap.String("transaction_hash", current.TransactionHash))
	}
	return repaired, nil
}

// RevertProcessingToPending releases a claimed request that was never
// submitted on chain, used when draining at shutdown. This is the one
// deliberate backward move the ledger allows.
func (l *Ledger) RevertProcessingToPending(ctx context.Context, requestID string) error {
	mu := l.lock(requestID)
	mu.Lock()
	defer mu.Unlock()

	ev, found, err := l.store.RequestEvent(ctx, requestID)
	if err != nil {
		return fmt.Errorf("load request event: %w", err)
	}
	if !found || ev.Status != model.EventProcessing || ev.TransactionHash != "" {
		return nil
	}

	ev.Status = model.EventPending
	ev.UpdatedAt = l.now().UTC()
	if err := l.store.InsertRequestEvents(ctx, []model.RequestEvent{ev}); err != nil {
		return fmt.Errorf("revert request event: %w", err)
	}
	return nil
}

package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/noosphere-labs/compute-agent/internal/model"
)

const requestEventColumns = `
	request_id,
	subscription_id,
	interval,
	block_number,
	block_time,
	container_id,
	redundancy,
	fee_amount,
	fee_token,
	verifier,
	wallet_address,
	status,
	transaction_hash,
	gas_used,
	gas_cost,
	input,
	output,
	error_message,
	created_at,
	updated_at`

// RequestEvent returns the latest version of one request, if stored.
func (r *Repository) RequestEvent(ctx context.Context, requestID string) (model.RequestEvent, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("request_event", err, start)
	}()

	query := `
SELECT` + requestEventColumns + `
FROM request_events FINAL
WHERE request_id = ?`

	rows, err := r.conn.Query(ctx, query, requestID)
	if err != nil {
		return model.RequestEvent{}, false, fmt.Errorf("query request event: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return model.RequestEvent{}, false, nil
	}

	ev, err := scanRequestEvent(rows)
	if err != nil {
		return model.RequestEvent{}, false, err
	}
	return ev, true, nil
}

// RequestEventsByStatus returns up to limit latest-version events holding the
// status, oldest block first so replayed work preserves chain order.
func (r *Repository) RequestEventsByStatus(ctx context.Context, status model.EventStatus, limit uint64) ([]model.RequestEvent, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("request_events_by_status", err, start)
	}()

	query := `
SELECT` + requestEventColumns + `
FROM request_events FINAL
WHERE status = ?
ORDER BY block_number ASC, request_id ASC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, string(status), limit)
	if err != nil {
		return nil, fmt.Errorf("query request events by status: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var events []model.RequestEvent
	for rows.Next() {
		ev, scanErr := scanRequestEvent(rows)
		if scanErr != nil {
			err = scanErr
			return nil, err
		}
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate request events: %w", err)
	}
	return events, nil
}

// InconsistentEvents returns latest-version events that carry a transaction
// hash but are not terminal: the footprint of a crash between chain
// submission and the ledger update.
func (r *Repository) InconsistentEvents(ctx context.Context) ([]model.RequestEvent, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("inconsistent_events", err, start)
	}()

	query := `
SELECT` + requestEventColumns + `
FROM request_events FINAL
WHERE transaction_hash != '' AND status IN (?, ?)`

	rows, err := r.conn.Query(ctx, query, string(model.EventPending), string(model.EventProcessing))
	if err != nil {
		return nil, fmt.Errorf("query inconsistent events: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var events []model.RequestEvent
	for rows.Next() {
		ev, scanErr := scanRequestEvent(rows)
		if scanErr != nil {
			err = scanErr
			return nil, err
		}
		events = append(events, ev)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inconsistent events: %w", err)
	}
	return events, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequestEvent(rows rowScanner) (model.RequestEvent, error) {
	var (
		ev        model.RequestEvent
		status    string
		feeAmount big.Int
		gasCost   big.Int
	)
	if err := rows.Scan(
		&ev.RequestID,
		&ev.SubscriptionID,
		&ev.Interval,
		&ev.BlockNumber,
		&ev.BlockTime,
		&ev.ContainerID,
		&ev.Redundancy,
		&feeAmount,
		&ev.FeeToken,
		&ev.Verifier,
		&ev.WalletAddress,
		&status,
		&ev.TransactionHash,
		&ev.GasUsed,
		&gasCost,
		&ev.Input,
		&ev.Output,
		&ev.ErrorMessage,
		&ev.CreatedAt,
		&ev.UpdatedAt,
	); err != nil {
		return model.RequestEvent{}, fmt.Errorf("scan request event: %w", err)
	}
	ev.Status = model.EventStatus(status)
	ev.FeeAmount = &feeAmount
	ev.GasCost = &gasCost
	return ev, nil
}

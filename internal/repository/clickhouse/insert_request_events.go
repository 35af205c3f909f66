package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/noosphere-labs/compute-agent/internal/model"
)

// InsertRequestEvents appends event rows. A row with an already-stored
// request_id is a new version of that event; ReplacingMergeTree keeps the one
// with the greatest updated_at. Callers that need strict insert-once
// semantics gate on EventExists first.
func (r *Repository) InsertRequestEvents(ctx context.Context, events []model.RequestEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_request_events", err, start)
	}()

	if len(events) == 0 {
		return nil
	}

	const query = `
INSERT INTO request_events (
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
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare request events batch: %w", err)
	}

	for _, ev := range events {
		if err = batch.Append(
			ev.RequestID,
			ev.SubscriptionID,
			ev.Interval,
			ev.BlockNumber,
			ev.BlockTime,
			ev.ContainerID,
			ev.Redundancy,
			orZero(ev.FeeAmount),
			ev.FeeToken,
			ev.Verifier,
			ev.WalletAddress,
			string(ev.Status),
			ev.TransactionHash,
			ev.GasUsed,
			orZero(ev.GasCost),
			ev.Input,
			ev.Output,
			ev.ErrorMessage,
			ev.CreatedAt,
			ev.UpdatedAt,
		); err != nil {
			return fmt.Errorf("append request event %s: %w", ev.RequestID, err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert request events: %w", err)
	}
	return nil
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

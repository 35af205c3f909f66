package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/noosphere-labs/compute-agent/internal/model"
)

// InsertPrepareTransaction appends one commitment-transaction record. Rows
// are immutable; cost accounting only.
func (r *Repository) InsertPrepareTransaction(ctx context.Context, tx model.PrepareTransaction) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_prepare_transaction", err, start)
	}()

	const query = `
INSERT INTO prepare_transactions (
	tx_hash,
	block_number,
	subscription_id,
	interval,
	gas_used,
	gas_price,
	gas_cost,
	status,
	error_message,
	created_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare prepare-transactions batch: %w", err)
	}
	if err = batch.Append(
		tx.TxHash,
		tx.BlockNumber,
		tx.SubscriptionID,
		tx.Interval,
		tx.GasUsed,
		orZero(tx.GasPrice),
		orZero(tx.GasCost),
		string(tx.Status),
		tx.ErrorMessage,
		tx.CreatedAt,
	); err != nil {
		return fmt.Errorf("append prepare transaction: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert prepare transaction: %w", err)
	}
	return nil
}

package clickhouse

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/noosphere-labs/compute-agent/internal/model"
)

// EventStats aggregates the latest event versions by status, with total gas
// and fee spend of completed requests.
func (r *Repository) EventStats(ctx context.Context) (model.EventStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("event_stats", err, start)
	}()

	const query = `
SELECT
	count() AS total,
	countIf(status = 'pending') AS pending,
	countIf(status = 'processing') AS processing,
	countIf(status = 'completed') AS completed,
	countIf(status = 'failed') AS failed,
	countIf(status = 'skipped') AS skipped,
	countIf(status = 'expired') AS expired,
	sumIf(gas_used, status = 'completed') AS total_gas_used,
	sumIf(gas_cost, status = 'completed') AS total_gas_cost,
	sumIf(fee_amount, status = 'completed') AS total_fees
FROM request_events FINAL`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return model.EventStats{}, fmt.Errorf("query event stats: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	stats := model.EventStats{TotalGasCost: new(big.Int), TotalFees: new(big.Int)}
	if !rows.Next() {
		return stats, nil
	}

	var gasCost, fees big.Int
	if err = rows.Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Processing,
		&stats.Completed,
		&stats.Failed,
		&stats.Skipped,
		&stats.Expired,
		&stats.TotalGasUsed,
		&gasCost,
		&fees,
	); err != nil {
		return model.EventStats{}, fmt.Errorf("scan event stats: %w", err)
	}
	stats.TotalGasCost = &gasCost
	stats.TotalFees = &fees
	return stats, nil
}

// ContainerStats aggregates the latest event versions per container.
func (r *Repository) ContainerStats(ctx context.Context) ([]model.ContainerStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("container_stats", err, start)
	}()

	const query = `
SELECT
	container_id,
	count() AS total,
	countIf(status = 'completed') AS completed,
	countIf(status = 'failed') AS failed,
	countIf(status = 'skipped') AS skipped,
	countIf(status = 'expired') AS expired
FROM request_events FINAL
GROUP BY container_id
ORDER BY total DESC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query container stats: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var out []model.ContainerStats
	for rows.Next() {
		var cs model.ContainerStats
		if err = rows.Scan(&cs.ContainerID, &cs.Total, &cs.Completed, &cs.Failed, &cs.Skipped, &cs.Expired); err != nil {
			return nil, fmt.Errorf("scan container stats: %w", err)
		}
		out = append(out, cs)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate container stats: %w", err)
	}
	return out, nil
}

// SubscriptionStats aggregates the latest event versions per subscription.
func (r *Repository) SubscriptionStats(ctx context.Context) ([]model.SubscriptionStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("subscription_stats", err, start)
	}()

	const query = `
SELECT
	subscription_id,
	count() AS total,
	countIf(status = 'completed') AS completed,
	max(interval) AS last_interval
FROM request_events FINAL
GROUP BY subscription_id
ORDER BY subscription_id ASC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query subscription stats: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var out []model.SubscriptionStats
	for rows.Next() {
		var ss model.SubscriptionStats
		if err = rows.Scan(&ss.SubscriptionID, &ss.Total, &ss.Completed, &ss.LastInterval); err != nil {
			return nil, fmt.Errorf("scan subscription stats: %w", err)
		}
		out = append(out, ss)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscription stats: %w", err)
	}
	return out, nil
}

// PrepareTxStats aggregates commitment-transaction spend.
func (r *Repository) PrepareTxStats(ctx context.Context) (model.PrepareTxStats, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("prepare_tx_stats", err, start)
	}()

	const query = `
SELECT
	count() AS total,
	countIf(status = 'success') AS succeeded,
	countIf(status = 'failed') AS failed,
	sum(gas_used) AS total_gas_used,
	sum(gas_cost) AS total_gas_cost
FROM prepare_transactions`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return model.PrepareTxStats{}, fmt.Errorf("query prepare tx stats: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	stats := model.PrepareTxStats{TotalGasCost: new(big.Int)}
	if !rows.Next() {
		return stats, nil
	}

	var gasCost big.Int
	if err = rows.Scan(&stats.Total, &stats.Succeeded, &stats.Failed, &stats.TotalGasUsed, &gasCost); err != nil {
		return model.PrepareTxStats{}, fmt.Errorf("scan prepare tx stats: %w", err)
	}
	stats.TotalGasCost = &gasCost
	return stats, nil
}

// RecentActivity returns the most recently updated events, newest first.
func (r *Repository) RecentActivity(ctx context.Context, limit uint64) ([]model.ActivityEntry, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("recent_activity", err, start)
	}()

	const query = `
SELECT
	request_id,
	subscription_id,
	interval,
	container_id,
	status,
	error_message,
	updated_at
FROM request_events FINAL
ORDER BY updated_at DESC
LIMIT ?`

	rows, err := r.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent activity: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var out []model.ActivityEntry
	for rows.Next() {
		var (
			entry  model.ActivityEntry
			status string
		)
		if err = rows.Scan(
			&entry.RequestID,
			&entry.SubscriptionID,
			&entry.Interval,
			&entry.ContainerID,
			&status,
			&entry.ErrorMessage,
			&entry.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		entry.Status = model.EventStatus(status)
		out = append(out, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recent activity: %w", err)
	}
	return out, nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/noosphere-labs/compute-agent/internal/model"
)

// SaveCheckpoint overwrites the checkpoint for the type. Storage-wise this is
// a versioned insert; LoadCheckpoint always resolves the latest write.
func (r *Repository) SaveCheckpoint(ctx context.Context, cp model.Checkpoint) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("save_checkpoint", err, start)
	}()

	const query = `
INSERT INTO checkpoints (
	checkpoint_type,
	block_number,
	block_hash,
	block_time,
	updated_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare checkpoint batch: %w", err)
	}
	if err = batch.Append(
		string(cp.Type),
		cp.BlockNumber,
		cp.BlockHash,
		cp.BlockTime,
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("append checkpoint: %w", err)
	}
	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint returns the latest checkpoint for the type, if any.
func (r *Repository) LoadCheckpoint(ctx context.Context, checkpointType model.CheckpointType) (model.Checkpoint, bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("load_checkpoint", err, start)
	}()

	const query = `
SELECT
	argMax(block_number, updated_at) AS block_number,
	argMax(block_hash, updated_at) AS block_hash,
	argMax(block_time, updated_at) AS block_time,
	count() AS cnt
FROM checkpoints
WHERE checkpoint_type = ?`

	rows, err := r.conn.Query(ctx, query, string(checkpointType))
	if err != nil {
		return model.Checkpoint{}, false, fmt.Errorf("query checkpoint: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return model.Checkpoint{}, false, nil
	}

	cp := model.Checkpoint{Type: checkpointType}
	var cnt uint64
	if err = rows.Scan(&cp.BlockNumber, &cp.BlockHash, &cp.BlockTime, &cnt); err != nil {
		return model.Checkpoint{}, false, fmt.Errorf("scan checkpoint: %w", err)
	}
	if cnt == 0 {
		return model.Checkpoint{}, false, nil
	}
	return cp, true, nil
}

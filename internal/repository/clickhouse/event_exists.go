package clickhouse

import (
	"context"
	"fmt"
	"time"
)

// EventExists reports whether any version of the request is stored.
func (r *Repository) EventExists(ctx context.Context, requestID string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("event_exists", err, start)
	}()

	const query = `
SELECT count() AS cnt
FROM request_events
WHERE request_id = ?`

	rows, err := r.conn.Query(ctx, query, requestID)
	if err != nil {
		return false, fmt.Errorf("query event exists: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	if !rows.Next() {
		return false, nil
	}
	var cnt uint64
	if err = rows.Scan(&cnt); err != nil {
		return false, fmt.Errorf("scan event exists: %w", err)
	}
	return cnt > 0, nil
}

package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/noosphere-labs/compute-agent/internal/model"
)

// CommittedIntervalKeys reconstructs the (subscription, interval) pairs that
// already have a footprint for the given subscriptions: either an observed
// on-chain request event or a successful commitment transaction this agent
// sent earlier. The scheduler treats membership as "do not commit again".
func (r *Repository) CommittedIntervalKeys(ctx context.Context, subscriptionIDs []uint64) (map[model.IntervalKey]struct{}, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("committed_interval_keys", err, start)
	}()

	if len(subscriptionIDs) == 0 {
		return map[model.IntervalKey]struct{}{}, nil
	}

	const query = `
SELECT subscription_id, interval
FROM request_events
WHERE subscription_id IN (?)
GROUP BY subscription_id, interval

UNION DISTINCT

SELECT subscription_id, interval
FROM prepare_transactions
WHERE status = ? AND subscription_id IN (?)
GROUP BY subscription_id, interval`

	rows, err := r.conn.Query(ctx, query, subscriptionIDs, string(model.PrepareTxSuccess), subscriptionIDs)
	if err != nil {
		return nil, fmt.Errorf("query committed intervals: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	keys := make(map[model.IntervalKey]struct{})
	for rows.Next() {
		var key model.IntervalKey
		if err = rows.Scan(&key.SubscriptionID, &key.Interval); err != nil {
			return nil, fmt.Errorf("scan committed interval: %w", err)
		}
		keys[key] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate committed intervals: %w", err)
	}
	return keys, nil
}

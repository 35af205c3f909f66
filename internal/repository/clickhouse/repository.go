// Package clickhouse persists the agent's durable state: the request-event
// ledger, monitor checkpoints, and prepare-transaction accounting.
//
// All tables are append-only at the storage level. Mutable state
// (request-event status, checkpoints) is modeled as versioned rows in
// ReplacingMergeTree tables; reads resolve the latest version with FINAL or
// argMax(..., updated_at).
package clickhouse

import (
	"errors"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records duration and status of repository operations.
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// Repository is the ClickHouse-backed store.
type Repository struct {
	conn    clickhouse.Conn
	metrics Metrics
}

// NewRepository opens a ClickHouse connection from the DSN.
func NewRepository(dsn string, metrics Metrics) (*Repository, error) {
	if dsn == "" {
		return nil, errors.New("clickhouse dsn is required")
	}
	if metrics == nil {
		return nil, errors.New("repository metrics is required")
	}

	options, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse connection: %w", err)
	}

	return &Repository{conn: conn, metrics: metrics}, nil
}

// Close releases the underlying connection pool.
func (r *Repository) Close() error {
	return r.conn.Close()
}

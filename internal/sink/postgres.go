package sink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/rickgao/dex-orders/internal/model"
)

// Execer is satisfied by *pgxpool.Pool and pgx.Tx.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const createSnapshotsTable = `
	CREATE TABLE IF NOT EXISTS order_snapshots (
		id          UUID PRIMARY KEY,
		source      TEXT        NOT NULL,
		fetched_at  TIMESTAMPTZ NOT NULL,
		order_count INTEGER     NOT NULL,
		orders      JSONB       NOT NULL
	)
`

const createSnapshotsIndex = `
	CREATE INDEX IF NOT EXISTS order_snapshots_source_fetched_at_idx
		ON order_snapshots (source, fetched_at DESC)
`

const insertSnapshot = `
	INSERT INTO order_snapshots (id, source, fetched_at, order_count, orders)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id) DO NOTHING
`

// EnsureSchema creates the order_snapshots table if it does not exist.
func EnsureSchema(ctx context.Context, db Execer) error {
	if _, err := db.Exec(ctx, createSnapshotsTable); err != nil {
		return fmt.Errorf("create order_snapshots: %w", err)
	}
	if _, err := db.Exec(ctx, createSnapshotsIndex); err != nil {
		return fmt.Errorf("create order_snapshots index: %w", err)
	}
	return nil
}

// PostgresSink stores each snapshot as one row.
type PostgresSink struct {
	db      Execer
	timeout time.Duration
	logger  *slog.Logger
}

// NewPostgresSink creates a sink. timeout bounds each insert; zero means none.
func NewPostgresSink(db Execer, timeout time.Duration, logger *slog.Logger) *PostgresSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresSink{
		db:      db,
		timeout: timeout,
		logger:  logger.With("sink", "postgres"),
	}
}

// Write inserts snap. Failures are logged and the row is dropped.
func (s *PostgresSink) Write(ctx context.Context, snap model.Snapshot) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	_, err := s.db.Exec(ctx, insertSnapshot,
		snap.ID,
		snap.Source,
		snap.FetchedAt,
		snap.Len(),
		snap.OrdersJSON(),
	)
	if err != nil {
		s.logger.Error("snapshot insert failed",
			"source", snap.Source,
			"snapshot_id", snap.ID,
			"count", snap.Len(),
			"error", err,
		)
	}
}

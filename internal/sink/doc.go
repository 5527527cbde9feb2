// Package sink implements the append-only destinations for order snapshots.
//
// Writers:
//   - FileSink: JSON lines under <dir>/<YYYY-MM-DD>/<stem>-order.log,
//     rolled over by size; an entry larger than the rotation size is
//     written alone to <stem>-order-<snapshot id>.log
//   - PostgresSink: one order_snapshots row per snapshot
//   - Fanout: the same snapshot to several sinks
//
// No sink returns an error. Storage problems are logged and the write is
// dropped so the poll loop never sees them.
package sink

import (
	"context"

	"github.com/rickgao/dex-orders/internal/model"
)

// Sink accepts snapshots.
type Sink interface {
	Write(ctx context.Context, snap model.Snapshot)
}

package sink

import (
	"context"

	"github.com/rickgao/dex-orders/internal/model"
)

// Fanout writes every snapshot to each sink in order.
type Fanout []Sink

// Write implements Sink.
func (f Fanout) Write(ctx context.Context, snap model.Snapshot) {
	for _, s := range f {
		s.Write(ctx, snap)
	}
}

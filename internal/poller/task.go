package poller

import (
	"context"
	"time"

	"github.com/rickgao/dex-orders/internal/model"
)

// Source fetches the current order snapshot. Implementations must not fail:
// any upstream problem is reported as an empty slice.
type Source interface {
	Fetch(ctx context.Context) []model.Order
}

// Sink receives each fetched snapshot. Implementations must not fail.
type Sink interface {
	Write(ctx context.Context, snap model.Snapshot)
}

// SourceFunc is a function adapter for Source.
type SourceFunc func(ctx context.Context) []model.Order

func (f SourceFunc) Fetch(ctx context.Context) []model.Order {
	return f(ctx)
}

// Descriptor binds a source to its sink under a unique name.
type Descriptor struct {
	Name   string
	Source Source
	Sink   Sink
}

// Task runs one descriptor: fetch, write, measure.
type Task struct {
	desc    Descriptor
	timeout time.Duration
	now     func() time.Time
}

// Name returns the source name.
func (t *Task) Name() string {
	return t.desc.Name
}

// Run fetches once, forwards the result to the sink unchanged and returns
// the count and elapsed time. Empty results are still written.
func (t *Task) Run(ctx context.Context) SourceStats {
	start := t.now()

	fetchCtx := ctx
	if t.timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, t.timeout)
		defer cancel()
	}

	orders := t.desc.Source.Fetch(fetchCtx)
	t.desc.Sink.Write(ctx, model.NewSnapshot(t.desc.Name, start, orders))

	return SourceStats{
		Count:   len(orders),
		Elapsed: t.now().Sub(start),
	}
}

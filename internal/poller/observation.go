package poller

import (
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
)

// SourceStats is one source's share of a cycle.
type SourceStats struct {
	Count   int
	Elapsed time.Duration
}

// Observation summarizes one completed cycle. It is handed to reporters
// and then dropped.
type Observation struct {
	CycleID uuid.UUID
	Start   time.Time
	Sources map[string]SourceStats
	Elapsed time.Duration
}

// TotalOrders sums the record counts of all sources.
func (o Observation) TotalOrders() int {
	total := 0
	for _, s := range o.Sources {
		total += s.Count
	}
	return total
}

// Names returns the source names in sorted order.
func (o Observation) Names() []string {
	names := make([]string, 0, len(o.Sources))
	for name := range o.Sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reporter consumes cycle observations.
type Reporter interface {
	Report(obs Observation)
}

// ReporterFunc is a function adapter for Reporter.
type ReporterFunc func(Observation)

func (f ReporterFunc) Report(obs Observation) {
	f(obs)
}

// LogReporter writes one line per source and one per cycle.
type LogReporter struct {
	logger *slog.Logger
}

// NewLogReporter creates a LogReporter.
func NewLogReporter(logger *slog.Logger) *LogReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogReporter{logger: logger}
}

// Report implements Reporter.
func (r *LogReporter) Report(obs Observation) {
	for _, name := range obs.Names() {
		s := obs.Sources[name]
		r.logger.Info("fetched orders",
			"cycle_id", obs.CycleID,
			"source", name,
			"count", s.Count,
			"duration", s.Elapsed,
		)
	}

	r.logger.Info("poll cycle complete",
		"cycle_id", obs.CycleID,
		"sources", len(obs.Sources),
		"orders", obs.TotalOrders(),
		"duration", obs.Elapsed,
	)
}

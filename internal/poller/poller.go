package poller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Config holds poller configuration.
type Config struct {
	Interval    time.Duration // Sleep after each cycle (default: 5s)
	TaskTimeout time.Duration // Per-fetch deadline; 0 disables
}

// DefaultConfig returns the defaults.
func DefaultConfig() Config {
	return Config{
		Interval: 5 * time.Second,
	}
}

// Poller runs poll cycles over a fixed set of tasks.
type Poller struct {
	cfg       Config
	tasks     []*Task
	reporters []Reporter
	logger    *slog.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates a Poller. Descriptor names must be unique and non-empty and
// every descriptor needs a source and a sink.
func New(cfg Config, descs []Descriptor, reporters []Reporter, logger *slog.Logger) (*Poller, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Interval < 0 {
		return nil, errors.New("interval must be >= 0")
	}
	if cfg.TaskTimeout < 0 {
		return nil, errors.New("task timeout must be >= 0")
	}

	p := &Poller{
		cfg:       cfg,
		reporters: reporters,
		logger:    logger,
		now:       time.Now,
		sleep:     sleepCtx,
	}

	seen := make(map[string]bool, len(descs))
	for _, d := range descs {
		switch {
		case d.Name == "":
			return nil, errors.New("descriptor name is required")
		case seen[d.Name]:
			return nil, fmt.Errorf("duplicate descriptor %q", d.Name)
		case d.Source == nil:
			return nil, fmt.Errorf("descriptor %q has no source", d.Name)
		case d.Sink == nil:
			return nil, fmt.Errorf("descriptor %q has no sink", d.Name)
		}
		seen[d.Name] = true
		p.tasks = append(p.tasks, &Task{desc: d, timeout: cfg.TaskTimeout, now: p.clock})
	}

	return p, nil
}

// Tasks returns the task names in configuration order.
func (p *Poller) Tasks() []string {
	names := make([]string, len(p.tasks))
	for i, t := range p.tasks {
		names[i] = t.Name()
	}
	return names
}

// Run polls until ctx is cancelled, then returns ctx.Err(). Cancellation is
// only observed between cycles: tasks already dispatched run to completion.
func (p *Poller) Run(ctx context.Context) error {
	taskCtx := context.WithoutCancel(ctx)

	p.logger.Info("poller started",
		"sources", len(p.tasks),
		"interval", p.cfg.Interval,
		"task_timeout", p.cfg.TaskTimeout,
	)

	for {
		p.RunCycle(taskCtx)

		if err := p.sleep(ctx, p.cfg.Interval); err != nil {
			p.logger.Info("poller stopped")
			return err
		}
	}
}

// RunCycle runs every task once, waits for all of them and reports the result.
func (p *Poller) RunCycle(ctx context.Context) Observation {
	obs := Observation{
		CycleID: uuid.New(),
		Start:   p.now(),
		Sources: make(map[string]SourceStats, len(p.tasks)),
	}

	// Each goroutine owns one slot.
	results := make([]SourceStats, len(p.tasks))

	var g errgroup.Group
	for i, task := range p.tasks {
		g.Go(func() error {
			results[i] = task.Run(ctx)
			return nil
		})
	}
	_ = g.Wait() // tasks never return errors

	for i, task := range p.tasks {
		obs.Sources[task.Name()] = results[i]
	}
	obs.Elapsed = p.now().Sub(obs.Start)

	for _, r := range p.reporters {
		r.Report(obs)
	}

	return obs
}

func (p *Poller) clock() time.Time {
	return p.now()
}

// sleepCtx waits for d or until ctx is done. d <= 0 returns immediately
// unless ctx is already done.
func sleepCtx(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if d <= 0 {
		return nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rickgao/dex-orders/internal/config"
	"github.com/rickgao/dex-orders/internal/database"
	"github.com/rickgao/dex-orders/internal/metrics"
	"github.com/rickgao/dex-orders/internal/poller"
	"github.com/rickgao/dex-orders/internal/sink"
	"github.com/rickgao/dex-orders/internal/source"
	"github.com/rickgao/dex-orders/internal/version"
)

const (
	dbWriteTimeout = 10 * time.Second

	// shutdownGrace bounds how long an in-flight cycle may delay exit.
	shutdownGrace = 30 * time.Second
)

func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	flag.Parse()

	// Load configuration
	cfg, err := loadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Set up structured logging
	logger := newLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting collector",
		"version", version.String(),
		"config", *configPath,
	)
	logger.Info("configuration loaded",
		"sources", strings.Join(cfg.Sources.Enabled, ","),
		"interval", cfg.Poller.Interval,
		"logs_dir", cfg.Logs.Dir,
	)

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go watchSignals(sigCh, cancel, shutdownGrace, os.Exit, logger)

	// Connect to database
	var pool *pgxpool.Pool
	if cfg.Database.Enabled {
		logger.Info("connecting to database",
			"host", cfg.Database.Host,
			"port", cfg.Database.Port,
			"database", cfg.Database.Name,
		)

		pool, err = database.Connect(ctx, cfg.Database)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		if err := sink.EnsureSchema(ctx, pool); err != nil {
			logger.Error("failed to create schema", "error", err)
			os.Exit(1)
		}
		logger.Info("database connected")
	}

	// Build one task per source: adapter -> file sink (+ database)
	adapters := source.FromConfig(cfg.Sources, logger)
	descs := make([]poller.Descriptor, 0, len(adapters))
	var files []*sink.FileSink
	for _, a := range adapters {
		file := sink.NewFileSink(a.Name(), cfg.Logs, logger)
		files = append(files, file)

		var out poller.Sink = file
		if pool != nil {
			out = sink.Fanout{file, sink.NewPostgresSink(pool, dbWriteTimeout, logger)}
		}

		descs = append(descs, poller.Descriptor{Name: a.Name(), Source: a, Sink: out})
	}
	defer func() {
		for _, f := range files {
			if err := f.Close(); err != nil {
				logger.Warn("failed to close log file", "path", f.Path(), "error", err)
			}
		}
	}()

	health := &healthState{}
	reporters := []poller.Reporter{poller.NewLogReporter(logger), health}

	var m *metrics.Metrics
	if cfg.Metrics.Enabled {
		m = metrics.New("")
		reporters = append(reporters, m)
	}

	p, err := poller.New(poller.Config{
		Interval:    cfg.Poller.Interval,
		TaskTimeout: cfg.Poller.TaskTimeout,
	}, descs, reporters, logger)
	if err != nil {
		logger.Error("failed to create poller", "error", err)
		os.Exit(1)
	}

	// Start metrics/health server
	var server *http.Server
	if m != nil {
		server = &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Metrics.Port),
			Handler:           createHandler(cfg.Metrics.Path, m, pool, health),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("starting metrics server", "port", cfg.Metrics.Port, "path", cfg.Metrics.Path)
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server error", "error", err)
			}
		}()
	}

	logger.Info("collector running", "sources", p.Tasks())

	// Blocks until signal; an in-flight cycle finishes first
	if err := p.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("poller stopped", "error", err)
	}

	logger.Info("shutting down...")

	if server != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		server.Shutdown(shutdownCtx)
	}

	logger.Info("collector stopped")
}

// watchSignals cancels on the first signal and restores default signal
// handling, so a second signal terminates the process. If shutdown has not
// finished after grace, exit(1) is called.
func watchSignals(sigCh chan os.Signal, cancel context.CancelFunc, grace time.Duration, exit func(int), logger *slog.Logger) {
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig, "grace", grace)
	signal.Stop(sigCh)
	cancel()

	timer := time.NewTimer(grace)
	defer timer.Stop()
	<-timer.C

	logger.Error("shutdown grace period exceeded, exiting")
	exit(1)
}

// loadConfig reads path, or falls back to defaults when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.LoadAndValidate(path)
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// healthState remembers the last completed cycle.
type healthState struct {
	last atomic.Pointer[poller.Observation]
}

func (h *healthState) Report(obs poller.Observation) {
	h.last.Store(&obs)
}

// createHandler serves metrics and health checks.
func createHandler(metricsPath string, m *metrics.Metrics, pool *pgxpool.Pool, health *healthState) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(metricsPath, m.Handler())

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		resp := struct {
			Status     string         `json:"status"`
			Build      version.Info   `json:"build"`
			Components map[string]any `json:"components"`
		}{
			Status:     "healthy",
			Build:      version.Get(),
			Components: make(map[string]any),
		}

		// Check database
		if pool != nil {
			if err := pool.Ping(ctx); err != nil {
				resp.Status = "unhealthy"
				resp.Components["postgres"] = map[string]string{
					"status": "disconnected",
					"error":  err.Error(),
				}
			} else {
				resp.Components["postgres"] = "connected"
			}
		}

		// Check poller progress
		if obs := health.last.Load(); obs != nil {
			resp.Components["poller"] = map[string]any{
				"last_cycle": obs.Start,
				"orders":     obs.TotalOrders(),
				"sources":    obs.Sources,
			}
		} else if resp.Status == "healthy" {
			resp.Status = "starting"
		}

		w.Header().Set("Content-Type", "application/json")
		if resp.Status == "unhealthy" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(resp)
	})

	return mux
}

package sink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rickgao/dex-orders/internal/config"
	"github.com/rickgao/dex-orders/internal/model"
)

// DatePattern names the partition directories.
const DatePattern = "2006-01-02"

// FileSink appends snapshots to a date-partitioned, size-rotated log file.
type FileSink struct {
	name   string
	cfg    config.LogsConfig
	logger *slog.Logger
	now    func() time.Time

	mu    sync.Mutex
	date  string
	dir   string
	path  string
	out   io.WriteCloser
	buf   bytes.Buffer
	entry *slog.Logger
}

// NewFileSink creates a sink writing <cfg.Dir>/<date>/<stem>-order.log, where
// stem is config.LogFileStem(name). Files are opened lazily on the first write.
func NewFileSink(name string, cfg config.LogsConfig, logger *slog.Logger) *FileSink {
	if logger == nil {
		logger = slog.Default()
	}
	s := &FileSink{
		name:   name,
		cfg:    cfg,
		logger: logger.With("sink", "file", "source", name),
		now:    time.Now,
	}
	s.entry = slog.New(slog.NewJSONHandler(&s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return s
}

// Write appends one entry for snap. It never fails; see package doc.
// An entry larger than the rotation size goes to its own file in the
// partition directory, since the rotating file cannot hold it.
func (s *FileSink) Write(ctx context.Context, snap model.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ensurePartition() {
		return
	}

	s.buf.Reset()
	s.entry.LogAttrs(ctx, slog.LevelInfo, "snapshot",
		slog.String("snapshot_id", snap.ID.String()),
		slog.String("source", snap.Source),
		slog.Time("fetched_at", snap.FetchedAt),
		slog.Int("count", snap.Len()),
		slog.Any("orders", json.RawMessage(snap.OrdersJSON())),
	)
	line := s.buf.Bytes()

	if int64(len(line)) > s.maxBytes() {
		s.writeOversized(snap, line)
		return
	}

	if _, err := s.out.Write(line); err != nil {
		s.logger.Error("snapshot write failed",
			"snapshot_id", snap.ID,
			"bytes", len(line),
			"error", err,
		)
	}
}

// maxBytes mirrors lumberjack's limit, including its 100MB default.
func (s *FileSink) maxBytes() int64 {
	mb := s.cfg.MaxSizeMB
	if mb <= 0 {
		mb = 100
	}
	return int64(mb) * 1024 * 1024
}

// writeOversized stores one entry in <stem>-order-<snapshot id>.log.
func (s *FileSink) writeOversized(snap model.Snapshot, line []byte) {
	path := filepath.Join(s.dir, fmt.Sprintf("%s-order-%s.log", config.LogFileStem(s.name), snap.ID))
	if err := os.WriteFile(path, line, 0o644); err != nil {
		s.logger.Error("oversized snapshot write failed",
			"path", path,
			"bytes", len(line),
			"error", err,
		)
		return
	}
	s.logger.Warn("snapshot exceeds rotation size, written to its own file",
		"path", path,
		"bytes", len(line),
		"max_size_mb", s.cfg.MaxSizeMB,
	)
}

// Path returns the file currently written to, or "" before the first write
// or while the partition is unavailable.
func (s *FileSink) Path() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// Close closes the current file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closeLocked()
}

func (s *FileSink) closeLocked() error {
	s.date = ""
	if s.out == nil {
		return nil
	}
	err := s.out.Close()
	s.out = nil
	s.dir = ""
	s.path = ""
	return err
}

// ensurePartition switches files when the calendar date changes. It
// reports false while the partition directory is unavailable.
func (s *FileSink) ensurePartition() bool {
	now := s.now()
	if !s.cfg.LocalTime {
		now = now.UTC()
	}
	date := now.Format(DatePattern)
	if date == s.date {
		return s.out != nil
	}

	if err := s.closeLocked(); err != nil {
		s.logger.Warn("close snapshot log failed", "error", err)
	}
	s.date = date

	dir := filepath.Join(s.cfg.Dir, date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error("snapshot log unavailable, dropping writes",
			"dir", dir,
			"error", err,
		)
		return false
	}

	s.dir = dir
	s.path = filepath.Join(dir, config.LogFileStem(s.name)+"-order.log")
	s.out = &lumberjack.Logger{
		Filename:   s.path,
		MaxSize:    s.cfg.MaxSizeMB,
		MaxBackups: s.cfg.MaxBackups,
		Compress:   s.cfg.Compress,
		LocalTime:  s.cfg.LocalTime,
	}

	s.logger.Debug("snapshot log opened", "path", s.path)
	return true
}

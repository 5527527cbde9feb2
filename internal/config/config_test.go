package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
poller:
  interval: 1500ms
  task_timeout: 20s
logs:
  dir: /var/log/dex-orders
sources:
  enabled: [uniswapx-dutch, velora]
  uniswapx:
    base_url: https://example.test/v2
    limit: 25
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Poller.Interval != 1500*time.Millisecond {
		t.Errorf("Poller.Interval = %v, want %v", cfg.Poller.Interval, 1500*time.Millisecond)
	}
	if cfg.Poller.TaskTimeout != 20*time.Second {
		t.Errorf("Poller.TaskTimeout = %v, want %v", cfg.Poller.TaskTimeout, 20*time.Second)
	}
	if cfg.Logs.Dir != "/var/log/dex-orders" {
		t.Errorf("Logs.Dir = %q, want %q", cfg.Logs.Dir, "/var/log/dex-orders")
	}
	if len(cfg.Sources.Enabled) != 2 || cfg.Sources.Enabled[1] != SourceVelora {
		t.Errorf("Sources.Enabled = %v, want [uniswapx-dutch velora]", cfg.Sources.Enabled)
	}
	if cfg.Sources.UniswapX.Limit != 25 {
		t.Errorf("Sources.UniswapX.Limit = %d, want 25", cfg.Sources.UniswapX.Limit)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_ONE_INCH_KEY", "secret123")

	yaml := `
sources:
  oneinch:
    api_key: ${TEST_ONE_INCH_KEY}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Sources.OneInch.APIKey != "secret123" {
		t.Errorf("Sources.OneInch.APIKey = %q, want %q", cfg.Sources.OneInch.APIKey, "secret123")
	}
}

func TestLoadWithDotEnv(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, ".env")
	if err := os.WriteFile(envPath, []byte("TEST_DOTENV_KEY=from-dotenv\n"), 0644); err != nil {
		t.Fatalf("write env file: %v", err)
	}

	prev := DotEnvPath
	DotEnvPath = envPath
	t.Cleanup(func() {
		DotEnvPath = prev
		os.Unsetenv("TEST_DOTENV_KEY")
	})

	path := writeTempFile(t, "sources:\n  oneinch:\n    api_key: ${TEST_DOTENV_KEY}\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sources.OneInch.APIKey != "from-dotenv" {
		t.Errorf("Sources.OneInch.APIKey = %q, want %q", cfg.Sources.OneInch.APIKey, "from-dotenv")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "log:\n  level: debug\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Poller.Interval != DefaultPollInterval {
		t.Errorf("Poller.Interval = %v, want default %v", cfg.Poller.Interval, DefaultPollInterval)
	}
	if cfg.Poller.TaskTimeout != 0 {
		t.Errorf("Poller.TaskTimeout = %v, want 0 (disabled)", cfg.Poller.TaskTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Logs.MaxSizeMB != DefaultMaxSizeMB {
		t.Errorf("Logs.MaxSizeMB = %d, want default %d", cfg.Logs.MaxSizeMB, DefaultMaxSizeMB)
	}
	if len(cfg.Sources.Enabled) != len(SourceNames) {
		t.Errorf("Sources.Enabled = %v, want all sources", cfg.Sources.Enabled)
	}
	if cfg.Sources.UniswapX.Desc == nil || !*cfg.Sources.UniswapX.Desc {
		t.Error("Sources.UniswapX.Desc should default to true")
	}
	if cfg.Sources.Velora.Taker != DefaultVeloraTaker {
		t.Errorf("Sources.Velora.Taker = %q, want default %q", cfg.Sources.Velora.Taker, DefaultVeloraTaker)
	}
	if cfg.Sources.OneInch.Statuses != DefaultOneInchStatuses {
		t.Errorf("Sources.OneInch.Statuses = %q, want default %q", cfg.Sources.OneInch.Statuses, DefaultOneInchStatuses)
	}
	if cfg.Metrics.Port != DefaultMetricsPort {
		t.Errorf("Metrics.Port = %d, want default %d", cfg.Metrics.Port, DefaultMetricsPort)
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative interval",
			mutate:  func(c *Config) { c.Poller.Interval = -time.Second },
			wantErr: "poller.interval must be >= 0",
		},
		{
			name:    "negative task timeout",
			mutate:  func(c *Config) { c.Poller.TaskTimeout = -time.Second },
			wantErr: "poller.task_timeout must be >= 0",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: `log.level must be one of debug, info, warn, error, got "trace"`,
		},
		{
			name:    "unknown source",
			mutate:  func(c *Config) { c.Sources.Enabled = []string{"cowswap"} },
			wantErr: `sources.enabled: unknown source "cowswap"`,
		},
		{
			name:    "duplicate source",
			mutate:  func(c *Config) { c.Sources.Enabled = []string{SourceVelora, SourceVelora} },
			wantErr: `sources.enabled: duplicate source "velora"`,
		},
		{
			name:    "database enabled without host",
			mutate:  func(c *Config) { c.Database.Enabled = true },
			wantErr: "database.host is required",
		},
		{
			name: "min_conns exceeds max_conns",
			mutate: func(c *Config) {
				c.Database = DatabaseConfig{Enabled: true, Host: "localhost", Name: "db", User: "user", MaxConns: 2, MinConns: 5}
			},
			wantErr: "database.min_conns (5) cannot exceed max_conns (2)",
		},
		{
			name:    "metrics port out of range",
			mutate:  func(c *Config) { c.Metrics.Enabled = true; c.Metrics.Port = 70000 },
			wantErr: "metrics.port must be between 1 and 65535, got 70000",
		},
		{
			name:    "valid config",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestLoadDefault(t *testing.T) {
	prev := DotEnvPath
	DotEnvPath = filepath.Join(t.TempDir(), "absent.env")
	t.Cleanup(func() { DotEnvPath = prev })
	t.Setenv(OneInchKeyEnv, "env-key")

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if cfg.Sources.OneInch.APIKey != "env-key" {
		t.Errorf("Sources.OneInch.APIKey = %q, want %q", cfg.Sources.OneInch.APIKey, "env-key")
	}
	if cfg.Poller.Interval != DefaultPollInterval {
		t.Errorf("Poller.Interval = %v, want %v", cfg.Poller.Interval, DefaultPollInterval)
	}
}

func TestLogFileStem(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{SourceUniswapXDutch, "uniswapx-duch"},
		{SourceUniswapXLimit, "uniswapx-limit"},
		{SourceVelora, "velora"},
		{SourceOneInchFusion, "one-inch-fusion"},
		{SourceOneInchLimit, "one-inch-limit"},
		{"custom", "custom"},
	}

	for _, tt := range tests {
		if got := LogFileStem(tt.source); got != tt.want {
			t.Errorf("LogFileStem(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

package config

import "time"

// Config is the root configuration for a collector instance.
type Config struct {
	Poller   PollerConfig   `yaml:"poller"`
	Log      LogConfig      `yaml:"log"`
	Logs     LogsConfig     `yaml:"logs"`
	Sources  SourcesConfig  `yaml:"sources"`
	Database DatabaseConfig `yaml:"database"`
	Metrics  MetricsConfig  `yaml:"metrics"`
}

// PollerConfig holds poll loop settings.
type PollerConfig struct {
	Interval    time.Duration `yaml:"interval"`     // Sleep between cycles (default: 5s)
	TaskTimeout time.Duration `yaml:"task_timeout"` // Per-task deadline, 0 disables
}

// LogConfig configures the operator log stream.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug|info|warn|error
	Format string `yaml:"format"` // text|json
}

// LogsConfig configures the snapshot log files.
type LogsConfig struct {
	Dir        string `yaml:"dir"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
	LocalTime  bool   `yaml:"local_time"` // Partition by local date instead of UTC
}

// SourcesConfig holds per-upstream settings.
type SourcesConfig struct {
	// Enabled lists the source names to poll. Empty means all of them.
	Enabled  []string       `yaml:"enabled"`
	UniswapX UniswapXConfig `yaml:"uniswapx"`
	Velora   VeloraConfig   `yaml:"velora"`
	OneInch  OneInchConfig  `yaml:"oneinch"`
}

// UniswapXConfig covers both the Dutch auction and limit order feeds.
type UniswapXConfig struct {
	BaseURL     string        `yaml:"base_url"`
	Limit       int           `yaml:"limit"`
	OrderStatus string        `yaml:"order_status"`
	SortKey     string        `yaml:"sort_key"`
	Desc        *bool         `yaml:"desc"`
	ChainID     int           `yaml:"chain_id"`
	Timeout     time.Duration `yaml:"timeout"`
}

// VeloraConfig holds ParaSwap order book settings.
type VeloraConfig struct {
	BaseURL string        `yaml:"base_url"`
	ChainID int           `yaml:"chain_id"`
	Taker   string        `yaml:"taker"`
	Limit   int           `yaml:"limit"`
	Timeout time.Duration `yaml:"timeout"`
}

// OneInchConfig covers the Fusion and Orderbook APIs.
type OneInchConfig struct {
	FusionURL    string        `yaml:"fusion_url"`
	OrderbookURL string        `yaml:"orderbook_url"`
	APIKey       string        `yaml:"api_key"`
	ChainID      int           `yaml:"chain_id"`
	Limit        int           `yaml:"limit"`
	Statuses     string        `yaml:"statuses"` // Orderbook status filter, e.g. "1,2"
	Timeout      time.Duration `yaml:"timeout"`
}

// DatabaseConfig holds the optional Postgres snapshot store.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// MetricsConfig holds Prometheus metrics settings.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Port    int    `yaml:"port"`
	Path    string `yaml:"path"`
}

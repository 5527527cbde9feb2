package config

import "time"

// Source names accepted in sources.enabled.
const (
	SourceUniswapXDutch = "uniswapx-dutch"
	SourceUniswapXLimit = "uniswapx-limit"
	SourceVelora        = "velora"
	SourceOneInchFusion = "oneinch-fusion"
	SourceOneInchLimit  = "oneinch-limit"
)

// SourceNames lists every known source in wiring order.
var SourceNames = []string{
	SourceUniswapXDutch,
	SourceUniswapXLimit,
	SourceVelora,
	SourceOneInchFusion,
	SourceOneInchLimit,
}

// logFileStems keeps the snapshot file names existing audit tooling reads.
var logFileStems = map[string]string{
	SourceUniswapXDutch: "uniswapx-duch",
	SourceUniswapXLimit: "uniswapx-limit",
	SourceVelora:        "velora",
	SourceOneInchFusion: "one-inch-fusion",
	SourceOneInchLimit:  "one-inch-limit",
}

// LogFileStem returns the file name prefix for a source's snapshot log.
// Unknown names are used as is.
func LogFileStem(source string) string {
	if stem, ok := logFileStems[source]; ok {
		return stem
	}
	return source
}

// Default values for optional configuration fields.
const (
	DefaultPollInterval = 5 * time.Second

	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"

	DefaultLogsDir   = "logs"
	DefaultMaxSizeMB = 200

	DefaultUniswapXURL         = "https://api.uniswap.org/v2"
	DefaultUniswapXLimit       = 100
	DefaultUniswapXOrderStatus = "open"
	DefaultUniswapXSortKey     = "createdAt"

	DefaultVeloraURL   = "https://api.paraswap.io"
	DefaultVeloraTaker = "0x0000000000000000000000000000000000000000"
	DefaultVeloraLimit = 500

	DefaultOneInchFusionURL    = "https://api.1inch.com/fusion"
	DefaultOneInchOrderbookURL = "https://api.1inch.com/orderbook"
	DefaultOneInchLimit        = 500
	DefaultOneInchStatuses     = "1,2"

	DefaultChainID = 1

	DefaultDBPort      = 5432
	DefaultDBSSLMode   = "prefer"
	DefaultMaxConns    = 4
	DefaultMinConns    = 1
	DefaultMetricsPort = 9090
	DefaultMetricsPath = "/metrics"
)

func (c *Config) applyDefaults() {
	// Poller defaults
	if c.Poller.Interval == 0 {
		c.Poller.Interval = DefaultPollInterval
	}

	// Log defaults
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Logs.Dir == "" {
		c.Logs.Dir = DefaultLogsDir
	}
	if c.Logs.MaxSizeMB == 0 {
		c.Logs.MaxSizeMB = DefaultMaxSizeMB
	}

	// Source defaults
	if len(c.Sources.Enabled) == 0 {
		c.Sources.Enabled = append([]string(nil), SourceNames...)
	}

	ux := &c.Sources.UniswapX
	if ux.BaseURL == "" {
		ux.BaseURL = DefaultUniswapXURL
	}
	if ux.Limit == 0 {
		ux.Limit = DefaultUniswapXLimit
	}
	if ux.OrderStatus == "" {
		ux.OrderStatus = DefaultUniswapXOrderStatus
	}
	if ux.SortKey == "" {
		ux.SortKey = DefaultUniswapXSortKey
	}
	if ux.Desc == nil {
		desc := true
		ux.Desc = &desc
	}
	if ux.ChainID == 0 {
		ux.ChainID = DefaultChainID
	}

	v := &c.Sources.Velora
	if v.BaseURL == "" {
		v.BaseURL = DefaultVeloraURL
	}
	if v.ChainID == 0 {
		v.ChainID = DefaultChainID
	}
	if v.Taker == "" {
		v.Taker = DefaultVeloraTaker
	}
	if v.Limit == 0 {
		v.Limit = DefaultVeloraLimit
	}

	oi := &c.Sources.OneInch
	if oi.FusionURL == "" {
		oi.FusionURL = DefaultOneInchFusionURL
	}
	if oi.OrderbookURL == "" {
		oi.OrderbookURL = DefaultOneInchOrderbookURL
	}
	if oi.ChainID == 0 {
		oi.ChainID = DefaultChainID
	}
	if oi.Limit == 0 {
		oi.Limit = DefaultOneInchLimit
	}
	if oi.Statuses == "" {
		oi.Statuses = DefaultOneInchStatuses
	}

	// Database defaults
	if c.Database.Port == 0 {
		c.Database.Port = DefaultDBPort
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = DefaultDBSSLMode
	}
	if c.Database.MaxConns == 0 {
		c.Database.MaxConns = DefaultMaxConns
	}
	if c.Database.MinConns == 0 {
		c.Database.MinConns = DefaultMinConns
	}

	// Metrics defaults
	if c.Metrics.Port == 0 {
		c.Metrics.Port = DefaultMetricsPort
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

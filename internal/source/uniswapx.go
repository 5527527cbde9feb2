package source

import (
	"log/slog"
	"net/url"
	"strconv"

	"github.com/rickgao/dex-orders/internal/api"
	"github.com/rickgao/dex-orders/internal/config"
)

const (
	uniswapXDutchPath = "/orders"
	uniswapXLimitPath = "/limit-orders"
	uniswapXField     = "orders"
)

// NewUniswapXDutch returns the adapter for UniswapX Dutch auction orders.
func NewUniswapXDutch(cfg config.UniswapXConfig, logger *slog.Logger) *Adapter {
	return newUniswapX(config.SourceUniswapXDutch, uniswapXDutchPath, cfg, logger)
}

// NewUniswapXLimit returns the adapter for UniswapX limit orders.
func NewUniswapXLimit(cfg config.UniswapXConfig, logger *slog.Logger) *Adapter {
	return newUniswapX(config.SourceUniswapXLimit, uniswapXLimitPath, cfg, logger)
}

func newUniswapX(name, path string, cfg config.UniswapXConfig, logger *slog.Logger) *Adapter {
	client := api.NewClient(name, cfg.BaseURL, "",
		api.WithTimeout(cfg.Timeout),
		api.WithHeader("Content-Type", "application/json"),
		api.WithLogger(loggerOrDefault(logger)),
	)
	return NewAdapter(name, client, path, uniswapXQuery(cfg), uniswapXField, logger)
}

func uniswapXQuery(cfg config.UniswapXConfig) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(cfg.Limit))
	q.Set("orderStatus", cfg.OrderStatus)
	q.Set("sortKey", cfg.SortKey)
	if cfg.Desc != nil {
		q.Set("desc", strconv.FormatBool(*cfg.Desc))
	}
	q.Set("chainId", strconv.Itoa(cfg.ChainID))
	return q
}

func loggerOrDefault(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}

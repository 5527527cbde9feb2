package source

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/rickgao/dex-orders/internal/api"
	"github.com/rickgao/dex-orders/internal/config"
)

const oneInchField = "items"

// NewOneInchFusion returns the adapter for active 1inch Fusion orders.
func NewOneInchFusion(cfg config.OneInchConfig, logger *slog.Logger) *Adapter {
	name := config.SourceOneInchFusion
	client := newOneInchClient(name, cfg.FusionURL, cfg, logger)

	path := fmt.Sprintf("/orders/v2.0/%d/order/active", cfg.ChainID)
	q := url.Values{}
	q.Set("limit", strconv.Itoa(cfg.Limit))

	return NewAdapter(name, client, path, q, oneInchField, logger)
}

// NewOneInchLimit returns the adapter for 1inch Orderbook limit orders
// filtered by cfg.Statuses.
func NewOneInchLimit(cfg config.OneInchConfig, logger *slog.Logger) *Adapter {
	name := config.SourceOneInchLimit
	client := newOneInchClient(name, cfg.OrderbookURL, cfg, logger)

	path := fmt.Sprintf("/v4.1/%d/all", cfg.ChainID)
	q := url.Values{}
	q.Set("limit", strconv.Itoa(cfg.Limit))
	q.Set("statuses", cfg.Statuses)

	return NewAdapter(name, client, path, q, oneInchField, logger)
}

func newOneInchClient(name, baseURL string, cfg config.OneInchConfig, logger *slog.Logger) *api.Client {
	return api.NewClient(name, baseURL, cfg.APIKey,
		api.WithTimeout(cfg.Timeout),
		api.WithHeader("Content-Type", "application/json"),
		api.WithLogger(loggerOrDefault(logger)),
	)
}

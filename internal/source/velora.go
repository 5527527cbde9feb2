package source

import (
	"fmt"
	"log/slog"
	"net/url"
	"strconv"

	"github.com/rickgao/dex-orders/internal/api"
	"github.com/rickgao/dex-orders/internal/config"
)

// NewVelora returns the adapter for Velora (ParaSwap) limit orders open to any taker.
func NewVelora(cfg config.VeloraConfig, logger *slog.Logger) *Adapter {
	name := config.SourceVelora
	client := api.NewClient(name, cfg.BaseURL, "",
		api.WithTimeout(cfg.Timeout),
		api.WithHeader("Content-Type", "application/json"),
		api.WithLogger(loggerOrDefault(logger)),
	)

	path := fmt.Sprintf("/ft/orders/%d/taker/%s", cfg.ChainID, cfg.Taker)
	q := url.Values{}
	q.Set("limit", strconv.Itoa(cfg.Limit))

	return NewAdapter(name, client, path, q, "orders", logger)
}

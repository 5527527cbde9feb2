package source

import (
	"log/slog"

	"github.com/rickgao/dex-orders/internal/config"
)

// FromConfig builds the adapters named in cfg.Enabled, in that order.
func FromConfig(cfg config.SourcesConfig, logger *slog.Logger) []*Adapter {
	adapters := make([]*Adapter, 0, len(cfg.Enabled))
	for _, name := range cfg.Enabled {
		switch name {
		case config.SourceUniswapXDutch:
			adapters = append(adapters, NewUniswapXDutch(cfg.UniswapX, logger))
		case config.SourceUniswapXLimit:
			adapters = append(adapters, NewUniswapXLimit(cfg.UniswapX, logger))
		case config.SourceVelora:
			adapters = append(adapters, NewVelora(cfg.Velora, logger))
		case config.SourceOneInchFusion:
			adapters = append(adapters, NewOneInchFusion(cfg.OneInch, logger))
		case config.SourceOneInchLimit:
			adapters = append(adapters, NewOneInchLimit(cfg.OneInch, logger))
		}
	}
	return adapters
}

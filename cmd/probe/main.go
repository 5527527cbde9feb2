package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/rickgao/dex-orders/internal/config"
	"github.com/rickgao/dex-orders/internal/model"
	"github.com/rickgao/dex-orders/internal/source"
)

// probe fetches every enabled source once and prints what came back.
func main() {
	configPath := flag.String("config", "", "path to config file (defaults apply when empty)")
	verbose := flag.Bool("v", false, "log request details")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var (
		cfg *config.Config
		err error
	)
	if *configPath == "" {
		cfg, err = config.LoadDefault()
	} else {
		cfg, err = config.LoadAndValidate(*configPath)
	}
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, a := range source.FromConfig(cfg.Sources, logger) {
		fmt.Printf("=== %s ===\n", a.Name())

		start := time.Now()
		orders := a.Fetch(ctx)
		fmt.Printf("Fetched %d orders in %s\n", len(orders), time.Since(start).Round(time.Millisecond))
		if len(orders) == 0 {
			continue
		}

		first := orders[0]
		fmt.Printf("First order hash: %s\n", model.OrderHash(first))

		switch a.Name() {
		case config.SourceUniswapXDutch, config.SourceUniswapXLimit:
			o, err := model.DecodeUniswapX(first)
			if err != nil {
				fmt.Printf("  decode failed: %v\n", err)
				continue
			}
			fmt.Printf("  type=%s swapper=%s input=%s outputs=%d deadline=%s\n",
				o.Type, o.Swapper, o.Input.Token, len(o.Outputs), time.Unix(o.Deadline, 0).UTC().Format(time.RFC3339))
		case config.SourceVelora:
			o, err := model.DecodeVelora(first)
			if err != nil {
				fmt.Printf("  decode failed: %v\n", err)
				continue
			}
			fmt.Printf("  maker=%s %s %s -> %s %s state=%s\n",
				o.Maker, o.MakerAmount, o.MakerAsset, o.TakerAmount, o.TakerAsset, o.State)
		}
	}
}

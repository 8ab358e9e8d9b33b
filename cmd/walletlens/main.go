package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/walletlens/walletlens/internal/config"
	"github.com/walletlens/walletlens/internal/explorer"
	"github.com/walletlens/walletlens/internal/memstore"
	"github.com/walletlens/walletlens/internal/naming"
	"github.com/walletlens/walletlens/internal/pipeline"
	"github.com/walletlens/walletlens/internal/price"
	"github.com/walletlens/walletlens/internal/server"
	"github.com/walletlens/walletlens/internal/stats"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to configuration file")
	flag.Parse()

	// Setup structured logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMicro
	log.Logger = zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "walletlens").
		Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}
		log.Warn().Str("path", *configPath).Msg("Config file not found, using defaults")
		cfg = config.Default()
	}

	if level, err := zerolog.ParseLevel(cfg.General.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}

	log.Info().
		Str("instance_id", cfg.General.InstanceID).
		Str("environment", cfg.General.Environment).
		Int("port", cfg.Server.Port).
		Msg("Configuration loaded")

	collector := stats.NewCollector()

	var names naming.Resolver
	if cfg.Naming.Enabled {
		names = naming.NewHTTPResolver(cfg.Naming.BaseURL, cfg.Naming.Timeout())
	}

	builder := &pipeline.Builder{
		Explorer:     explorer.NewClient(cfg.Explorer),
		Prices:       price.NewResolver(price.NewHTTPSource(cfg.Price), price.NewCache(cfg.Price.CacheTTL()), cfg.Price.FallbackNative),
		Names:        names,
		Memstore:     memstore.NewClient(cfg.Memstore),
		Stats:        collector,
		Ranking:      cfg.Ranking,
		MemoryUserID: cfg.Memstore.UserID,
	}

	srv := server.New(builder, collector, cfg.Server.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigCh
		log.Warn().Str("signal", sig.String()).Msg("Shutdown signal received")
		cancel()
	}()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	if err := srv.Shutdown(); err != nil {
		log.Error().Err(err).Msg("Shutdown error")
	}
	log.Info().Msg("walletlens - Shutdown complete")
}

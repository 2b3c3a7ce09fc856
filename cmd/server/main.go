package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/praxpk/prompt-visualizer/internal/catalog"
	"github.com/praxpk/prompt-visualizer/internal/config"
	"github.com/praxpk/prompt-visualizer/internal/server"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	setupLogging(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg)
	if err != nil {
		if errors.Is(err, catalog.ErrDatasetNotReady) {
			log.Error().Err(err).Str("dataset_path", cfg.DatasetPath).
				Msg("dataset is not readable - refusing to serve")
		}
		return err
	}

	return srv.Run(ctx)
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

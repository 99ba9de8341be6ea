package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/swdsms/incident-api/database"
	"github.com/swdsms/incident-api/internal/api"
	"github.com/swdsms/incident-api/internal/infrastructure/config"
	"github.com/swdsms/incident-api/internal/infrastructure/db/postgres"
	"github.com/swdsms/incident-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	pool, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Database.DSN})
	if err != nil {
		logg.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	if cfg.Database.Migrate {
		if err := database.Migrate(ctx, cfg.Database.DSN); err != nil {
			logg.Fatal().Err(err).Msg("failed to apply migrations")
		}
		logg.Info().Msg("migrations applied")
	}

	e := api.NewRouter(cfg, logg, pool)

	go func() {
		logg.Info().Str("port", cfg.Port).Msg("SWDSMS backend listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	logg.Info().Msg("received interruption signal, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("error during server shutdown")
	}
	logg.Info().Msg("shutdown complete")
}

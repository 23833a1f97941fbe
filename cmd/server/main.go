package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"jobmatch/internal/app"
	"jobmatch/internal/config"
	"jobmatch/internal/database/migration"
	"jobmatch/internal/database/seeder"
	"jobmatch/internal/logging"
	"jobmatch/migrations"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load config")
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	bootstrap, cleanup, err := app.Bootstrap(context.Background(), cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to bootstrap app")
	}
	defer func() {
		if err := cleanup(); err != nil {
			logging.Error().Err(err).Msg("cleanup error")
		}
	}()

	if cfg.Database.RunMigrations {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		err := migration.Runner{FS: migrations.FS}.Run(ctx, bootstrap.Container.DB)
		cancel()
		if err != nil {
			logging.Fatal().Err(err).Msg("migration failed")
		}
		logging.Info().Msg("migrations applied")
	}

	if cfg.Database.RunSeeders {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := seeder.Runner{Seeders: seeder.Defaults()}.Run(ctx, bootstrap.Container.DB)
		cancel()
		if err != nil {
			logging.Fatal().Err(err).Msg("seeding failed")
		}
		logging.Info().Msg("demo data seeded")
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logging.Fatal().Err(err).Msg("invalid HTTP port")
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", addr).Str("env", cfg.App.Environment).Msg("http server listening")
		errCh <- bootstrap.Fiber.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logging.Error().Err(err).Msg("server error")
		}
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := bootstrap.Fiber.ShutdownWithContext(ctx); err != nil {
			logging.Error().Err(err).Msg("shutdown error")
		}
	}
}

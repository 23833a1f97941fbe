// Package main provides the jobmatch command line: schema migration, demo
// seeding and one-off recommendation queries against the configured database.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"jobmatch/internal/app"
	"jobmatch/internal/config"
	"jobmatch/internal/logging"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "recommend",
	Short:         "jobmatch recommendation tooling",
	Long:          "Applies migrations, seeds demo data and prints job or candidate recommendations computed the same way the HTTP API does.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// openContainer loads config, configures logging and connects to the database.
func openContainer(ctx context.Context) (*app.Container, error) {
	cfg, err := config.LoadTooling()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	c, err := app.NewContainer(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}
	return c, nil
}

func printJSON(cmd *cobra.Command, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}

package main

import (
	"fmt"

	"jobmatch/internal/database/seeder"
	"jobmatch/internal/logging"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo users, profiles, jobs and applications",
	Long:  "Inserts a small demo dataset. Ids are derived from names, so running it twice leaves the data unchanged.",
	RunE:  runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

func runSeed(cmd *cobra.Command, _ []string) error {
	c, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(cmd.Context(), c.DB); err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}
	logging.Info().
		Str("alice", seeder.DemoUserID("alice").String()).
		Str("acme_backend_job", seeder.DemoJobID("acme-backend").String()).
		Msg("demo data seeded")
	return nil
}

package main

import (
	"fmt"

	"jobmatch/internal/database/migration"
	"jobmatch/internal/logging"
	"jobmatch/migrations"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply embedded SQL migrations",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	c, err := openContainer(cmd.Context())
	if err != nil {
		return err
	}
	defer func() {
		_ = c.Close()
	}()

	if err := (migration.Runner{FS: migrations.FS}).Run(cmd.Context(), c.DB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logging.Info().Msg("migrations applied")
	return nil
}

package cmd

import (
	"fmt"
	"io/fs"
	"log/slog"

	"github.com/spf13/cobra"

	hostops "github.com/hostops-ai/hostops"
	"github.com/hostops-ai/hostops/internal/config"
	"github.com/hostops-ai/hostops/internal/repository"
)

var migrateCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Apply pending database migrations and exit",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			slog.Error("failed to load config", "error", err)
			return err
		}

		migrationsFS, err := fs.Sub(hostops.MigrationsFS, "migrations")
		if err != nil {
			return fmt.Errorf("load embedded migrations: %w", err)
		}
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			slog.Error("failed to run migrations", "error", err)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

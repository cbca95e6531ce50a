package cli

import (
	"github.com/spf13/cobra"

	"commentsview/internal/infrastructure/database"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
		},
	}
}

// Package cli defines the cobra command tree for the comments tool.
package cli

import (
	"github.com/spf13/cobra"

	"commentsview/internal/config"
	"commentsview/internal/logging"
)

// cfg is loaded once before any subcommand runs.
var cfg *config.Config

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "comments",
		Short:         "Show and manage thread comments",
		Long:          "Load a thread's comments from PostgreSQL and render the comments view as text, HTML or a Discord message.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}
			cfg = loaded
			logging.Setup(cfg.LogDev)
			return nil
		},
	}

	root.AddCommand(
		newShowCmd(),
		newAddCmd(),
		newMigrateCmd(),
		newLocalesCmd(),
	)

	return root
}

// localeOr returns flag when set, else the configured locale.
func localeOr(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Locale
}

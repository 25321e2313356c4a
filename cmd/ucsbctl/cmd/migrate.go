package cmd

import (
	"log/slog"

	"ucsbapi/internal/infra/persistence"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the tables of every resource",
	RunE: func(cmd *cobra.Command, _ []string) error {
		env, err := openEnvironment()
		if err != nil {
			return err
		}
		defer env.close()

		if err := persistence.Migrate(cmd.Context(), env.db); err != nil {
			return err
		}

		env.logger.Info("Database schema migrated", slog.String("driver", env.cfg.Database.Driver))

		return nil
	},
}

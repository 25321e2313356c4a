// Package cmd implements the ucsbctl maintenance commands.
package cmd

import (
	"context"
	"log/slog"
	"os"

	"ucsbapi/config"
	logs "ucsbapi/internal/infra/log"
	"ucsbapi/internal/infra/persistence"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:           "ucsbctl",
	Short:         "Maintenance commands for the UCSB API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("ucsbctl failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd, tokenCmd)
}

// environment is what every subcommand needs: config, a stderr logger and an open database.
type environment struct {
	cfg    *config.Config
	logger *slog.Logger
	db     *gorm.DB
}

func openEnvironment() (*environment, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, err
	}

	logger, err := logs.NewWithWriter(cfg, os.Stderr)
	if err != nil {
		return nil, err
	}

	db, err := persistence.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &environment{cfg: cfg, logger: logger, db: db}, nil
}

func (env *environment) close() {
	if sqlDB, err := env.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/guibecker772/advisor-control/pkg/database"
	"github.com/spf13/cobra"
)

var migrateSteps int

var migrateCMD = &cobra.Command{
	Use:       "migrate [up|down]",
	Short:     "Apply or roll back database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		direction := database.MigrateUp
		if len(args) == 1 {
			direction = database.MigrationDirection(args[0])
		}
		if direction == database.MigrateDown && migrateSteps <= 0 {
			return fmt.Errorf("migrate down needs --steps")
		}

		logger.Info("Running database migrations...",
			slog.String("direction", string(direction)),
			slog.String("source", cfg.MigrationsPath))
		return database.Migrate(cfg.DatabaseURL, cfg.MigrationsPath, direction, migrateSteps)
	},
}

func init() {
	migrateCMD.Flags().IntVar(&migrateSteps, "steps", 0, "number of migrations to apply (0 = all, required for down)")
}

package main

import (
	"log/slog"
	"os"

	"github.com/guibecker772/advisor-control/internal/platform/config"
	"github.com/spf13/cobra"
)

var rootCMD = &cobra.Command{
	Use:   "advisor_backend",
	Short: "Advisor Control backend",
	Long: `HTTP API behind the advisor CRM. Serves clients, prospects, the
captação ledger and offer reservations, and manages its database schema.`,
	SilenceUsage: true,
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := rootCMD.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCMD.AddCommand(serveCMD, migrateCMD, tokenCMD)
}

// setup loads the config and installs the JSON logger at the configured level.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)
	return cfg, logger, nil
}

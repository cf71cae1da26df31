package main

import (
	"fmt"

	"github.com/prepmimo/backend/internal/config"
	"github.com/prepmimo/backend/internal/logger"
	"github.com/prepmimo/backend/internal/metrics"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prepmimo",
		Short: "PrepMimo interview feedback API",
		Long: `PrepMimo serves the mock-interview API: question generation,
AI feedback on finished transcripts, and read access to stored results.

Running without a subcommand starts the HTTP server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logConfig := config.LoadLogConfig()
			if err := logger.Init(logConfig.Level, logConfig.Format); err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			metrics.Init()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newMigrateCommand())

	return cmd
}

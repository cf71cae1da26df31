package main

import (
	"fmt"

	"github.com/prepmimo/backend/internal/config"
	"github.com/prepmimo/backend/internal/database"
	"github.com/prepmimo/backend/internal/logger"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the users, interview and feedback tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := database.Connect(config.LoadDBConfig(), config.LoadAppConfig().IsProduction())
			if err != nil {
				return err
			}
			if err := database.Migrate(db); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			logger.Info("migration complete")
			return nil
		},
	}
}

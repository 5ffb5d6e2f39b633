package main

import (
	"context"

	"storyhub/config"
	"storyhub/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long:  `Create or update the users, user_authentications, blogs and comments tables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithDB(cmd.Context(), func(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}
				success("Schema is up to date")

				return nil
			})
		},
	}
}

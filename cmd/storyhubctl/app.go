package main

import (
	"context"

	"storyhub/config"
	"storyhub/internal/domain/lifecycle"
	"storyhub/internal/errors"
	logs "storyhub/internal/infra/log"
	"storyhub/internal/infra/persistence/postgres"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// runWithDB starts the config, logger and database providers the server uses,
// runs fn and stops them again.
func runWithDB(ctx context.Context, fn func(ctx context.Context, cfg *config.Config, db *gorm.DB) error) error {
	var (
		cfg *config.Config
		db  *gorm.DB
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
		),
		fx.Populate(&cfg, &db),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to connect to database")
	}

	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()
		_ = app.Stop(stopCtx)
	}()

	return fn(ctx, cfg, db)
}

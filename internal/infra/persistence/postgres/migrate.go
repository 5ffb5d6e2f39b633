package postgres

import (
	"context"

	"storyhub/internal/errors"
	"storyhub/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the users, user_authentications, blogs and comments tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}

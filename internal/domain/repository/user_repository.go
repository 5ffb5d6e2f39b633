// Package repository declares the persistence ports for users, credentials,
// blogs and comments. Implementations live under internal/infra/persistence.
package repository

import (
	"context"
	"errors"

	"storyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned by lookups that match no account.
var ErrUserNotFound = errors.New("user not found")

// UserRepository stores account profiles. Emails are expected lower-cased and trimmed.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create fails with ErrUserAlreadyExists when the email is taken.
	Create(ctx context.Context, user *entity.User) error

	// Update writes full name, username, bio and profile picture.
	Update(ctx context.Context, user *entity.User) error
}

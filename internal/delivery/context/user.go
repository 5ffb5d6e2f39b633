package context

import (
	"context"

	"storyhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the key for storing the authenticated user.
const KeyUser ContextKey = "user"

// SetUser stores the authenticated user in echo.Context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
}

// GetUser returns the authenticated user stored by the auth middleware.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

// WithUser returns a new context with the authenticated user.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}

// GetUserFromContext extracts the authenticated user from context.Context.
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(KeyUser).(*entity.User)

	return user, ok && user != nil
}

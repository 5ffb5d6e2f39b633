package middleware

import (
	"log/slog"

	"storyhub/config"
	deliverycontext "storyhub/internal/delivery/context"
	"storyhub/internal/errors"
	"storyhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves the session cookie into the authenticated user.
type AuthMiddleware struct {
	authUC     usecase.AuthUsecase
	cookieName string
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC, cookieName: cfg.CookieName()}
}

// Authenticate rejects requests without a valid session cookie. On success the
// user is available through deliverycontext.GetUser and the request-scoped
// logger carries user_id.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		var token string
		if cookie, err := c.Cookie(m.cookieName); err == nil {
			token = cookie.Value
		}

		ctx := c.Request().Context()
		user, err := m.authUC.Authenticate(ctx, token)
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetUser(c, user)

		ctx = deliverycontext.WithUser(ctx, user)
		if logger := deliverycontext.GetLogger(ctx); logger != nil {
			ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", user.ID.String())))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

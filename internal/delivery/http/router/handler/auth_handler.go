// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storyhub/config"
	deliverycontext "storyhub/internal/delivery/context"
	"storyhub/internal/delivery/http/response"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/errors"
	"storyhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler holds dependencies for account handlers.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	profileUC usecase.ProfileUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase, profileUC usecase.ProfileUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUC:    authUC,
		profileUC: profileUC,
		cfg:       cfg,
		logger:    logger,
	}
}

// Signup handles account creation and starts a session.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.authUC.Signup(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusCreated, "Account created successfully", h.sessionPayload(output))
}

// Login handles credential checks and starts a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.Token)

	return response.Success(c, http.StatusCreated, "Login successful", h.sessionPayload(output))
}

// Logout clears the session cookie. The token itself stays valid until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.newCookie("", -1, time.Unix(0, 0)))

	return response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Check returns the user behind the session cookie.
func (h *AuthHandler) Check(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return response.Success(c, http.StatusOK, "User is authenticated", response.Payload{"user": user})
}

// UpdateProfile updates the authenticated user's own profile.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	updated, err := h.profileUC.UpdateProfile(c.Request().Context(), user.ID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, "Profile updated successfully", response.Payload{"user": updated})
}

func (h *AuthHandler) sessionPayload(output *usecase.AuthOutput) response.Payload {
	payload := response.Payload{"user": output.User}
	if h.cfg.Auth == nil || h.cfg.Auth.ExposeTokenInBody {
		payload["token"] = output.Token
	}

	return payload
}

func (h *AuthHandler) setSessionCookie(c echo.Context, token string) {
	ttl := h.cfg.TokenTTL()
	c.SetCookie(h.newCookie(token, int(ttl.Seconds()), time.Now().Add(ttl)))
}

func (h *AuthHandler) newCookie(value string, maxAge int, expires time.Time) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cfg.CookieName(),
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cfg.IsProduction() {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	}

	return cookie
}

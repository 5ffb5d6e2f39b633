// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storyhub/internal/delivery/context"
	"storyhub/internal/domain/entity"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/repository"
	"storyhub/internal/domain/service"
	"storyhub/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	authRepo     repository.AuthRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	AuthRepo     repository.AuthRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		authRepo:     params.AuthRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates the user and its email credential in one transaction, then issues a session token.
func (srv *authService) Signup(ctx context.Context, input *usecase.SignupInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	fullName := strings.TrimSpace(input.FullName)
	if email == "" || fullName == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("fullName, email and password are required"))
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Email:    email,
		FullName: fullName,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()
		authRepo := repoFactory.NewAuthRepository()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := userRepo.Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during signup")
		}

		newAuth := &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during signup")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Signup failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	token, err := srv.tokenService.Issue(newUser.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Info("User signed up", slog.String("user_id", newUser.ID.String()))

	return &usecase.AuthOutput{User: newUser, Token: token}, nil
}

// Login checks the email credential and issues a session token.
// Unknown emails and wrong passwords produce the same error.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("email and password are required"))
	}

	authRecord, err := srv.authRepo.FindAuthentication(ctx, entity.ProviderEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			srv.log(ctx).Info("Login with unknown email", slog.String("email", email))

			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Info("Login with wrong password", slog.String("user_id", authRecord.UserID.String()))

		return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
	}

	user, err := srv.userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrInvalidCredentials)
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	token, err := srv.tokenService.Issue(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue session token")
	}

	return &usecase.AuthOutput{User: user, Token: token}, nil
}

// Authenticate resolves the user behind a session token.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	userID, err := srv.tokenService.Verify(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNoLongerExists.WrapMessage(userID.String())
		}

		return nil, errors.Wrap(err, "failed to load authenticated user")
	}

	return user, nil
}

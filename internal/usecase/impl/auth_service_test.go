package impl

import (
	"context"
	"testing"

	"storyhub/internal/domain/entity"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/repository"
	mockRepo "storyhub/internal/mocks/repository"
	mockSvc "storyhub/internal/mocks/service"
	"storyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	userRepo     *mockRepo.MockUserRepository
	authRepo     *mockRepo.MockAuthRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		authRepo:     mockRepo.NewMockAuthRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
	}

	fx.service = NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		AuthRepo:     fx.authRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		Logger:       discardLogger(),
	})

	return fx
}

func (fx authServiceFixtures) expectTx() {
	fx.factory.EXPECT().NewUserRepository().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().NewAuthRepository().Return(fx.authRepo).Maybe()
	runInTx(fx.txManager, fx.factory)
}

func TestAuthService_Signup_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	userID := uuid.New()

	input := &usecase.SignupInput{
		FullName: "  Ada Lovelace ",
		Email:    " Ada@Example.com ",
		Password: "secret1",
	}

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil).Once()
	fx.expectTx()
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderEmail, "ada@example.com").
		Return(nil, repository.ErrAuthNotFound).Once()
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "ada@example.com" && u.FullName == "Ada Lovelace"
		})).
		Run(func(_ context.Context, u *entity.User) { u.ID = userID }).
		Return(nil).Once()
	fx.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.UserID == userID && a.PasswordHash == "hashed" && a.ProviderUserID == "ada@example.com"
		})).
		Return(nil).Once()
	fx.tokenService.EXPECT().Issue(userID).Return("token", nil).Once()

	out, err := fx.service.Signup(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token", out.Token)
	assert.Equal(t, userID, out.User.ID)
	assert.Equal(t, "ada@example.com", out.User.Email)
}

func TestAuthService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil).Once()
	fx.expectTx()
	fx.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderEmail, "ada@example.com").
		Return(&entity.Authentication{UserID: uuid.New()}, nil).Once()

	out, err := fx.service.Signup(ctx, &usecase.SignupInput{
		FullName: "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
	})

	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	out, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Email: "ada@example.com"})

	assert.Nil(t, out)
	requireErrorCode(t, err, domainerrors.ErrValidationFailed.ErrorCode())
}

func TestAuthService_Signup_HashFailure(t *testing.T) {
	fx := createTestAuthService(t)

	fx.hasher.EXPECT().Hash("secret1").Return("", errors.New("boom")).Once()

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{
		FullName: "Ada",
		Email:    "ada@example.com",
		Password: "secret1",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "hashed"}

	tests := []struct {
		name    string
		setup   func(fx authServiceFixtures)
		wantErr error
	}{
		{
			name: "success",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderEmail, "ada@example.com").Return(authRecord, nil).Once()
				fx.hasher.EXPECT().Check("secret1", "hashed").Return(true).Once()
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil).Once()
				fx.tokenService.EXPECT().Issue(userID).Return("token", nil).Once()
			},
		},
		{
			name: "unknown email",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderEmail, "ada@example.com").Return(nil, repository.ErrAuthNotFound).Once()
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wrong password",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderEmail, "ada@example.com").Return(authRecord, nil).Once()
				fx.hasher.EXPECT().Check("secret1", "hashed").Return(false).Once()
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
		{
			name: "orphaned credential",
			setup: func(fx authServiceFixtures) {
				fx.authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderEmail, "ada@example.com").Return(authRecord, nil).Once()
				fx.hasher.EXPECT().Check("secret1", "hashed").Return(true).Once()
				fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound).Once()
			},
			wantErr: domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			out, err := fx.service.Login(context.Background(), &usecase.LoginInput{
				Email:    "ADA@example.com",
				Password: "secret1",
			})

			if tt.wantErr != nil {
				assert.Nil(t, out)
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "token", out.Token)
			assert.Equal(t, userID, out.User.ID)
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("empty token", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Authenticate(context.Background(), "")

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Verify("bad").Return(uuid.Nil, domainerrors.ErrInvalidToken.WrapMessage("parse")).Once()

		_, err := fx.service.Authenticate(context.Background(), "bad")

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
	})

	t.Run("deleted user", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Verify("good").Return(userID, nil).Once()
		fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound).Once()

		_, err := fx.service.Authenticate(context.Background(), "good")

		assert.True(t, errors.Is(err, domainerrors.ErrUserNoLongerExists))
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestAuthService(t)
		fx.tokenService.EXPECT().Verify("good").Return(userID, nil).Once()
		fx.userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil).Once()

		user, err := fx.service.Authenticate(context.Background(), "good")

		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})
}

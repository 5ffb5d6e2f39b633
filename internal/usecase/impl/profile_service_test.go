package impl

import (
	"context"
	"testing"

	"storyhub/internal/domain/entity"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/repository"
	"storyhub/internal/domain/service"
	mockRepo "storyhub/internal/mocks/repository"
	mockSvc "storyhub/internal/mocks/service"
	"storyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestProfileService(t *testing.T) (usecase.ProfileUsecase, *mockRepo.MockUserRepository, *mockSvc.MockMediaStore) {
	userRepo := mockRepo.NewMockUserRepository(t)
	mediaStore := mockSvc.NewMockMediaStore(t)

	svc := NewProfileService(ProfileServiceParams{
		UserRepo:   userRepo,
		MediaStore: mediaStore,
		Logger:     discardLogger(),
	})

	return svc, userRepo, mediaStore
}

func TestProfileService_UpdateProfile_UploadsPicture(t *testing.T) {
	svc, userRepo, mediaStore := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.User{ID: userID, FullName: "Old Name", Email: "a@example.com", Bio: "keep me"}

	userRepo.EXPECT().FindByID(ctx, userID).Return(existing, nil).Once()
	mediaStore.EXPECT().
		Upload(ctx, service.MediaProfilePic, "data:image/png;base64,AAAA").
		Return("http://media.local/profile/x.png", nil).Once()
	userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.FullName == "New Name" && u.ProfilePic == "http://media.local/profile/x.png" && u.Bio == "keep me"
		})).
		Return(nil).Once()
	userRepo.EXPECT().FindByID(ctx, userID).
		Return(&entity.User{ID: userID, FullName: "New Name", ProfilePic: "http://media.local/profile/x.png"}, nil).Once()

	user, err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		FullName:   " New Name ",
		ProfilePic: "data:image/png;base64,AAAA",
	})

	require.NoError(t, err)
	assert.Equal(t, "New Name", user.FullName)
	assert.Equal(t, "http://media.local/profile/x.png", user.ProfilePic)
}

func TestProfileService_UpdateProfile_KeepsHostedPicture(t *testing.T) {
	svc, userRepo, _ := createTestProfileService(t)
	ctx := context.Background()
	userID := uuid.New()

	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, FullName: "Name"}, nil).Once()
	userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ProfilePic == "https://cdn.example.com/me.png" && u.FullName == "Name"
		})).
		Return(nil).Once()
	userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID}, nil).Once()

	_, err := svc.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{ProfilePic: "https://cdn.example.com/me.png"})

	require.NoError(t, err)
}

func TestProfileService_UpdateProfile_UserMissing(t *testing.T) {
	svc, userRepo, _ := createTestProfileService(t)
	userID := uuid.New()

	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrUserNotFound).Once()

	_, err := svc.UpdateProfile(context.Background(), userID, &usecase.UpdateProfileInput{FullName: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile_InvalidImage(t *testing.T) {
	svc, userRepo, mediaStore := createTestProfileService(t)
	userID := uuid.New()

	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(&entity.User{ID: userID}, nil).Once()
	mediaStore.EXPECT().
		Upload(mock.Anything, service.MediaProfilePic, "not-an-image").
		Return("", errors.WithStack(domainerrors.ErrInvalidImage.WithDetails("unsupported content"))).Once()

	_, err := svc.UpdateProfile(context.Background(), userID, &usecase.UpdateProfileInput{ProfilePic: "not-an-image"})

	requireErrorCode(t, err, domainerrors.ErrInvalidImage.ErrorCode())
}

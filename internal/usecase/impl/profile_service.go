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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo   repository.UserRepository
	mediaStore service.MediaStore
	logger     *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	MediaStore service.MediaStore
	Logger     *slog.Logger
}

// NewProfileService creates a new profile service instance
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:   params.UserRepo,
		mediaStore: params.MediaStore,
		logger:     params.Logger,
	}
}

// UpdateProfile applies the non-empty fields of input to the user's own profile.
// A profile picture payload is uploaded first and its URL stored.
func (s *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to load user for profile update")
	}

	if fullName := strings.TrimSpace(input.FullName); fullName != "" {
		user.FullName = fullName
	}
	if username := strings.TrimSpace(input.Username); username != "" {
		user.Username = username
	}
	if bio := strings.TrimSpace(input.Bio); bio != "" {
		user.Bio = bio
	}

	if pic := strings.TrimSpace(input.ProfilePic); isHostedURL(pic) {
		user.ProfilePic = pic
	} else if pic != "" {
		url, err := s.mediaStore.Upload(ctx, service.MediaProfilePic, pic)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload profile picture")
		}
		user.ProfilePic = url
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Profile updated", slog.String("user_id", userID.String()))

	return s.userRepo.FindByID(ctx, userID)
}

package usecase

import (
	"context"

	"storyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
}

// UpdateProfileInput carries the editable profile fields. Empty fields are left unchanged.
type UpdateProfileInput struct {
	FullName string `json:"fullName" validate:"omitempty,max=100"`
	Username string `json:"username" validate:"omitempty,max=100"`
	Bio      string `json:"bio"`
	// ProfilePic is an image payload (data URL or raw base64).
	ProfilePic string `json:"profilePic"`
}

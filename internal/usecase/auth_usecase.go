// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storyhub/internal/domain/entity"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput is returned by signup and login: the account and a freshly issued session token.
type AuthOutput struct {
	User  *entity.User
	Token string
}

// AuthUsecase defines the credential lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Signup(ctx context.Context, input *SignupInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	// Authenticate verifies a session token and loads the user it was issued for.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}

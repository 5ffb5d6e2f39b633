package usecase

import (
	"context"

	"storyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentInput is the body of comment create and update requests.
type CommentInput struct {
	Comment string `json:"comment" validate:"required"`
}

// CommentUsecase defines comment operations. Only a comment's author may change it.
type CommentUsecase interface {
	ListByBlog(ctx context.Context, blogID uuid.UUID) ([]*entity.Comment, error)
	Create(ctx context.Context, userID, blogID uuid.UUID, input *CommentInput) (*entity.Comment, error)
	Update(ctx context.Context, requesterID, id uuid.UUID, input *CommentInput) (*entity.Comment, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error
}

package repository

import (
	"context"
	"errors"

	"storyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCommentNotFound is returned when no comment matches the given ID.
var ErrCommentNotFound = errors.New("comment not found")

// CommentRepository defines persistence for comments. Reads populate Comment.User.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	// ListByBlog returns the comments of a blog, newest first.
	ListByBlog(ctx context.Context, blogID uuid.UUID) ([]*entity.Comment, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByBlog removes every comment of a blog and reports how many were removed.
	DeleteByBlog(ctx context.Context, blogID uuid.UUID) (int64, error)
}

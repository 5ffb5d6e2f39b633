package repository

import (
	"context"
	"errors"

	"storyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrBlogNotFound is returned when no blog matches the given ID.
var ErrBlogNotFound = errors.New("blog not found")

// BlogRepository defines persistence for blogs. Reads populate Blog.Author.
type BlogRepository interface {
	Create(ctx context.Context, blog *entity.Blog) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	// List returns every blog, newest first.
	List(ctx context.Context) ([]*entity.Blog, error)
	// Update persists title, content, tags, cover image and likes. The author is never changed.
	Update(ctx context.Context, blog *entity.Blog) error
	Delete(ctx context.Context, id uuid.UUID) error
}

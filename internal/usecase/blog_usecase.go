package usecase

import (
	"context"

	"storyhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateBlogInput defines the fields accepted when publishing a blog.
type CreateBlogInput struct {
	Title   string         `json:"title" validate:"required"`
	Content string         `json:"content" validate:"required"`
	Tags    entity.TagList `json:"tags"`
	// CoverImage is either an image payload to upload or an already hosted http(s) URL.
	CoverImage string `json:"coverImage"`
	Likes      *int   `json:"likes" validate:"omitempty,min=0"`
}

// UpdateBlogInput defines the fields accepted when editing a blog.
// Title and content are always required; absent tags and likes are left unchanged.
type UpdateBlogInput struct {
	Title      string         `json:"title" validate:"required"`
	Content    string         `json:"content" validate:"required"`
	Tags       entity.TagList `json:"tags"`
	CoverImage string         `json:"coverImage"`
	Likes      *int           `json:"likes" validate:"omitempty,min=0"`
}

// BlogUsecase defines blog operations. Mutations are restricted to the blog's author.
type BlogUsecase interface {
	List(ctx context.Context) ([]*entity.Blog, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Blog, error)
	Create(ctx context.Context, authorID uuid.UUID, input *CreateBlogInput) (*entity.Blog, error)
	Update(ctx context.Context, requesterID, id uuid.UUID, input *UpdateBlogInput) (*entity.Blog, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error
	// ShareQR renders a PNG QR code linking to the blog.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

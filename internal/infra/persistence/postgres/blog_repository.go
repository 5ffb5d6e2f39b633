package postgres

import (
	"context"

	"storyhub/internal/domain/entity"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/repository"
	"storyhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// blogRepository implements the repository.BlogRepository interface.
type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository is the constructor for blogRepository.
func NewBlogRepository(db *gorm.DB) repository.BlogRepository {
	return &blogRepository{
		db: db,
	}
}

// Create persists a new blog. Author is not populated; callers reload when they need it.
func (repo *blogRepository) Create(ctx context.Context, blog *entity.Blog) error {
	blogM := fromBlogDomain(blog)

	if err := repo.db.WithContext(ctx).Omit("Author").Create(blogM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid author reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required blog information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create blog")
	}

	blog.ID = blogM.ID
	blog.CreatedAt = blogM.CreatedAt
	blog.UpdatedAt = blogM.UpdatedAt

	return nil
}

// FindByID retrieves a blog with its author.
func (repo *blogRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	var blogM model.BlogModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Where("id = ?", id).
		First(&blogM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBlogNotFound
		}

		return nil, errors.Wrap(err, "failed to find blog by ID")
	}

	return toBlogDomain(&blogM), nil
}

// List retrieves every blog with its author, newest first.
func (repo *blogRepository) List(ctx context.Context) ([]*entity.Blog, error) {
	var blogModels []*model.BlogModel

	if err := repo.db.WithContext(ctx).
		Preload("Author").
		Order("created_at DESC").
		Find(&blogModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	blogs := make([]*entity.Blog, 0, len(blogModels))
	for _, blogM := range blogModels {
		blogs = append(blogs, toBlogDomain(blogM))
	}

	return blogs, nil
}

// Update writes the editable columns of a blog. author_id is never part of the update.
func (repo *blogRepository) Update(ctx context.Context, blog *entity.Blog) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BlogModel{ID: blog.ID}).
		Select("title", "content", "tags", "cover_image", "likes", "updated_at").
		Updates(&model.BlogModel{
			Title:      blog.Title,
			Content:    blog.Content,
			Tags:       nonNilTags(blog.Tags),
			CoverImage: blog.CoverImage,
			Likes:      blog.Likes,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update blog")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// Delete removes a blog by its ID.
func (repo *blogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.BlogModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete blog")
	}

	if result.RowsAffected == 0 {
		return repository.ErrBlogNotFound
	}

	return nil
}

// --- Mapper Functions ---

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}

	return tags
}

// toBlogDomain converts a GORM BlogModel to a domain Blog entity.
func toBlogDomain(data *model.BlogModel) *entity.Blog {
	if data == nil {
		return nil
	}

	return &entity.Blog{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		Tags:       nonNilTags(data.Tags),
		CoverImage: data.CoverImage,
		Likes:      data.Likes,
		AuthorID:   data.AuthorID,
		Author:     toUserDomain(data.Author).AuthorProfile(),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromBlogDomain converts a domain Blog entity to a GORM BlogModel.
func fromBlogDomain(data *entity.Blog) *model.BlogModel {
	if data == nil {
		return nil
	}

	return &model.BlogModel{
		ID:         data.ID,
		Title:      data.Title,
		Content:    data.Content,
		Tags:       nonNilTags(data.Tags),
		CoverImage: data.CoverImage,
		Likes:      data.Likes,
		AuthorID:   data.AuthorID,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

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

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{
		db: db,
	}
}

// Create persists a new comment.
func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentM := fromCommentDomain(comment)

	if err := repo.db.WithContext(ctx).Omit("Blog", "User").Create(commentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBlogNotFound.WrapMessage("invalid blog or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required comment information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	comment.ID = commentM.ID
	comment.CreatedAt = commentM.CreatedAt
	comment.UpdatedAt = commentM.UpdatedAt

	return nil
}

// FindByID retrieves a comment with its author.
func (repo *commentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var commentM model.CommentModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("id = ?", id).
		First(&commentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCommentNotFound
		}

		return nil, errors.Wrap(err, "failed to find comment by ID")
	}

	return toCommentDomain(&commentM), nil
}

// ListByBlog retrieves the comments of a blog with their authors, newest first.
func (repo *commentRepository) ListByBlog(ctx context.Context, blogID uuid.UUID) ([]*entity.Comment, error) {
	var commentModels []*model.CommentModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("blog_id = ?", blogID).
		Order("created_at DESC").
		Find(&commentModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list comments by blog")
	}

	comments := make([]*entity.Comment, 0, len(commentModels))
	for _, commentM := range commentModels {
		comments = append(comments, toCommentDomain(commentM))
	}

	return comments, nil
}

// UpdateText replaces the text of a comment.
func (repo *commentRepository) UpdateText(ctx context.Context, id uuid.UUID, text string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CommentModel{ID: id}).
		Update("text", text)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update comment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// Delete removes a comment by its ID.
func (repo *commentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CommentModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete comment")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCommentNotFound
	}

	return nil
}

// DeleteByBlog removes every comment attached to a blog.
func (repo *commentRepository) DeleteByBlog(ctx context.Context, blogID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("blog_id = ?", blogID).
		Delete(&model.CommentModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete comments by blog")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toCommentDomain converts a GORM CommentModel to a domain Comment entity.
func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		BlogID:    data.BlogID,
		UserID:    data.UserID,
		Text:      data.Text,
		User:      toUserDomain(data.User).CommenterProfile(),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromCommentDomain converts a domain Comment entity to a GORM CommentModel.
func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	if data == nil {
		return nil
	}

	return &model.CommentModel{
		ID:        data.ID,
		BlogID:    data.BlogID,
		UserID:    data.UserID,
		Text:      data.Text,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storyhub/internal/delivery/context"
	"storyhub/internal/domain/entity"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/policy"
	"storyhub/internal/domain/repository"
	"storyhub/internal/domain/service"
	"storyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// commentService implements the CommentUsecase interface.
type commentService struct {
	blogRepo    repository.BlogRepository
	commentRepo repository.CommentRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for CommentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	BlogRepo    repository.BlogRepository
	CommentRepo repository.CommentRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewCommentService creates a new comment service instance
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		blogRepo:    params.BlogRepo,
		commentRepo: params.CommentRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// ListByBlog returns the comments of a blog, newest first. An unknown blog has no comments.
func (s *commentService) ListByBlog(ctx context.Context, blogID uuid.UUID) ([]*entity.Comment, error) {
	comments, err := s.commentRepo.ListByBlog(ctx, blogID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list comments")
	}

	return comments, nil
}

// Create adds a comment by userID to an existing blog.
func (s *commentService) Create(ctx context.Context, userID, blogID uuid.UUID, input *usecase.CommentInput) (*entity.Comment, error) {
	text, err := normalizeCommentText(input)
	if err != nil {
		return nil, err
	}

	if _, err := s.blogRepo.FindByID(ctx, blogID); err != nil {
		return nil, mapBlogLookupError(err)
	}

	comment := &entity.Comment{
		BlogID: blogID,
		UserID: userID,
		Text:   text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, errors.Wrap(err, "failed to create comment")
	}

	created, err := s.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created comment")
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
	publishActivity(ctx, s.publisher, logger, service.ActivityCommentCreated, created.ID, blogID, userID)

	return created, nil
}

// Update replaces the text of the requester's own comment.
func (s *commentService) Update(ctx context.Context, requesterID, id uuid.UUID, input *usecase.CommentInput) (*entity.Comment, error) {
	text, err := normalizeCommentText(input)
	if err != nil {
		return nil, err
	}

	if _, err := policy.RequireOwner(ctx, requesterID, s.loadComment(id), (*entity.Comment).OwnerID, domainerrors.ErrCommentOwnershipViolation); err != nil {
		return nil, err
	}

	if err := s.commentRepo.UpdateText(ctx, id, text); err != nil {
		return nil, mapCommentLookupError(err)
	}

	updated, err := s.commentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapCommentLookupError(err)
	}

	return updated, nil
}

// Delete removes the requester's own comment.
func (s *commentService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	if _, err := policy.RequireOwner(ctx, requesterID, s.loadComment(id), (*entity.Comment).OwnerID, domainerrors.ErrCommentOwnershipViolation); err != nil {
		return err
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return mapCommentLookupError(err)
	}

	return nil
}

func (s *commentService) loadComment(id uuid.UUID) func(context.Context) (*entity.Comment, error) {
	return func(ctx context.Context) (*entity.Comment, error) {
		comment, err := s.commentRepo.FindByID(ctx, id)
		if err != nil {
			return nil, mapCommentLookupError(err)
		}

		return comment, nil
	}
}

func mapCommentLookupError(err error) error {
	if errors.Is(err, repository.ErrCommentNotFound) {
		return errors.WithStack(domainerrors.ErrCommentNotFound)
	}

	return errors.Wrap(err, "comment operation failed")
}

func normalizeCommentText(input *usecase.CommentInput) (string, error) {
	text := strings.TrimSpace(input.Comment)
	if text == "" {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("comment is required"))
	}

	return text, nil
}

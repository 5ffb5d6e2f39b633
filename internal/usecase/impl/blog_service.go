package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

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

// blogService implements the BlogUsecase interface.
type blogService struct {
	txManager  repository.TransactionManager
	blogRepo   repository.BlogRepository
	mediaStore service.MediaStore
	publisher  service.EventPublisher
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// BlogServiceParams holds dependencies for BlogService, injected by Fx.
type BlogServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	BlogRepo   repository.BlogRepository
	MediaStore service.MediaStore
	Publisher  service.EventPublisher
	QRService  service.QRCodeService
	Logger     *slog.Logger
}

// NewBlogService creates a new blog service instance
func NewBlogService(params BlogServiceParams) usecase.BlogUsecase {
	return &blogService{
		txManager:  params.TxManager,
		blogRepo:   params.BlogRepo,
		mediaStore: params.MediaStore,
		publisher:  params.Publisher,
		qrService:  params.QRService,
		logger:     params.Logger,
	}
}

func (s *blogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// List returns every blog with its author, newest first.
func (s *blogService) List(ctx context.Context) ([]*entity.Blog, error) {
	blogs, err := s.blogRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list blogs")
	}

	return blogs, nil
}

// Get returns a single blog with its author.
func (s *blogService) Get(ctx context.Context, id uuid.UUID) (*entity.Blog, error) {
	blog, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBlogLookupError(err)
	}

	return blog, nil
}

// Create publishes a new blog owned by authorID.
func (s *blogService) Create(ctx context.Context, authorID uuid.UUID, input *usecase.CreateBlogInput) (*entity.Blog, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("content is required"))
	}

	coverImage, err := s.resolveCoverImage(ctx, input.CoverImage)
	if err != nil {
		return nil, err
	}

	blog := &entity.Blog{
		Title:      title,
		Content:    content,
		Tags:       tagsOrEmpty(input.Tags),
		CoverImage: coverImage,
		AuthorID:   authorID,
	}
	if input.Likes != nil {
		blog.Likes = *input.Likes
	}

	if err := s.blogRepo.Create(ctx, blog); err != nil {
		return nil, errors.Wrap(err, "failed to create blog")
	}

	created, err := s.blogRepo.FindByID(ctx, blog.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload created blog")
	}

	s.publish(ctx, service.ActivityBlogCreated, created.ID, created.ID, authorID)

	return created, nil
}

// Update replaces title and content of the requester's own blog.
// Tags, cover image and likes change only when supplied.
func (s *blogService) Update(ctx context.Context, requesterID, id uuid.UUID, input *usecase.UpdateBlogInput) (*entity.Blog, error) {
	title, err := normalizeTitle(input.Title)
	if err != nil {
		return nil, err
	}
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("content is required"))
	}

	blog, err := policy.RequireOwner(ctx, requesterID, s.loadBlog(id), (*entity.Blog).OwnerID, domainerrors.ErrBlogOwnershipViolation)
	if err != nil {
		return nil, err
	}

	blog.Title = title
	blog.Content = content
	if input.Tags != nil {
		blog.Tags = []string(input.Tags)
	}
	if input.Likes != nil {
		blog.Likes = *input.Likes
	}
	if input.CoverImage != "" {
		coverImage, err := s.resolveCoverImage(ctx, input.CoverImage)
		if err != nil {
			return nil, err
		}
		blog.CoverImage = coverImage
	}

	if err := s.blogRepo.Update(ctx, blog); err != nil {
		if errors.Is(err, repository.ErrBlogNotFound) {
			return nil, errors.WithStack(domainerrors.ErrBlogNotFound)
		}

		return nil, errors.Wrap(err, "failed to update blog")
	}

	updated, err := s.blogRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapBlogLookupError(err)
	}

	s.publish(ctx, service.ActivityBlogUpdated, updated.ID, updated.ID, requesterID)

	return updated, nil
}

// Delete removes the requester's own blog together with its comments.
func (s *blogService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	if _, err := policy.RequireOwner(ctx, requesterID, s.loadBlog(id), (*entity.Blog).OwnerID, domainerrors.ErrBlogOwnershipViolation); err != nil {
		return err
	}

	var removedComments int64
	err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		removed, err := repoFactory.NewCommentRepository().DeleteByBlog(ctx, id)
		if err != nil {
			return errors.Wrap(err, "failed to delete blog comments")
		}
		removedComments = removed

		if err := repoFactory.NewBlogRepository().Delete(ctx, id); err != nil {
			if errors.Is(err, repository.ErrBlogNotFound) {
				return errors.WithStack(domainerrors.ErrBlogNotFound)
			}

			return errors.Wrap(err, "failed to delete blog")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute blog deletion")
	}

	s.log(ctx).Info("Blog deleted",
		slog.String("blog_id", id.String()),
		slog.Int64("comments_removed", removedComments),
	)
	s.publish(ctx, service.ActivityBlogDeleted, id, id, requesterID)

	return nil
}

// ShareQR renders a QR code pointing at the blog's public page.
func (s *blogService) ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	if _, err := s.blogRepo.FindByID(ctx, id); err != nil {
		return nil, mapBlogLookupError(err)
	}

	png, err := s.qrService.GenerateBlogShareQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate share QR code")
	}

	return png, nil
}

func (s *blogService) loadBlog(id uuid.UUID) func(context.Context) (*entity.Blog, error) {
	return func(ctx context.Context) (*entity.Blog, error) {
		blog, err := s.blogRepo.FindByID(ctx, id)
		if err != nil {
			return nil, mapBlogLookupError(err)
		}

		return blog, nil
	}
}

// resolveCoverImage keeps hosted URLs as they are and uploads anything else.
func (s *blogService) resolveCoverImage(ctx context.Context, coverImage string) (string, error) {
	coverImage = strings.TrimSpace(coverImage)
	if coverImage == "" || isHostedURL(coverImage) {
		return coverImage, nil
	}

	url, err := s.mediaStore.Upload(ctx, service.MediaBlogCover, coverImage)
	if err != nil {
		return "", errors.Wrap(err, "failed to upload cover image")
	}

	return url, nil
}

// publish sends an activity event. Failures are logged and never fail the request.
func (s *blogService) publish(ctx context.Context, kind service.ActivityType, resourceID, blogID, actorID uuid.UUID) {
	publishActivity(ctx, s.publisher, s.log(ctx), kind, resourceID, blogID, actorID)
}

func publishActivity(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, kind service.ActivityType, resourceID, blogID, actorID uuid.UUID) {
	if publisher == nil {
		return
	}

	event := &service.ActivityEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       kind,
		ResourceID: resourceID.String(),
		BlogID:     blogID.String(),
		ActorID:    actorID.String(),
		OccurredAt: time.Now().UTC(),
	}
	if err := publisher.PublishActivity(ctx, event); err != nil {
		logger.Warn("Failed to publish activity event",
			slog.String("type", string(kind)),
			slog.String("resource_id", event.ResourceID),
			slog.Any("error", err),
		)
	}
}

func mapBlogLookupError(err error) error {
	if errors.Is(err, repository.ErrBlogNotFound) {
		return errors.WithStack(domainerrors.ErrBlogNotFound)
	}

	return errors.Wrap(err, "failed to find blog")
}

func normalizeTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("title is required"))
	}
	if utf8.RuneCountInString(title) > entity.MaxTitleLength {
		return "", errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("title must be at most %d characters", entity.MaxTitleLength)))
	}

	return title, nil
}

func tagsOrEmpty(tags entity.TagList) []string {
	if tags == nil {
		return []string{}
	}

	return []string(tags)
}

func isHostedURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

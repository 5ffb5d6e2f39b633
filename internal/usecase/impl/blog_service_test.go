package impl

import (
	"context"
	"strings"
	"testing"

	"storyhub/internal/domain/entity"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/repository"
	"storyhub/internal/domain/service"
	mockRepo "storyhub/internal/mocks/repository"
	mockSvc "storyhub/internal/mocks/service"
	"storyhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// blogServiceFixtures holds all test dependencies for blog service tests.
type blogServiceFixtures struct {
	service     usecase.BlogUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	blogRepo    *mockRepo.MockBlogRepository
	commentRepo *mockRepo.MockCommentRepository
	mediaStore  *mockSvc.MockMediaStore
	publisher   *mockSvc.MockEventPublisher
	qrService   *mockSvc.MockQRCodeService
}

func createTestBlogService(t *testing.T) blogServiceFixtures {
	fx := blogServiceFixtures{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		blogRepo:    mockRepo.NewMockBlogRepository(t),
		commentRepo: mockRepo.NewMockCommentRepository(t),
		mediaStore:  mockSvc.NewMockMediaStore(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
		qrService:   mockSvc.NewMockQRCodeService(t),
	}

	fx.service = NewBlogService(BlogServiceParams{
		TxManager:  fx.txManager,
		BlogRepo:   fx.blogRepo,
		MediaStore: fx.mediaStore,
		Publisher:  fx.publisher,
		QRService:  fx.qrService,
		Logger:     discardLogger(),
	})

	return fx
}

func (fx blogServiceFixtures) expectActivity(kind service.ActivityType) {
	fx.publisher.EXPECT().
		PublishActivity(mock.Anything, mock.MatchedBy(func(e *service.ActivityEvent) bool {
			return e.Type == kind
		})).
		Return(nil).Once()
}

func TestBlogService_Create_Success(t *testing.T) {
	fx := createTestBlogService(t)
	ctx := context.Background()
	authorID := uuid.New()
	blogID := uuid.New()

	fx.mediaStore.EXPECT().
		Upload(ctx, service.MediaBlogCover, "iVBORw0KGgo=").
		Return("http://media.local/cover/a.png", nil).Once()
	fx.blogRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Blog) bool {
			return b.Title == "Hello" && b.AuthorID == authorID &&
				b.CoverImage == "http://media.local/cover/a.png" &&
				len(b.Tags) == 2 && b.Likes == 0
		})).
		Run(func(_ context.Context, b *entity.Blog) { b.ID = blogID }).
		Return(nil).Once()
	fx.blogRepo.EXPECT().FindByID(ctx, blogID).
		Return(&entity.Blog{ID: blogID, Title: "Hello", AuthorID: authorID}, nil).Once()
	fx.expectActivity(service.ActivityBlogCreated)

	blog, err := fx.service.Create(ctx, authorID, &usecase.CreateBlogInput{
		Title:      "  Hello ",
		Content:    "World",
		Tags:       entity.TagList{"go", "web"},
		CoverImage: "iVBORw0KGgo=",
	})

	require.NoError(t, err)
	assert.Equal(t, blogID, blog.ID)
}

func TestBlogService_Create_HostedCoverAndNoTags(t *testing.T) {
	fx := createTestBlogService(t)
	ctx := context.Background()
	authorID := uuid.New()
	likes := 3

	fx.blogRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(b *entity.Blog) bool {
			return b.CoverImage == "https://img.example.com/c.jpg" && b.Tags != nil && len(b.Tags) == 0 && b.Likes == 3
		})).
		Return(nil).Once()
	fx.blogRepo.EXPECT().FindByID(ctx, mock.Anything).Return(&entity.Blog{AuthorID: authorID}, nil).Once()
	fx.publisher.EXPECT().PublishActivity(mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	_, err := fx.service.Create(ctx, authorID, &usecase.CreateBlogInput{
		Title:      "T",
		Content:    "C",
		CoverImage: "https://img.example.com/c.jpg",
		Likes:      &likes,
	})

	require.NoError(t, err, "publish failures must not fail the write")
}

func TestBlogService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.CreateBlogInput
	}{
		{name: "blank title", input: &usecase.CreateBlogInput{Title: "   ", Content: "c"}},
		{name: "title too long", input: &usecase.CreateBlogInput{Title: strings.Repeat("a", entity.MaxTitleLength+1), Content: "c"}},
		{name: "blank content", input: &usecase.CreateBlogInput{Title: "t", Content: " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestBlogService(t)

			_, err := fx.service.Create(context.Background(), uuid.New(), tt.input)

			requireErrorCode(t, err, domainerrors.ErrValidationFailed.ErrorCode())
		})
	}
}

func TestBlogService_Create_TitleAtLimitMultibyte(t *testing.T) {
	fx := createTestBlogService(t)
	title := strings.Repeat("é", entity.MaxTitleLength)

	fx.blogRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	fx.blogRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(&entity.Blog{Title: title}, nil).Once()
	fx.expectActivity(service.ActivityBlogCreated)

	_, err := fx.service.Create(context.Background(), uuid.New(), &usecase.CreateBlogInput{Title: title, Content: "c"})

	require.NoError(t, err)
}

func TestBlogService_Get_NotFound(t *testing.T) {
	fx := createTestBlogService(t)
	id := uuid.New()

	fx.blogRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrBlogNotFound).Once()

	_, err := fx.service.Get(context.Background(), id)

	assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
}

func TestBlogService_Update(t *testing.T) {
	ownerID := uuid.New()
	blogID := uuid.New()

	t.Run("owner replaces title and content and keeps tags", func(t *testing.T) {
		fx := createTestBlogService(t)
		existing := &entity.Blog{ID: blogID, Title: "Old", Content: "Old", Tags: []string{"keep"}, Likes: 7, AuthorID: ownerID}

		fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(existing, nil).Once()
		fx.blogRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(b *entity.Blog) bool {
				return b.Title == "New" && b.Content == "Body" && len(b.Tags) == 1 && b.Tags[0] == "keep" && b.Likes == 7
			})).
			Return(nil).Once()
		fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).
			Return(&entity.Blog{ID: blogID, Title: "New", AuthorID: ownerID}, nil).Once()
		fx.expectActivity(service.ActivityBlogUpdated)

		blog, err := fx.service.Update(context.Background(), ownerID, blogID, &usecase.UpdateBlogInput{Title: "New", Content: "Body"})

		require.NoError(t, err)
		assert.Equal(t, "New", blog.Title)
	})

	t.Run("other user is forbidden", func(t *testing.T) {
		fx := createTestBlogService(t)

		fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).
			Return(&entity.Blog{ID: blogID, AuthorID: ownerID}, nil).Once()

		_, err := fx.service.Update(context.Background(), uuid.New(), blogID, &usecase.UpdateBlogInput{Title: "New", Content: "Body"})

		assert.True(t, errors.Is(err, domainerrors.ErrBlogOwnershipViolation))
	})

	t.Run("missing blog", func(t *testing.T) {
		fx := createTestBlogService(t)

		fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(nil, repository.ErrBlogNotFound).Once()

		_, err := fx.service.Update(context.Background(), ownerID, blogID, &usecase.UpdateBlogInput{Title: "New", Content: "Body"})

		assert.True(t, errors.Is(err, domainerrors.ErrBlogNotFound))
	})
}

func TestBlogService_Delete_RemovesComments(t *testing.T) {
	fx := createTestBlogService(t)
	ownerID := uuid.New()
	blogID := uuid.New()

	fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).
		Return(&entity.Blog{ID: blogID, AuthorID: ownerID}, nil).Once()
	fx.factory.EXPECT().NewCommentRepository().Return(fx.commentRepo).Once()
	fx.factory.EXPECT().NewBlogRepository().Return(fx.blogRepo).Once()
	runInTx(fx.txManager, fx.factory)
	fx.commentRepo.EXPECT().DeleteByBlog(mock.Anything, blogID).Return(int64(2), nil).Once()
	fx.blogRepo.EXPECT().Delete(mock.Anything, blogID).Return(nil).Once()
	fx.expectActivity(service.ActivityBlogDeleted)

	err := fx.service.Delete(context.Background(), ownerID, blogID)

	require.NoError(t, err)
}

func TestBlogService_Delete_Forbidden(t *testing.T) {
	fx := createTestBlogService(t)
	blogID := uuid.New()

	fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).
		Return(&entity.Blog{ID: blogID, AuthorID: uuid.New()}, nil).Once()

	err := fx.service.Delete(context.Background(), uuid.New(), blogID)

	assert.True(t, errors.Is(err, domainerrors.ErrBlogOwnershipViolation))
}

func TestBlogService_ShareQR(t *testing.T) {
	fx := createTestBlogService(t)
	blogID := uuid.New()

	fx.blogRepo.EXPECT().FindByID(mock.Anything, blogID).Return(&entity.Blog{ID: blogID}, nil).Once()
	fx.qrService.EXPECT().GenerateBlogShareQR(blogID).Return([]byte("png"), nil).Once()

	png, err := fx.service.ShareQR(context.Background(), blogID)

	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

package postgres

import (
	"context"
	"testing"
	"time"

	"storyhub/internal/domain/entity"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/repository"
	"storyhub/internal/errors"
	"storyhub/internal/testutil/sqlitetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func createUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{Email: email, FullName: "Test " + email, Username: "u_" + email[:1]}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	repo := NewUserRepository(db)

	user := &entity.User{Email: "  Ada@Example.com ", FullName: "Ada"}
	require.NoError(t, repo.Create(ctx, user))
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "ada@example.com", user.Email)

	found, err := repo.FindByEmail(ctx, "ADA@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	err = repo.Create(ctx, &entity.User{Email: "ada@example.com", FullName: "Other"})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	found.FullName = "Ada Lovelace"
	found.ProfilePic = "http://media/profile/a.png"
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", reloaded.FullName)
	assert.Equal(t, "http://media/profile/a.png", reloaded.ProfilePic)
	assert.Equal(t, "ada@example.com", reloaded.Email)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Update(ctx, &entity.User{ID: uuid.New(), FullName: "ghost"})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAuthRepository(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	user := createUser(t, db, "auth@example.com")
	repo := NewAuthRepository(db)

	auth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: user.Email,
		PasswordHash:   "hash",
	}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))
	assert.NotEqual(t, uuid.Nil, auth.ID)

	found, err := repo.FindAuthentication(ctx, entity.ProviderEmail, user.Email)
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)

	err = repo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: user.Email,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	_, err = repo.FindAuthentication(ctx, entity.ProviderEmail, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)
}

func TestBlogRepository(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	author := createUser(t, db, "writer@example.com")
	repo := NewBlogRepository(db)

	older := &entity.Blog{
		Title:     "First",
		Content:   "body",
		Tags:      []string{"a", "b", "b"},
		AuthorID:  author.ID,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &entity.Blog{Title: "Second", Content: "body", AuthorID: author.ID}
	require.NoError(t, repo.Create(ctx, older))
	require.NoError(t, repo.Create(ctx, newer))

	found, err := repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "b"}, found.Tags)
	assert.Equal(t, 0, found.Likes)
	require.NotNil(t, found.Author)
	assert.Equal(t, author.ID, found.Author.ID)
	assert.Equal(t, author.Email, found.Author.Email)
	assert.Equal(t, author.FullName, found.Author.FullName)

	blogs, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, blogs, 2)
	assert.Equal(t, newer.ID, blogs[0].ID)
	assert.Equal(t, []string{}, blogs[0].Tags)

	found.Title = "First, edited"
	found.Likes = 3
	found.AuthorID = uuid.New()
	require.NoError(t, repo.Update(ctx, found))

	reloaded, err := repo.FindByID(ctx, older.ID)
	require.NoError(t, err)
	assert.Equal(t, "First, edited", reloaded.Title)
	assert.Equal(t, 3, reloaded.Likes)
	assert.Equal(t, author.ID, reloaded.AuthorID, "author is immutable")

	require.NoError(t, repo.Delete(ctx, older.ID))
	_, err = repo.FindByID(ctx, older.ID)
	assert.ErrorIs(t, err, repository.ErrBlogNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, older.ID), repository.ErrBlogNotFound)
}

func TestCommentRepository(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	author := createUser(t, db, "writer@example.com")
	reader := createUser(t, db, "reader@example.com")

	blog := &entity.Blog{Title: "Post", Content: "body", AuthorID: author.ID}
	require.NoError(t, NewBlogRepository(db).Create(ctx, blog))

	repo := NewCommentRepository(db)
	first := &entity.Comment{BlogID: blog.ID, UserID: reader.ID, Text: "first", CreatedAt: time.Now().Add(-time.Minute)}
	second := &entity.Comment{BlogID: blog.ID, UserID: author.ID, Text: "second"}
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	comments, err := repo.ListByBlog(ctx, blog.ID)
	require.NoError(t, err)
	require.Len(t, comments, 2)
	assert.Equal(t, second.ID, comments[0].ID)
	require.NotNil(t, comments[1].User)
	assert.Equal(t, reader.FullName, comments[1].User.FullName)
	assert.Empty(t, comments[1].User.Email, "commenter profile does not expose email")

	require.NoError(t, repo.UpdateText(ctx, first.ID, "edited"))
	found, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "edited", found.Text)
	assert.Equal(t, reader.ID, found.UserID)

	assert.ErrorIs(t, repo.UpdateText(ctx, uuid.New(), "x"), repository.ErrCommentNotFound)

	require.NoError(t, repo.Delete(ctx, first.ID))
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), repository.ErrCommentNotFound)

	removed, err := repo.DeleteByBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	empty, err := repo.ListByBlog(ctx, blog.ID)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestTransactionManager_RollsBack(t *testing.T) {
	ctx := context.Background()
	db := sqlitetest.Open(t)
	tm := NewTransactionManager(db)

	boom := errors.New("boom")
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.NewUserRepository().Create(ctx, &entity.User{Email: "tx@example.com", FullName: "Tx"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByEmail(ctx, "tx@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewUserRepository().Create(ctx, &entity.User{Email: "tx@example.com", FullName: "Tx"})
	})
	require.NoError(t, err)

	_, err = NewUserRepository(db).FindByEmail(ctx, "tx@example.com")
	assert.NoError(t, err)
}

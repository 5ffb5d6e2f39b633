package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/domain/repository"
	mockRepo "storyhub/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// runInTx makes the transaction manager mock invoke the callback with factory.
func runInTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}

// requireErrorCode asserts err carries a domain error with the given business code.
func requireErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, code, appErr.ErrorCode())
}

package postgres

import (
	"context"

	"storyhub/internal/domain/repository"
	"storyhub/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to a single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewUserRepository creates a new user repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewAuthRepository creates a new auth repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAuthRepository() repository.AuthRepository {
	return NewAuthRepository(f.tx)
}

// NewBlogRepository creates a new blog repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewBlogRepository() repository.BlogRepository {
	return NewBlogRepository(f.tx)
}

// NewCommentRepository creates a new comment repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewCommentRepository() repository.CommentRepository {
	return NewCommentRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so echo's Recover middleware still sees it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Keep the business error as the cause.
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

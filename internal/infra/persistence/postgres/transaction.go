// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"ucsbapi/internal/domain/repository"
	"ucsbapi/internal/errors"

	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

type txContextKey struct{}

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
// dbresolver opens transactions on the primary, so reads inside fn never hit a replica.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	// Nested calls join the outer transaction.
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back if fn panics, then re-panic so echo's Recover middleware can handle it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}

func txFromContext(ctx context.Context) (*gorm.DB, bool) {
	tx, ok := ctx.Value(txContextKey{}).(*gorm.DB)

	return tx, ok && tx != nil
}

// reader returns the transaction bound to ctx, or a replica-routed session.
func reader(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx.WithContext(ctx)
	}

	return db.WithContext(ctx).Clauses(dbresolver.Read)
}

// writer returns the transaction bound to ctx, or a primary-routed session.
func writer(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := txFromContext(ctx); ok {
		return tx.WithContext(ctx)
	}

	return db.WithContext(ctx).Clauses(dbresolver.Write)
}

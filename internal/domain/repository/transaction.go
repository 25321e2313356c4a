package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Repository calls made with the ctx passed to fn join the same transaction.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the delivery and use case layers to group repository calls without depending on GORM.
type TransactionManager interface {
	// Execute runs fn within a database transaction.
	// If fn returns an error, the transaction is rolled back. Otherwise, it's committed.
	// Repositories called with the ctx handed to fn take part in the same transaction.
	Execute(ctx context.Context, fn func(ctx context.Context) error) error
}

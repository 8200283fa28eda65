package memory

import (
	"context"

	"bizdesk/internal/domain/repository"
)

type transactionManager struct{}

// NewTransactionManager returns a manager that runs fn directly. Each repository
// call is atomic on its own; there is no cross-repository rollback in memory.
func NewTransactionManager() repository.TransactionManager {
	return transactionManager{}
}

func (transactionManager) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

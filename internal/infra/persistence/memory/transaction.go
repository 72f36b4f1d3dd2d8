package memory

import (
	"context"

	"github.com/DARSHAN2224/authentication/internal/domain/repository"
)

// TransactionManager satisfies repository.TransactionManager for the
// in-memory store. There is no real transaction to run; the callback simply
// receives a factory bound to the shared repository, whose mutex already
// serializes every operation.
type TransactionManager struct {
	accounts *AccountRepository
}

// NewTransactionManager wraps an in-memory account repository.
func NewTransactionManager(accounts *AccountRepository) *TransactionManager {
	return &TransactionManager{accounts: accounts}
}

// Execute runs fn against a factory backed by the shared in-memory store.
func (tm *TransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(memoryRepositoryFactory{accounts: tm.accounts})
}

type memoryRepositoryFactory struct {
	accounts *AccountRepository
}

func (f memoryRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.accounts
}

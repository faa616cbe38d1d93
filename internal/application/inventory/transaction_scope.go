package inventory

import (
	"context"

	"github.com/chocodealers/backend/internal/domain/inventory"
)

// TransactionScope provides transactional access to the ledger repositories.
// When a function is executed within a transaction scope, all repository
// operations are part of the same database transaction and commit or roll
// back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the ledger repositories
// within a transaction. All repositories returned share the same underlying
// database transaction, so the stock mutation and its audit record land
// together or not at all.
type TransactionalRepositories interface {
	// StockLevelRepo returns the stock level repository scoped to the current transaction
	StockLevelRepo() inventory.StockLevelRepository
	// RecordRepo returns the transaction record repository scoped to the current transaction
	RecordRepo() inventory.TransactionRecordRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing or when transaction support is
// not required.
type NoOpTransactionScope struct {
	stockLevelRepo inventory.StockLevelRepository
	recordRepo     inventory.TransactionRecordRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	stockLevelRepo inventory.StockLevelRepository,
	recordRepo inventory.TransactionRecordRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		stockLevelRepo: stockLevelRepo,
		recordRepo:     recordRepo,
	}
}

// Execute runs the function without a real transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockLevelRepo returns the stock level repository.
func (s *NoOpTransactionScope) StockLevelRepo() inventory.StockLevelRepository {
	return s.stockLevelRepo
}

// RecordRepo returns the transaction record repository.
func (s *NoOpTransactionScope) RecordRepo() inventory.TransactionRecordRepository {
	return s.recordRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)

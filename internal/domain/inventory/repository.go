package inventory

import (
	"context"
	"time"

	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockLevelRepository defines the persistence interface for stock levels
type StockLevelRepository interface {
	// Create persists a new stock level
	Create(ctx context.Context, level *StockLevel) error
	// Save persists changes to an existing stock level
	Save(ctx context.Context, level *StockLevel) error
	// FindByItem retrieves the stock level for an item
	FindByItem(ctx context.Context, itemID uuid.UUID) (*StockLevel, error)
	// FindByItemForUpdate retrieves the stock level for an item holding a
	// row lock until the surrounding transaction completes. Must be called
	// inside a transaction scope.
	FindByItemForUpdate(ctx context.Context, itemID uuid.UUID) (*StockLevel, error)
	// GetOrCreateForUpdate retrieves the stock level for an item, creating
	// an empty one if none exists, and holds a row lock on it
	GetOrCreateForUpdate(ctx context.Context, level *StockLevel) (*StockLevel, error)
	// FindAll retrieves every stock level
	FindAll(ctx context.Context) ([]*StockLevel, error)
	// FindBelowMinimum retrieves stock levels below their minimum threshold
	FindBelowMinimum(ctx context.Context) ([]*StockLevel, error)
}

// RecordQuery narrows a transaction history search
type RecordQuery struct {
	ItemID           *uuid.UUID
	ActorID          *uuid.UUID
	Operation        *OperationKind
	From             *time.Time
	To               *time.Time
	IncludeAdminOnly bool
}

// TransactionRecordRepository defines the persistence interface for the
// append-only transaction history. There is deliberately no update or
// delete.
type TransactionRecordRepository interface {
	// Create persists a new transaction record
	Create(ctx context.Context, record *TransactionRecord) error
	// FindByID retrieves a record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*TransactionRecord, error)
	// Find retrieves records matching the query, newest first
	Find(ctx context.Context, query RecordQuery, filter shared.Filter) (shared.Paginated[*TransactionRecord], error)
}

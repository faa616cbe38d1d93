package catalog

import (
	"context"

	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines the persistence interface for catalog items
type Repository interface {
	// Create persists a new item
	Create(ctx context.Context, item *Item) error
	// Update persists changes to an existing item
	Update(ctx context.Context, item *Item) error
	// FindByID retrieves an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)
	// FindByCode retrieves an item by its unique code
	FindByCode(ctx context.Context, code string) (*Item, error)
	// FindAll retrieves items matching the filter
	FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*Item], error)
	// FindByCategory retrieves all active items in a category
	FindByCategory(ctx context.Context, category Category) ([]*Item, error)
}

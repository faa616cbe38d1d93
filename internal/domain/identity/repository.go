package identity

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for actors
type Repository interface {
	// Create persists a new actor
	Create(ctx context.Context, actor *Actor) error
	// Update persists changes to an existing actor
	Update(ctx context.Context, actor *Actor) error
	// FindByID retrieves an actor by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Actor, error)
	// FindByExternalID retrieves an actor by its platform identifier
	FindByExternalID(ctx context.Context, externalID int64) (*Actor, error)
	// FindAll retrieves every registered actor
	FindAll(ctx context.Context) ([]*Actor, error)
}

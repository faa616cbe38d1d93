package persistence

import (
	"context"
	"errors"

	"github.com/chocodealers/backend/internal/domain/identity"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormActorRepository implements identity.Repository using GORM
type GormActorRepository struct {
	db *gorm.DB
}

// NewGormActorRepository creates a new GormActorRepository
func NewGormActorRepository(db *gorm.DB) *GormActorRepository {
	return &GormActorRepository{db: db}
}

// Create persists a new actor
func (r *GormActorRepository) Create(ctx context.Context, actor *identity.Actor) error {
	return r.db.WithContext(ctx).Create(actor).Error
}

// Update persists changes to an existing actor
func (r *GormActorRepository) Update(ctx context.Context, actor *identity.Actor) error {
	return r.db.WithContext(ctx).Save(actor).Error
}

// FindByID finds an actor by its ID
func (r *GormActorRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Actor, error) {
	var actor identity.Actor
	if err := r.db.WithContext(ctx).First(&actor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &actor, nil
}

// FindByExternalID finds an actor by its platform identifier
func (r *GormActorRepository) FindByExternalID(ctx context.Context, externalID int64) (*identity.Actor, error) {
	var actor identity.Actor
	if err := r.db.WithContext(ctx).First(&actor, "external_id = ?", externalID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &actor, nil
}

// FindAll retrieves every registered actor
func (r *GormActorRepository) FindAll(ctx context.Context) ([]*identity.Actor, error) {
	var actors []*identity.Actor
	if err := r.db.WithContext(ctx).Order("display_name asc").Find(&actors).Error; err != nil {
		return nil, err
	}
	return actors, nil
}

// Ensure GormActorRepository implements identity.Repository
var _ identity.Repository = (*GormActorRepository)(nil)

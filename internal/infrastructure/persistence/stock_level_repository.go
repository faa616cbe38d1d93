package persistence

import (
	"context"
	"errors"

	"github.com/chocodealers/backend/internal/domain/inventory"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStockLevelRepository implements inventory.StockLevelRepository using
// GORM. The ForUpdate variants take a SELECT ... FOR UPDATE row lock so
// concurrent commits against the same item serialize at the database.
type GormStockLevelRepository struct {
	db *gorm.DB
}

// NewGormStockLevelRepository creates a new GormStockLevelRepository
func NewGormStockLevelRepository(db *gorm.DB) *GormStockLevelRepository {
	return &GormStockLevelRepository{db: db}
}

// Create persists a new stock level
func (r *GormStockLevelRepository) Create(ctx context.Context, level *inventory.StockLevel) error {
	return r.db.WithContext(ctx).Create(level).Error
}

// Save persists changes to an existing stock level
func (r *GormStockLevelRepository) Save(ctx context.Context, level *inventory.StockLevel) error {
	return r.db.WithContext(ctx).Save(level).Error
}

// FindByItem finds the stock level for an item
func (r *GormStockLevelRepository) FindByItem(ctx context.Context, itemID uuid.UUID) (*inventory.StockLevel, error) {
	var level inventory.StockLevel
	if err := r.db.WithContext(ctx).First(&level, "item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &level, nil
}

// FindByItemForUpdate finds the stock level for an item holding a row lock
// until the surrounding transaction completes
func (r *GormStockLevelRepository) FindByItemForUpdate(ctx context.Context, itemID uuid.UUID) (*inventory.StockLevel, error) {
	var level inventory.StockLevel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&level, "item_id = ?", itemID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &level, nil
}

// GetOrCreateForUpdate finds the stock level for an item, inserting an empty
// one if none exists, and locks the row. A conflicting concurrent insert is
// harmless, the follow-up locked read returns whichever row won.
func (r *GormStockLevelRepository) GetOrCreateForUpdate(ctx context.Context, level *inventory.StockLevel) (*inventory.StockLevel, error) {
	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "item_id"}},
			DoNothing: true,
		}).
		Create(level).Error; err != nil {
		return nil, err
	}
	return r.FindByItemForUpdate(ctx, level.ItemID)
}

// FindAll retrieves every stock level
func (r *GormStockLevelRepository) FindAll(ctx context.Context) ([]*inventory.StockLevel, error) {
	var levels []*inventory.StockLevel
	if err := r.db.WithContext(ctx).Order("updated_at desc").Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

// FindBelowMinimum retrieves stock levels below their minimum threshold
func (r *GormStockLevelRepository) FindBelowMinimum(ctx context.Context) ([]*inventory.StockLevel, error) {
	var levels []*inventory.StockLevel
	if err := r.db.WithContext(ctx).
		Where("min_threshold > 0 AND quantity < min_threshold").
		Order("quantity asc").
		Find(&levels).Error; err != nil {
		return nil, err
	}
	return levels, nil
}

// Ensure GormStockLevelRepository implements StockLevelRepository
var _ inventory.StockLevelRepository = (*GormStockLevelRepository)(nil)

package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/chocodealers/backend/internal/domain/catalog"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormItemRepository implements catalog.Repository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// Create persists a new item
func (r *GormItemRepository) Create(ctx context.Context, item *catalog.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update persists changes to an existing item
func (r *GormItemRepository) Update(ctx context.Context, item *catalog.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

// FindByID finds an item by its ID
func (r *GormItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).First(&item, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindByCode finds an item by its unique code
func (r *GormItemRepository) FindByCode(ctx context.Context, code string) (*catalog.Item, error) {
	var item catalog.Item
	if err := r.db.WithContext(ctx).First(&item, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// FindAll finds items matching the filter
func (r *GormItemRepository) FindAll(ctx context.Context, filter shared.Filter) (shared.Paginated[*catalog.Item], error) {
	var empty shared.Paginated[*catalog.Item]
	query := r.db.WithContext(ctx).Model(&catalog.Item{})

	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(code) LIKE ?", pattern, pattern)
	}
	if category, ok := filter.Filters["category"].(string); ok && category != "" {
		query = query.Where("category = ?", category)
	}
	if exclude, ok := filter.Filters["exclude_admin_only"].(bool); ok && exclude {
		query = query.Where("category <> ?", catalog.CategoryAdminExpenses)
	}
	query = query.Where("is_active = ?", true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return empty, err
	}

	var items []*catalog.Item
	if err := applyPagination(query, filter).Find(&items).Error; err != nil {
		return empty, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// FindByCategory finds all active items in a category
func (r *GormItemRepository) FindByCategory(ctx context.Context, category catalog.Category) ([]*catalog.Item, error) {
	var items []*catalog.Item
	if err := r.db.WithContext(ctx).
		Where("category = ? AND is_active = ?", category, true).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// applyPagination applies ordering and paging from a filter
func applyPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.OrderBy != "" {
		dir := "asc"
		if strings.EqualFold(filter.OrderDir, "desc") {
			dir = "desc"
		}
		query = query.Order(filter.OrderBy + " " + dir)
	}
	if filter.PageSize > 0 {
		offset := 0
		if filter.Page > 1 {
			offset = (filter.Page - 1) * filter.PageSize
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	return query
}

// Ensure GormItemRepository implements catalog.Repository
var _ catalog.Repository = (*GormItemRepository)(nil)

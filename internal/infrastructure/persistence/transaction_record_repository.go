package persistence

import (
	"context"
	"errors"

	"github.com/chocodealers/backend/internal/domain/inventory"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTransactionRecordRepository implements the append-only transaction
// history using GORM. There is deliberately no update or delete.
type GormTransactionRecordRepository struct {
	db *gorm.DB
}

// NewGormTransactionRecordRepository creates a new GormTransactionRecordRepository
func NewGormTransactionRecordRepository(db *gorm.DB) *GormTransactionRecordRepository {
	return &GormTransactionRecordRepository{db: db}
}

// Create persists a new transaction record
func (r *GormTransactionRecordRepository) Create(ctx context.Context, record *inventory.TransactionRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// FindByID finds a record by its ID
func (r *GormTransactionRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.TransactionRecord, error) {
	var record inventory.TransactionRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Find retrieves records matching the query, newest first
func (r *GormTransactionRecordRepository) Find(ctx context.Context, query inventory.RecordQuery, filter shared.Filter) (shared.Paginated[*inventory.TransactionRecord], error) {
	var empty shared.Paginated[*inventory.TransactionRecord]
	q := r.db.WithContext(ctx).Model(&inventory.TransactionRecord{})

	if query.ItemID != nil {
		q = q.Where("item_id = ?", *query.ItemID)
	}
	if query.ActorID != nil {
		q = q.Where("actor_id = ?", *query.ActorID)
	}
	if query.Operation != nil {
		q = q.Where("operation = ?", *query.Operation)
	}
	if query.From != nil {
		q = q.Where("transaction_date >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("transaction_date <= ?", *query.To)
	}
	if !query.IncludeAdminOnly {
		q = q.Where("is_admin_only = ?", false)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return empty, err
	}

	var records []*inventory.TransactionRecord
	if err := applyPagination(q.Order("transaction_date desc"), shared.Filter{
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}).Find(&records).Error; err != nil {
		return empty, err
	}
	return shared.NewPaginated(records, total, filter.Page, filter.PageSize), nil
}

// Ensure GormTransactionRecordRepository implements TransactionRecordRepository
var _ inventory.TransactionRecordRepository = (*GormTransactionRecordRepository)(nil)

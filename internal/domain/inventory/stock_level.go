package inventory

import (
	"time"

	"github.com/chocodealers/backend/internal/domain/measure"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// StockLevel tracks the current quantity of one catalog item. It is the
// aggregate root for ledger operations; the quantity is an integer amount in
// the item's canonical storage unit and can never go below zero.
type StockLevel struct {
	shared.BaseAggregateRoot
	ItemID   uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity int64                 `gorm:"not null;default:0;check:quantity >= 0"`
	Unit     measure.CanonicalUnit `gorm:"type:varchar(10);not null;default:'pcs'"`
	// MinThreshold triggers a low stock alert when quantity falls below it,
	// zero disables the alert
	MinThreshold int64 `gorm:"not null;default:0"`
	// MaxThreshold is informational, zero means unset
	MaxThreshold int64 `gorm:"not null;default:0"`
	// LastCountedAt is when a correction last fixed the quantity
	LastCountedAt *time.Time `gorm:"type:timestamptz"`
}

// TableName returns the table name for GORM
func (StockLevel) TableName() string {
	return "stock_levels"
}

// NewStockLevel creates an empty stock level for an item
func NewStockLevel(itemID uuid.UUID, unit measure.CanonicalUnit) (*StockLevel, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if unit != measure.UnitGrams && unit != measure.UnitPieces {
		return nil, shared.NewDomainError("INVALID_UNIT", "Canonical unit must be grams or pieces")
	}

	return &StockLevel{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemID:            itemID,
		Quantity:          0,
		Unit:              unit,
	}, nil
}

// Add increases the stock by a positive canonical amount
func (s *StockLevel) Add(amount int64) error {
	if amount <= 0 {
		return shared.NewDomainError("NON_POSITIVE_QUANTITY", "Quantity must be positive")
	}

	before := s.Quantity
	s.Quantity += amount
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStockChangedEvent(s, OperationAdd, before))
	return nil
}

// Consume decreases the stock by a positive canonical amount. The operation
// fails atomically when the amount exceeds the available stock.
func (s *StockLevel) Consume(amount int64) error {
	if amount <= 0 {
		return shared.NewDomainError("NON_POSITIVE_QUANTITY", "Quantity must be positive")
	}
	if amount > s.Quantity {
		return &InsufficientStockError{Requested: amount, Available: s.Quantity}
	}

	before := s.Quantity
	s.Quantity -= amount
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	s.AddDomainEvent(NewStockChangedEvent(s, OperationConsume, before))
	if s.Quantity == 0 {
		s.AddDomainEvent(NewStockDepletedEvent(s))
	}
	s.checkThreshold()
	return nil
}

// Correct overwrites the stock with a counted amount. Unlike Add and
// Consume the amount is absolute, zero is allowed.
func (s *StockLevel) Correct(amount int64) error {
	if amount < 0 {
		return shared.NewDomainError("NON_POSITIVE_QUANTITY", "Counted quantity cannot be negative")
	}

	before := s.Quantity
	now := time.Now()
	s.Quantity = amount
	s.LastCountedAt = &now
	s.UpdatedAt = now
	s.IncrementVersion()

	s.AddDomainEvent(NewStockChangedEvent(s, OperationCorrection, before))
	s.checkThreshold()
	return nil
}

// SetThresholds sets the alert thresholds
func (s *StockLevel) SetThresholds(min, max int64) error {
	if min < 0 || max < 0 {
		return shared.NewDomainError("INVALID_THRESHOLD", "Thresholds cannot be negative")
	}
	if max > 0 && min > max {
		return shared.NewDomainError("INVALID_THRESHOLD", "Minimum threshold cannot exceed maximum")
	}

	s.MinThreshold = min
	s.MaxThreshold = max
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// IsBelowMinimum returns true if the quantity is below the minimum threshold
func (s *StockLevel) IsBelowMinimum() bool {
	return s.MinThreshold > 0 && s.Quantity < s.MinThreshold
}

func (s *StockLevel) checkThreshold() {
	if s.IsBelowMinimum() {
		s.AddDomainEvent(NewStockBelowThresholdEvent(s))
	}
}

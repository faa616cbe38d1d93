package inventory

import (
	"time"

	"github.com/chocodealers/backend/internal/domain/measure"
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionRecord is an immutable audit record of one committed ledger
// operation. Item and actor attributes are denormalized at commit time so
// the history survives later catalog or staff changes. Once created, records
// are never modified, mistakes are fixed with correction operations.
type TransactionRecord struct {
	shared.BaseEntity
	ItemID       uuid.UUID     `gorm:"type:uuid;not null;index:idx_tx_record_item"`
	ItemName     string        `gorm:"type:varchar(200);not null"`
	ItemCategory string        `gorm:"type:varchar(50);not null;index:idx_tx_record_category"`
	ActorID      uuid.UUID     `gorm:"type:uuid;not null;index:idx_tx_record_actor"`
	ActorName    string        `gorm:"type:varchar(100);not null"`
	Operation    OperationKind `gorm:"type:varchar(20);not null;index:idx_tx_record_op"`
	// OriginalValue and OriginalUnit capture the quantity exactly as entered
	OriginalValue decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	OriginalUnit  string          `gorm:"type:varchar(50);not null"`
	// Canonical is the converted amount in the item's storage unit
	Canonical     int64                 `gorm:"not null"`
	CanonicalUnit measure.CanonicalUnit `gorm:"type:varchar(10);not null"`
	Display       string                `gorm:"type:varchar(100);not null"`
	BalanceBefore int64                 `gorm:"not null"`
	BalanceAfter  int64                 `gorm:"not null"`
	Notes         string                `gorm:"type:varchar(255)"`
	// IsAdminOnly mirrors the item's visibility so history queries can
	// filter without joining the catalog
	IsAdminOnly     bool      `gorm:"not null;default:false"`
	TransactionDate time.Time `gorm:"type:timestamptz;not null;index:idx_tx_record_time"`
}

// TableName returns the table name for GORM
func (TransactionRecord) TableName() string {
	return "transaction_records"
}

// NewTransactionRecord creates a new transaction record
func NewTransactionRecord(
	itemID uuid.UUID,
	itemName string,
	itemCategory string,
	actorID uuid.UUID,
	actorName string,
	op OperationKind,
	quantity measure.Quantity,
	balanceBefore int64,
	balanceAfter int64,
) (*TransactionRecord, error) {
	if itemID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item ID cannot be empty")
	}
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_ITEM", "Item name cannot be empty")
	}
	if actorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Actor ID cannot be empty")
	}
	if actorName == "" {
		return nil, shared.NewDomainError("INVALID_ACTOR", "Actor name cannot be empty")
	}
	if !op.IsValid() {
		return nil, shared.NewDomainError("INVALID_OPERATION", "Invalid operation kind")
	}
	if balanceBefore < 0 || balanceAfter < 0 {
		return nil, shared.NewDomainError("INVALID_BALANCE", "Balances cannot be negative")
	}

	return &TransactionRecord{
		BaseEntity:      shared.NewBaseEntity(),
		ItemID:          itemID,
		ItemName:        itemName,
		ItemCategory:    itemCategory,
		ActorID:         actorID,
		ActorName:       actorName,
		Operation:       op,
		OriginalValue:   quantity.OriginalValue,
		OriginalUnit:    quantity.OriginalUnit,
		Canonical:       quantity.Canonical,
		CanonicalUnit:   quantity.Unit,
		Display:         quantity.Display,
		BalanceBefore:   balanceBefore,
		BalanceAfter:    balanceAfter,
		TransactionDate: time.Now(),
	}, nil
}

// WithNotes sets the free-text notes for the record
func (t *TransactionRecord) WithNotes(notes string) *TransactionRecord {
	t.Notes = notes
	return t
}

// WithAdminOnly marks the record as belonging to an admin-only item
func (t *TransactionRecord) WithAdminOnly(adminOnly bool) *TransactionRecord {
	t.IsAdminOnly = adminOnly
	return t
}

// WithTransactionDate sets the transaction date
func (t *TransactionRecord) WithTransactionDate(date time.Time) *TransactionRecord {
	t.TransactionDate = date
	return t
}

// QuantityChange returns the net quantity change recorded
func (t *TransactionRecord) QuantityChange() int64 {
	return t.BalanceAfter - t.BalanceBefore
}

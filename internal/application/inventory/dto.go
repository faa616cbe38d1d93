package inventory

import (
	"time"

	"github.com/chocodealers/backend/internal/domain/inventory"
	"github.com/google/uuid"
)

// CommitCommand describes one ledger operation to commit. Quantity is the
// free-text expression as entered, e.g. "5 kg", "3 pieces" or "2 box".
type CommitCommand struct {
	ItemID    uuid.UUID
	Operation inventory.OperationKind
	Quantity  string
	Notes     string
}

// CommitResult is returned after a successful commit
type CommitResult struct {
	RecordID      uuid.UUID `json:"record_id"`
	ItemID        uuid.UUID `json:"item_id"`
	ItemName      string    `json:"item_name"`
	Operation     string    `json:"operation"`
	Display       string    `json:"display"`
	Canonical     int64     `json:"canonical"`
	CanonicalUnit string    `json:"canonical_unit"`
	BalanceBefore int64     `json:"balance_before"`
	BalanceAfter  int64     `json:"balance_after"`
	StockDisplay  string    `json:"stock_display"`
	// Warning is set when the unit was not recognized and the value was
	// stored unconverted
	Warning string `json:"warning,omitempty"`
}

// PreviewResult shows how a quantity expression would be converted without
// committing anything
type PreviewResult struct {
	ItemID        uuid.UUID `json:"item_id"`
	ItemName      string    `json:"item_name"`
	Canonical     int64     `json:"canonical"`
	CanonicalUnit string    `json:"canonical_unit"`
	Display       string    `json:"display"`
	Recognized    bool      `json:"recognized"`
}

// RecordResponse is the API representation of one audit record
type RecordResponse struct {
	ID            uuid.UUID `json:"id"`
	ItemID        uuid.UUID `json:"item_id"`
	ItemName      string    `json:"item_name"`
	ItemCategory  string    `json:"item_category"`
	ActorID       uuid.UUID `json:"actor_id"`
	ActorName     string    `json:"actor_name"`
	Operation     string    `json:"operation"`
	OriginalValue string    `json:"original_value"`
	OriginalUnit  string    `json:"original_unit"`
	Canonical     int64     `json:"canonical"`
	CanonicalUnit string    `json:"canonical_unit"`
	Display       string    `json:"display"`
	BalanceBefore int64     `json:"balance_before"`
	BalanceAfter  int64     `json:"balance_after"`
	Notes         string    `json:"notes,omitempty"`
	Date          time.Time `json:"date"`
}

// ToRecordResponse maps a transaction record to its API representation
func ToRecordResponse(record *inventory.TransactionRecord) RecordResponse {
	return RecordResponse{
		ID:            record.ID,
		ItemID:        record.ItemID,
		ItemName:      record.ItemName,
		ItemCategory:  record.ItemCategory,
		ActorID:       record.ActorID,
		ActorName:     record.ActorName,
		Operation:     record.Operation.String(),
		OriginalValue: record.OriginalValue.String(),
		OriginalUnit:  record.OriginalUnit,
		Canonical:     record.Canonical,
		CanonicalUnit: record.CanonicalUnit.String(),
		Display:       record.Display,
		BalanceBefore: record.BalanceBefore,
		BalanceAfter:  record.BalanceAfter,
		Notes:         record.Notes,
		Date:          record.TransactionDate,
	}
}

// HistoryQuery narrows a transaction history request
type HistoryQuery struct {
	ItemID    *uuid.UUID
	ActorID   *uuid.UUID
	Operation *inventory.OperationKind
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}

// StockResponse is the API representation of one item's stock level
type StockResponse struct {
	ItemID       uuid.UUID  `json:"item_id"`
	ItemName     string     `json:"item_name"`
	ItemCategory string     `json:"item_category"`
	Quantity     int64      `json:"quantity"`
	Unit         string     `json:"unit"`
	Display      string     `json:"display"`
	MinThreshold int64      `json:"min_threshold,omitempty"`
	BelowMinimum bool       `json:"below_minimum"`
	LastCounted  *time.Time `json:"last_counted,omitempty"`
}

package inventory

import (
	"github.com/chocodealers/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Event types for the inventory domain
const (
	EventTypeStockChanged        = "inventory.stock_changed"
	EventTypeStockBelowThreshold = "inventory.stock_below_threshold"
	EventTypeStockDepleted       = "inventory.stock_depleted"
)

// StockChangedEvent is emitted after every committed ledger operation
type StockChangedEvent struct {
	shared.BaseDomainEvent
	ItemID         uuid.UUID     `json:"item_id"`
	Operation      OperationKind `json:"operation"`
	QuantityBefore int64         `json:"quantity_before"`
	QuantityAfter  int64         `json:"quantity_after"`
}

// NewStockChangedEvent creates a new stock changed event
func NewStockChangedEvent(level *StockLevel, op OperationKind, before int64) *StockChangedEvent {
	return &StockChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockChanged, "StockLevel", level.ID),
		ItemID:          level.ItemID,
		Operation:       op,
		QuantityBefore:  before,
		QuantityAfter:   level.Quantity,
	}
}

// StockBelowThresholdEvent is emitted when stock falls below the minimum
// threshold configured for the item
type StockBelowThresholdEvent struct {
	shared.BaseDomainEvent
	ItemID       uuid.UUID `json:"item_id"`
	Quantity     int64     `json:"quantity"`
	MinThreshold int64     `json:"min_threshold"`
}

// NewStockBelowThresholdEvent creates a new stock below threshold event
func NewStockBelowThresholdEvent(level *StockLevel) *StockBelowThresholdEvent {
	return &StockBelowThresholdEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockBelowThreshold, "StockLevel", level.ID),
		ItemID:          level.ItemID,
		Quantity:        level.Quantity,
		MinThreshold:    level.MinThreshold,
	}
}

// StockDepletedEvent is emitted when stock reaches exactly zero
type StockDepletedEvent struct {
	shared.BaseDomainEvent
	ItemID uuid.UUID `json:"item_id"`
}

// NewStockDepletedEvent creates a new stock depleted event
func NewStockDepletedEvent(level *StockLevel) *StockDepletedEvent {
	return &StockDepletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeStockDepleted, "StockLevel", level.ID),
		ItemID:          level.ItemID,
	}
}

package inventory

import (
	"context"
	"fmt"

	"github.com/chocodealers/backend/internal/domain/inventory"
	"github.com/chocodealers/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LowStockHandler reacts to StockBelowThreshold events and forwards them as
// alerts so someone can reorder before the shelf goes empty
type LowStockHandler struct {
	logger   *zap.Logger
	notifier StockAlertNotifier
}

// StockAlertNotifier is the interface for sending stock alerts.
// Implementations can support different channels (chat message, email, etc.)
type StockAlertNotifier interface {
	// SendAlert sends a stock alert notification
	SendAlert(ctx context.Context, alert StockAlert) error
}

// StockAlert represents a low stock alert
type StockAlert struct {
	ItemID          string `json:"item_id"`
	CurrentQuantity int64  `json:"current_quantity"`
	MinimumQuantity int64  `json:"minimum_quantity"`
	AlertType       string `json:"alert_type"` // "low_stock", "out_of_stock"
}

// NewLowStockHandler creates a new handler for stock below threshold events
func NewLowStockHandler(logger *zap.Logger) *LowStockHandler {
	return &LowStockHandler{
		logger: logger,
	}
}

// WithNotifier sets the notifier for sending alerts
func (h *LowStockHandler) WithNotifier(notifier StockAlertNotifier) *LowStockHandler {
	h.notifier = notifier
	return h
}

// EventTypes returns the event types this handler is interested in
func (h *LowStockHandler) EventTypes() []string {
	return []string{inventory.EventTypeStockBelowThreshold}
}

// Handle processes a StockBelowThresholdEvent
func (h *LowStockHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	thresholdEvent, ok := event.(*inventory.StockBelowThresholdEvent)
	if !ok {
		h.logger.Error("unexpected event type",
			zap.String("expected", inventory.EventTypeStockBelowThreshold),
			zap.String("actual", event.EventType()),
		)
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			inventory.EventTypeStockBelowThreshold, event.EventType())
	}

	h.logger.Warn("stock below threshold detected",
		zap.String("item_id", thresholdEvent.ItemID.String()),
		zap.Int64("current_quantity", thresholdEvent.Quantity),
		zap.Int64("minimum_quantity", thresholdEvent.MinThreshold),
	)

	alertType := "low_stock"
	if thresholdEvent.Quantity == 0 {
		alertType = "out_of_stock"
	}

	if h.notifier != nil {
		alert := StockAlert{
			ItemID:          thresholdEvent.ItemID.String(),
			CurrentQuantity: thresholdEvent.Quantity,
			MinimumQuantity: thresholdEvent.MinThreshold,
			AlertType:       alertType,
		}
		if err := h.notifier.SendAlert(ctx, alert); err != nil {
			// Notification failure shouldn't fail the event handling
			h.logger.Error("failed to send stock alert notification",
				zap.String("item_id", alert.ItemID),
				zap.Error(err),
			)
		}
	}

	return nil
}

// Ensure LowStockHandler implements shared.EventHandler
var _ shared.EventHandler = (*LowStockHandler)(nil)

// LoggingStockAlertNotifier is a simple notifier that logs alerts.
// This is useful for development and testing.
type LoggingStockAlertNotifier struct {
	logger *zap.Logger
}

// NewLoggingStockAlertNotifier creates a new logging notifier
func NewLoggingStockAlertNotifier(logger *zap.Logger) *LoggingStockAlertNotifier {
	return &LoggingStockAlertNotifier{
		logger: logger,
	}
}

// SendAlert logs the stock alert
func (n *LoggingStockAlertNotifier) SendAlert(_ context.Context, alert StockAlert) error {
	n.logger.Warn("STOCK ALERT",
		zap.String("type", alert.AlertType),
		zap.String("item_id", alert.ItemID),
		zap.Int64("current_qty", alert.CurrentQuantity),
		zap.Int64("minimum_qty", alert.MinimumQuantity),
	)
	return nil
}

// Ensure LoggingStockAlertNotifier implements StockAlertNotifier
var _ StockAlertNotifier = (*LoggingStockAlertNotifier)(nil)

package handler

import (
	"time"

	appinv "github.com/chocodealers/backend/internal/application/inventory"
	"github.com/chocodealers/backend/internal/domain/inventory"
	"github.com/chocodealers/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LedgerHandler exposes the transaction ledger over HTTP
type LedgerHandler struct {
	BaseHandler
	service *appinv.LedgerService
}

// NewLedgerHandler creates a new LedgerHandler
func NewLedgerHandler(service *appinv.LedgerService) *LedgerHandler {
	return &LedgerHandler{service: service}
}

// RegisterRoutes registers ledger routes
func (h *LedgerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	ledger := rg.Group("/ledger")
	ledger.POST("/commit", h.Commit)
	ledger.POST("/preview", h.Preview)
	ledger.GET("/records", h.ListRecords)

	stock := rg.Group("/stock")
	stock.GET("", h.StockOverview)
	stock.GET("/low", h.LowStock)
	stock.GET("/:item_id", h.StockForItem)
	stock.PUT("/:item_id/thresholds", h.SetThresholds)
}

type commitRequest struct {
	ItemID    string `json:"item_id" binding:"required,uuid"`
	Operation string `json:"operation" binding:"required,oneof=ADD CONSUME CORRECTION"`
	Quantity  string `json:"quantity" binding:"required"`
	Notes     string `json:"notes"`
}

type previewRequest struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity string `json:"quantity" binding:"required"`
}

type recordsRequest struct {
	ItemID    string `form:"item_id" binding:"omitempty,uuid"`
	ActorID   string `form:"actor_id" binding:"omitempty,uuid"`
	Operation string `form:"operation" binding:"omitempty,oneof=ADD CONSUME CORRECTION"`
	From      string `form:"from"`
	To        string `form:"to"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type thresholdsRequest struct {
	MinThreshold int64 `json:"min_threshold" binding:"min=0"`
	MaxThreshold int64 `json:"max_threshold" binding:"min=0"`
}

// Commit applies one ledger operation
func (h *LedgerHandler) Commit(c *gin.Context) {
	var req commitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	result, err := h.service.Commit(c.Request.Context(), middleware.GetActor(c), appinv.CommitCommand{
		ItemID:    itemID,
		Operation: inventory.OperationKind(req.Operation),
		Quantity:  req.Quantity,
		Notes:     req.Notes,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, result)
}

// Preview converts a quantity expression without committing
func (h *LedgerHandler) Preview(c *gin.Context) {
	var req previewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	result, err := h.service.Preview(c.Request.Context(), middleware.GetActor(c), itemID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// ListRecords retrieves audit records, newest first
func (h *LedgerHandler) ListRecords(c *gin.Context) {
	var req recordsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query: "+err.Error())
		return
	}

	query := appinv.HistoryQuery{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.ItemID != "" {
		id, err := uuid.Parse(req.ItemID)
		if err != nil {
			h.BadRequest(c, "Invalid item ID")
			return
		}
		query.ItemID = &id
	}
	if req.ActorID != "" {
		id, err := uuid.Parse(req.ActorID)
		if err != nil {
			h.BadRequest(c, "Invalid actor ID")
			return
		}
		query.ActorID = &id
	}
	if req.Operation != "" {
		op := inventory.OperationKind(req.Operation)
		query.Operation = &op
	}
	if req.From != "" {
		from, err := parseDateTime(req.From)
		if err != nil {
			h.BadRequest(c, "Invalid from date")
			return
		}
		query.From = &from
	}
	if req.To != "" {
		to, err := parseDateTime(req.To)
		if err != nil {
			h.BadRequest(c, "Invalid to date")
			return
		}
		query.To = &to
	}

	page, err := h.service.History(c.Request.Context(), middleware.GetActor(c), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// StockOverview returns the current stock of every visible item
func (h *LedgerHandler) StockOverview(c *gin.Context) {
	stocks, err := h.service.StockOverview(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stocks)
}

// LowStock returns items currently below their minimum threshold
func (h *LedgerHandler) LowStock(c *gin.Context) {
	stocks, err := h.service.LowStock(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stocks)
}

// StockForItem returns the current stock of one item
func (h *LedgerHandler) StockForItem(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	stock, err := h.service.StockForItem(c.Request.Context(), middleware.GetActor(c), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stock)
}

// SetThresholds updates the alert thresholds for an item
func (h *LedgerHandler) SetThresholds(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req thresholdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	if err := h.service.SetThresholds(c.Request.Context(), middleware.GetActor(c),
		itemID, req.MinThreshold, req.MaxThreshold); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"item_id": itemID, "min_threshold": req.MinThreshold, "max_threshold": req.MaxThreshold})
}

// parseDateTime parses a datetime in RFC3339 or plain date format
func parseDateTime(value string) (time.Time, error) {
	formats := []string{
		time.RFC3339,
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	var lastErr error
	for _, format := range formats {
		t, err := time.Parse(format, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

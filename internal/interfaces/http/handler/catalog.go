package handler

import (
	appcat "github.com/chocodealers/backend/internal/application/catalog"
	"github.com/chocodealers/backend/internal/domain/catalog"
	"github.com/chocodealers/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler exposes the item catalog over HTTP
type CatalogHandler struct {
	BaseHandler
	service *appcat.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(service *appcat.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

// RegisterRoutes registers catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	items := rg.Group("/items")
	items.GET("", h.List)
	items.POST("", h.Create)
	items.GET("/:id", h.Get)

	rg.GET("/categories", h.Categories)
}

type listItemsRequest struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type createItemRequest struct {
	Code            string `json:"code" binding:"required,max=50"`
	Name            string `json:"name" binding:"required,max=200"`
	Category        string `json:"category" binding:"required"`
	PerUnitWeight   int64  `json:"per_unit_weight" binding:"omitempty,min=1"`
	UnitsPerPackage int64  `json:"units_per_package" binding:"omitempty,min=1"`
}

// List retrieves catalog items visible to the caller
func (h *CatalogHandler) List(c *gin.Context) {
	var req listItemsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid query: "+err.Error())
		return
	}

	query := appcat.ListQuery{
		Search:   req.Search,
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Category != "" {
		category := catalog.Category(req.Category)
		if !category.IsValid() {
			h.BadRequest(c, "Unknown category")
			return
		}
		query.Category = &category
	}

	page, err := h.service.List(c.Request.Context(), middleware.GetActor(c), query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Get retrieves one catalog item
func (h *CatalogHandler) Get(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.service.Get(c.Request.Context(), middleware.GetActor(c), itemID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, item)
}

// Create registers a new catalog item
func (h *CatalogHandler) Create(c *gin.Context) {
	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request: "+err.Error())
		return
	}

	item, err := h.service.Create(c.Request.Context(), middleware.GetActor(c), appcat.CreateItemRequest{
		Code:            req.Code,
		Name:            req.Name,
		Category:        req.Category,
		PerUnitWeight:   req.PerUnitWeight,
		UnitsPerPackage: req.UnitsPerPackage,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, item)
}

// Categories returns the categories visible to the caller
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context(), middleware.GetActor(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, categories)
}

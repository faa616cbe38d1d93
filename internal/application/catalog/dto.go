package catalog

import (
	"github.com/chocodealers/backend/internal/domain/catalog"
	"github.com/google/uuid"
)

// ListQuery narrows a catalog listing
type ListQuery struct {
	Category *catalog.Category
	Search   string
	Page     int
	PageSize int
}

// CreateItemRequest describes a new catalog item
type CreateItemRequest struct {
	Code            string `json:"code"`
	Name            string `json:"name"`
	Category        string `json:"category"`
	PerUnitWeight   int64  `json:"per_unit_weight,omitempty"`
	UnitsPerPackage int64  `json:"units_per_package,omitempty"`
}

// ItemResponse is the API representation of one catalog item
type ItemResponse struct {
	ID              uuid.UUID `json:"id"`
	Code            string    `json:"code"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	PerUnitWeight   int64     `json:"per_unit_weight,omitempty"`
	UnitsPerPackage int64     `json:"units_per_package,omitempty"`
	CanonicalUnit   string    `json:"canonical_unit"`
	IsAdminOnly     bool      `json:"is_admin_only"`
	IsActive        bool      `json:"is_active"`
}

// ToItemResponse maps a catalog item to its API representation
func ToItemResponse(item *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:              item.ID,
		Code:            item.Code,
		Name:            item.Name,
		Category:        item.Category.String(),
		PerUnitWeight:   item.PerUnitWeight,
		UnitsPerPackage: item.UnitsPerPackage,
		CanonicalUnit:   item.CanonicalUnit.String(),
		IsAdminOnly:     item.IsAdminOnly(),
		IsActive:        item.IsActive,
	}
}

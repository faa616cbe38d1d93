package catalog

import (
	"strings"
	"time"

	"github.com/chocodealers/backend/internal/domain/measure"
	"github.com/chocodealers/backend/internal/domain/shared"
)

// Item represents a tracked product in the warehouse catalog
// It is the aggregate root for catalog operations
type Item struct {
	shared.BaseAggregateRoot
	Code     string   `gorm:"type:varchar(50);not null;uniqueIndex"`
	Name     string   `gorm:"type:varchar(200);not null"`
	Category Category `gorm:"type:varchar(50);not null;index"`
	// PerUnitWeight is the weight in grams of one discrete piece, zero when unknown
	PerUnitWeight int64 `gorm:"not null;default:0"`
	// UnitsPerPackage is the number of pieces per box or pack, zero when unknown
	UnitsPerPackage int64 `gorm:"not null;default:0"`
	// CanonicalUnit is the unit stock for this item is recorded in
	CanonicalUnit measure.CanonicalUnit `gorm:"type:varchar(10);not null;default:'pcs'"`
	IsActive      bool                  `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new catalog item
func NewItem(code, name string, category Category) (*Item, error) {
	if err := validateItemCode(code); err != nil {
		return nil, err
	}
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Unknown item category")
	}

	return &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              strings.ToUpper(code),
		Name:              name,
		Category:          category,
		CanonicalUnit:     measure.UnitPieces,
		IsActive:          true,
	}, nil
}

// Metadata returns the conversion attributes of the item
func (i *Item) Metadata() measure.ItemMetadata {
	return measure.ItemMetadata{
		PerUnitWeight:   i.PerUnitWeight,
		UnitsPerPackage: i.UnitsPerPackage,
	}
}

// IsAdminOnly returns true if the item belongs to an admin-only category
func (i *Item) IsAdminOnly() bool {
	return i.Category.IsAdminOnly()
}

// SetPerUnitWeight sets the weight in grams of one piece. Items with a known
// per-piece weight are tracked in grams.
func (i *Item) SetPerUnitWeight(grams int64) error {
	if grams < 0 {
		return shared.NewDomainError("INVALID_WEIGHT", "Per-piece weight cannot be negative")
	}
	i.PerUnitWeight = grams
	if grams > 0 {
		i.CanonicalUnit = measure.UnitGrams
	}
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// SetUnitsPerPackage sets the number of pieces in one package
func (i *Item) SetUnitsPerPackage(count int64) error {
	if count < 0 {
		return shared.NewDomainError("INVALID_PACKAGE_SIZE", "Units per package cannot be negative")
	}
	i.UnitsPerPackage = count
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// SetCanonicalUnit overrides the storage unit for the item
func (i *Item) SetCanonicalUnit(unit measure.CanonicalUnit) error {
	if unit != measure.UnitGrams && unit != measure.UnitPieces {
		return shared.NewDomainError("INVALID_UNIT", "Canonical unit must be grams or pieces")
	}
	i.CanonicalUnit = unit
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// Rename updates the item's display name
func (i *Item) Rename(name string) error {
	if err := validateItemName(name); err != nil {
		return err
	}
	i.Name = name
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
	return nil
}

// Deactivate hides the item from regular listings
func (i *Item) Deactivate() {
	i.IsActive = false
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// Activate restores the item to regular listings
func (i *Item) Activate() {
	i.IsActive = true
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

func validateItemCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Item code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Item code cannot exceed 50 characters")
	}
	for _, r := range code {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_' || r == '-') {
			return shared.NewDomainError("INVALID_CODE", "Item code can only contain letters, numbers, underscores, and hyphens")
		}
	}
	return nil
}

func validateItemName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	return nil
}

package persistence

import (
	"github.com/chocodealers/backend/internal/domain/catalog"
	"github.com/chocodealers/backend/internal/domain/identity"
	"github.com/chocodealers/backend/internal/domain/inventory"
	"gorm.io/gorm"
)

// AutoMigrate creates or updates the database schema for all tracked models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalog.Item{},
		&identity.Actor{},
		&inventory.StockLevel{},
		&inventory.TransactionRecord{},
	)
}

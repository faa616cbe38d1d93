package inventory

import (
	"fmt"

	"github.com/chocodealers/backend/internal/domain/shared"
)

// InsufficientStockError is returned when a consumption would drive the
// stock level below zero. It carries the shortfall so callers can tell the
// operator exactly how much is missing.
type InsufficientStockError struct {
	Requested int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock: requested %d, available %d", e.Requested, e.Available)
}

// Shortfall returns how much the request exceeds the available stock
func (e *InsufficientStockError) Shortfall() int64 {
	return e.Requested - e.Available
}

// Is makes errors.Is(err, shared.ErrInsufficientStock) match
func (e *InsufficientStockError) Is(target error) bool {
	return target == shared.ErrInsufficientStock
}

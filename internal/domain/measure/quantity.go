package measure

import (
	"github.com/shopspring/decimal"
)

// ItemMetadata carries the catalog attributes the conversion policy needs.
// PerUnitWeight is the weight in grams of one discrete piece (zero when the
// item has no per-piece weight). UnitsPerPackage is the number of pieces in
// one box or pack (zero when no package breakdown is defined).
type ItemMetadata struct {
	PerUnitWeight   int64
	UnitsPerPackage int64
}

// HasPerUnitWeight returns true if a per-piece weight is defined
func (m ItemMetadata) HasPerUnitWeight() bool {
	return m.PerUnitWeight > 0
}

// HasUnitsPerPackage returns true if a package breakdown is defined
func (m ItemMetadata) HasUnitsPerPackage() bool {
	return m.UnitsPerPackage > 0
}

// Quantity is the result of normalizing a user-entered amount into an item's
// canonical storage unit. It keeps the raw input alongside the canonical
// amount so audit records can show both.
type Quantity struct {
	// Canonical is the integer amount in the canonical storage unit
	Canonical int64
	// Unit is the canonical storage unit the amount is expressed in
	Unit CanonicalUnit
	// Display is the human-readable label, e.g. "5000g (5kg)"
	Display string
	// OriginalValue is the numeric value as entered
	OriginalValue decimal.Decimal
	// OriginalUnit is the unit token as typed
	OriginalUnit string
	// Recognized is false when the unit token was not in any conversion
	// table and the value was stored unconverted
	Recognized bool
}

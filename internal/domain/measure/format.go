package measure

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FormatStock renders a canonical stock quantity for display. Piece-tracked
// items show the raw count. Weight-tracked items show grams, adding a piece
// equivalent when the per-piece weight is known and a kilogram reading for
// amounts of a kilogram or more.
func FormatStock(canonical int64, unit CanonicalUnit, meta ItemMetadata) string {
	if unit == UnitPieces {
		return fmt.Sprintf("%d pieces", canonical)
	}

	if meta.HasPerUnitWeight() {
		pieces := canonical / meta.PerUnitWeight
		return fmt.Sprintf("%dg (%d pieces)", canonical, pieces)
	}

	if canonical >= 1000 {
		if canonical%1000 == 0 {
			return fmt.Sprintf("%dg (%dkg)", canonical, canonical/1000)
		}
		kg := decimal.NewFromInt(canonical).Div(decimal.NewFromInt(1000)).Round(2)
		return fmt.Sprintf("%dg (%skg)", canonical, kg.String())
	}

	return fmt.Sprintf("%dg", canonical)
}

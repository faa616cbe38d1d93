package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatStock(t *testing.T) {
	t.Run("piece tracked", func(t *testing.T) {
		assert.Equal(t, "12 pieces", FormatStock(12, UnitPieces, ItemMetadata{}))
	})

	t.Run("grams below a kilogram", func(t *testing.T) {
		assert.Equal(t, "750g", FormatStock(750, UnitGrams, ItemMetadata{}))
	})

	t.Run("whole kilograms", func(t *testing.T) {
		assert.Equal(t, "5000g (5kg)", FormatStock(5000, UnitGrams, ItemMetadata{}))
	})

	t.Run("fractional kilograms round to two decimals", func(t *testing.T) {
		assert.Equal(t, "2550g (2.55kg)", FormatStock(2550, UnitGrams, ItemMetadata{}))
	})

	t.Run("grams with piece equivalent", func(t *testing.T) {
		assert.Equal(t, "300g (3 pieces)", FormatStock(300, UnitGrams, ItemMetadata{PerUnitWeight: 100}))
	})
}

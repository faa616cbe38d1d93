package catalog

import (
	"testing"

	"github.com/chocodealers/backend/internal/domain/measure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("creates item with defaults", func(t *testing.T) {
		item, err := NewItem("choc-001", "Dark chocolate bar", CategoryBars)
		require.NoError(t, err)
		assert.Equal(t, "CHOC-001", item.Code)
		assert.Equal(t, "Dark chocolate bar", item.Name)
		assert.Equal(t, CategoryBars, item.Category)
		assert.Equal(t, measure.UnitPieces, item.CanonicalUnit)
		assert.True(t, item.IsActive)
		assert.Equal(t, 1, item.Version)
	})

	t.Run("rejects empty code", func(t *testing.T) {
		_, err := NewItem("", "Bar", CategoryBars)
		assert.Error(t, err)
	})

	t.Run("rejects invalid code characters", func(t *testing.T) {
		_, err := NewItem("choc 001", "Bar", CategoryBars)
		assert.Error(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewItem("CHOC-001", "", CategoryBars)
		assert.Error(t, err)
	})

	t.Run("rejects unknown category", func(t *testing.T) {
		_, err := NewItem("CHOC-001", "Bar", Category("stationery"))
		assert.Error(t, err)
	})
}

func TestItem_SetPerUnitWeight(t *testing.T) {
	item, err := NewItem("CHOC-001", "Truffle", CategoryCandies)
	require.NoError(t, err)

	t.Run("positive weight switches item to gram tracking", func(t *testing.T) {
		require.NoError(t, item.SetPerUnitWeight(25))
		assert.Equal(t, int64(25), item.PerUnitWeight)
		assert.Equal(t, measure.UnitGrams, item.CanonicalUnit)
	})

	t.Run("negative weight rejected", func(t *testing.T) {
		assert.Error(t, item.SetPerUnitWeight(-1))
	})
}

func TestItem_Metadata(t *testing.T) {
	item, err := NewItem("CHOC-002", "Pralines box", CategoryGiftSets)
	require.NoError(t, err)
	require.NoError(t, item.SetPerUnitWeight(15))
	require.NoError(t, item.SetUnitsPerPackage(24))

	meta := item.Metadata()
	assert.Equal(t, int64(15), meta.PerUnitWeight)
	assert.Equal(t, int64(24), meta.UnitsPerPackage)
	assert.True(t, meta.HasPerUnitWeight())
	assert.True(t, meta.HasUnitsPerPackage())
}

func TestCategory(t *testing.T) {
	t.Run("admin only category", func(t *testing.T) {
		assert.True(t, CategoryAdminExpenses.IsAdminOnly())
		assert.False(t, CategoryBars.IsAdminOnly())
	})

	t.Run("public categories exclude admin only", func(t *testing.T) {
		public := PublicCategories()
		assert.Len(t, public, len(AllCategories())-1)
		assert.NotContains(t, public, CategoryAdminExpenses)
	})

	t.Run("item inherits admin visibility from category", func(t *testing.T) {
		item, err := NewItem("ADM-001", "Subscription", CategoryAdminExpenses)
		require.NoError(t, err)
		assert.True(t, item.IsAdminOnly())
	})
}

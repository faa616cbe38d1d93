package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/chocodealers/backend/internal/domain/catalog"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogHandler_Create(t *testing.T) {
	t.Run("managers can create items", func(t *testing.T) {
		server := newLedgerServer(t, newTestManager(t))

		w := server.do(http.MethodPost, "/api/v1/items", gin.H{
			"code":            "gift-01",
			"name":            "Gift set small",
			"category":        "gift_sets",
			"per_unit_weight": 400,
		})

		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "GIFT-01", data["code"])
		assert.Equal(t, "g", data["canonical_unit"])
	})

	t.Run("staff cannot create items", func(t *testing.T) {
		server := newLedgerServer(t, newTestStaff(t))

		w := server.do(http.MethodPost, "/api/v1/items", gin.H{
			"code":     "gift-01",
			"name":     "Gift set small",
			"category": "gift_sets",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("duplicate codes conflict", func(t *testing.T) {
		server := newLedgerServer(t, newTestManager(t))
		server.addWeightItem(t)

		w := server.do(http.MethodPost, "/api/v1/items", gin.H{
			"code":     "choc-bar",
			"name":     "Another bar",
			"category": "bars",
		})

		require.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, "ALREADY_EXISTS", resp.Error.Code)
	})

	t.Run("unknown categories are rejected", func(t *testing.T) {
		server := newLedgerServer(t, newTestManager(t))

		w := server.do(http.MethodPost, "/api/v1/items", gin.H{
			"code":     "misc-01",
			"name":     "Misc",
			"category": "toys",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCatalogHandler_List(t *testing.T) {
	newAdminItem := func(t *testing.T, server *ledgerServer) *catalog.Item {
		t.Helper()
		item, err := catalog.NewItem("ADM-01", "Office supplies", catalog.CategoryAdminExpenses)
		require.NoError(t, err)
		require.NoError(t, server.itemRepo.Create(context.Background(), item))
		return item
	}

	t.Run("staff do not see admin-only items", func(t *testing.T) {
		server := newLedgerServer(t, newTestStaff(t))
		server.addWeightItem(t)
		newAdminItem(t, server)

		w := server.do(http.MethodGet, "/api/v1/items", nil)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		resp := decodeResponse(t, w)
		assert.Equal(t, int64(1), resp.Meta.Total)
	})

	t.Run("managers see every item", func(t *testing.T) {
		server := newLedgerServer(t, newTestManager(t))
		server.addWeightItem(t)
		newAdminItem(t, server)

		w := server.do(http.MethodGet, "/api/v1/items", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, int64(2), resp.Meta.Total)
	})

	t.Run("staff cannot fetch an admin-only item directly", func(t *testing.T) {
		server := newLedgerServer(t, newTestStaff(t))
		item := newAdminItem(t, server)

		w := server.do(http.MethodGet, "/api/v1/items/"+item.ID.String(), nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("filters by category", func(t *testing.T) {
		server := newLedgerServer(t, newTestStaff(t))
		server.addWeightItem(t)

		w := server.do(http.MethodGet, "/api/v1/items?category=candies", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.Equal(t, int64(0), resp.Meta.Total)
	})
}

func TestCatalogHandler_Categories(t *testing.T) {
	t.Run("staff see the public categories", func(t *testing.T) {
		server := newLedgerServer(t, newTestStaff(t))

		w := server.do(http.MethodGet, "/api/v1/categories", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		categories := resp.Data.([]any)
		assert.Len(t, categories, len(catalog.PublicCategories()))
		assert.NotContains(t, categories, "admin_expenses")
	})

	t.Run("managers see the admin category too", func(t *testing.T) {
		server := newLedgerServer(t, newTestManager(t))

		w := server.do(http.MethodGet, "/api/v1/categories", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		categories := resp.Data.([]any)
		assert.Contains(t, categories, "admin_expenses")
	})
}

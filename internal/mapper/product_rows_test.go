package mapper

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kral14/mobilsayt/internal/model"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func productRow(productID int, warehouseID *int, qty *decimal.Decimal, categoryID *int) ProductRow {
	row := ProductRow{
		Product:           model.Product{ID: productID, Name: "P"},
		WarehouseID:       warehouseID,
		WarehouseQuantity: qty,
		CategoryIDJoin:    categoryID,
	}
	if warehouseID != nil {
		row.WarehouseProductID = intPtr(productID)
	}
	if categoryID != nil {
		row.CategoryName = strPtr("Drinks")
	}
	return row
}

func TestGroupProductsAccumulatesWarehouseRows(t *testing.T) {
	rows := []ProductRow{
		productRow(1, intPtr(10), decPtr("3.5"), intPtr(7)),
		productRow(1, intPtr(11), decPtr("1"), intPtr(7)),
	}

	grouped := GroupProducts(rows)
	require.Len(t, grouped, 1, "two join rows, one product")
	assert.Len(t, grouped[0].Warehouse, 2)
	assert.Equal(t, 10, grouped[0].Warehouse[0].ID)
	assert.Equal(t, 11, grouped[0].Warehouse[1].ID)

	require.NotNil(t, grouped[0].Category)
	assert.Equal(t, 7, grouped[0].Category.ID)
	assert.Equal(t, "Drinks", grouped[0].Category.Name)
}

func TestGroupProductsPreservesFirstSeenOrder(t *testing.T) {
	rows := []ProductRow{
		productRow(3, intPtr(30), decPtr("1"), nil),
		productRow(1, intPtr(10), decPtr("1"), nil),
		productRow(3, intPtr(31), decPtr("2"), nil),
		productRow(2, nil, nil, nil),
	}

	grouped := GroupProducts(rows)
	require.Len(t, grouped, 3)
	assert.Equal(t, 3, grouped[0].ID)
	assert.Equal(t, 1, grouped[1].ID)
	assert.Equal(t, 2, grouped[2].ID)
	assert.Len(t, grouped[0].Warehouse, 2, "non-adjacent rows still fold into the same product")
}

func TestGroupProductsWithoutJoins(t *testing.T) {
	grouped := GroupProducts([]ProductRow{productRow(5, nil, nil, nil)})
	require.Len(t, grouped, 1)
	assert.NotNil(t, grouped[0].Warehouse, "warehouse list serializes as [], not null")
	assert.Empty(t, grouped[0].Warehouse)
	assert.Nil(t, grouped[0].Category)
}

func TestGroupProductsEmptyInput(t *testing.T) {
	assert.Empty(t, GroupProducts(nil))
}

func TestUTCNormalizesZone(t *testing.T) {
	loc := time.FixedZone("UTC+4", 4*60*60)
	local := time.Date(2025, 6, 1, 16, 0, 0, 0, loc)

	got := UTC(&local)
	require.NotNil(t, got)
	assert.Equal(t, time.UTC, got.Location())
	assert.Equal(t, 12, got.Hour())

	assert.Nil(t, UTC(nil))
}

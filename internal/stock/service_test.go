package stock

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khata-dev/khata/internal/audit"
	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/sqlite"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := sqlite.Open(filepath.Join(t.TempDir(), "khata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db, audit.Nop{})
}

func TestAddAndList(t *testing.T) {
	svc := newTestService(t)

	id, err := svc.Add(model.StockItem{
		ProductName:   "Widget",
		Quantity:      12,
		PurchasePrice: decimal.RequireFromString("9.50"),
		SellingPrice:  decimal.RequireFromString("14.99"),
		Details:       "blue, medium",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget", items[0].ProductName)
	assert.Equal(t, int64(12), items[0].Quantity)
	assert.True(t, items[0].PurchasePrice.Equal(decimal.RequireFromString("9.50")))
	assert.True(t, items[0].SellingPrice.Equal(decimal.RequireFromString("14.99")))
	assert.Equal(t, "blue, medium", items[0].Details)
}

func TestAdd_Validation(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		item model.StockItem
	}{
		{"missing product name", model.StockItem{ProductName: "  "}},
		{"negative quantity", model.StockItem{ProductName: "Widget", Quantity: -1}},
		{"negative purchase price", model.StockItem{
			ProductName:   "Widget",
			PurchasePrice: decimal.RequireFromString("-1"),
		}},
		{"negative selling price", model.StockItem{
			ProductName:  "Widget",
			SellingPrice: decimal.RequireFromString("-0.01"),
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Add(tc.item)
			require.Error(t, err)
			assert.True(t, model.IsValidation(err))
		})
	}

	n, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "rejected items must not be stored")
}

func TestListOrderAndCount(t *testing.T) {
	svc := newTestService(t)

	for _, name := range []string{"Alpha", "Beta", "Gamma"} {
		_, err := svc.Add(model.StockItem{ProductName: name, Quantity: 1})
		require.NoError(t, err)
	}

	items, err := svc.List()
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Alpha", items[0].ProductName)
	assert.Equal(t, "Beta", items[1].ProductName)
	assert.Equal(t, "Gamma", items[2].ProductName)

	n, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

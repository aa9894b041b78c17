package model

import "github.com/shopspring/decimal"

// StockItem is a tracked inventory product.
type StockItem struct {
	ID            int64
	ProductName   string
	Quantity      int64
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
	Details       string
}

// Package stock tracks inventory items. Stock is a flat list alongside
// the ledger; posting stock-related vouchers is up to the caller.
package stock

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/audit"
	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/sqlite"
)

// Service provides stock item operations.
type Service struct {
	db    *sqlite.DB
	trail audit.Trail
}

// NewService creates a Service on top of db.
func NewService(db *sqlite.DB, trail audit.Trail) *Service {
	return &Service{db: db, trail: trail}
}

// Add creates a stock item and returns its id.
func (s *Service) Add(item model.StockItem) (int64, error) {
	if strings.TrimSpace(item.ProductName) == "" {
		return 0, model.ValidationError{Reason: "missing product name"}
	}
	if item.Quantity < 0 {
		return 0, model.ValidationError{Reason: "negative quantity"}
	}
	if item.PurchasePrice.Sign() < 0 || item.SellingPrice.Sign() < 0 {
		return 0, model.ValidationError{Reason: "negative price"}
	}

	var id int64
	err := s.db.WriteTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO stock_items (product_name, quantity, purchase_price, selling_price, details)
			 VALUES (?, ?, ?, ?, ?)`,
			item.ProductName, item.Quantity,
			item.PurchasePrice.String(), item.SellingPrice.String(), item.Details,
		)
		if err != nil {
			return fmt.Errorf("inserting stock item: %w", err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}

	s.trail.Record("Stock Entry",
		fmt.Sprintf("New stock item '%s' added with quantity %d.", item.ProductName, item.Quantity))
	return id, nil
}

// List returns all stock items ordered by id.
func (s *Service) List() ([]model.StockItem, error) {
	rows, err := s.db.SQL().Query(
		`SELECT id, product_name, quantity, purchase_price, selling_price, details
		 FROM stock_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("querying stock: %w", err)
	}
	defer rows.Close()

	var items []model.StockItem
	for rows.Next() {
		var item model.StockItem
		var purchase, selling string
		if err := rows.Scan(&item.ID, &item.ProductName, &item.Quantity, &purchase, &selling, &item.Details); err != nil {
			return nil, fmt.Errorf("scanning stock row: %w", err)
		}
		item.PurchasePrice, err = decimal.NewFromString(purchase)
		if err != nil {
			return nil, fmt.Errorf("parsing purchase price %q: %w", purchase, err)
		}
		item.SellingPrice, err = decimal.NewFromString(selling)
		if err != nil {
			return nil, fmt.Errorf("parsing selling price %q: %w", selling, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Count returns the number of stock items.
func (s *Service) Count() (int64, error) {
	var n int64
	if err := s.db.SQL().QueryRow(`SELECT COUNT(*) FROM stock_items`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting stock: %w", err)
	}
	return n, nil
}

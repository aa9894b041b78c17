package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/model"
)

type stockItemJSON struct {
	ID            int64  `json:"id"`
	ProductName   string `json:"product_name"`
	Quantity      int64  `json:"quantity"`
	PurchasePrice string `json:"purchase_price"`
	SellingPrice  string `json:"selling_price"`
	Details       string `json:"details,omitempty"`
}

type addStockRequest struct {
	ProductName   string `json:"product_name"`
	Quantity      int64  `json:"quantity"`
	PurchasePrice string `json:"purchase_price"`
	SellingPrice  string `json:"selling_price"`
	Details       string `json:"details"`
}

func (s *Server) handleAddStock(w http.ResponseWriter, r *http.Request) {
	var req addStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	purchase, err := parsePrice(req.PurchasePrice)
	if err != nil {
		writeError(w, err)
		return
	}
	selling, err := parsePrice(req.SellingPrice)
	if err != nil {
		writeError(w, err)
		return
	}

	id, err := s.stock.Add(model.StockItem{
		ProductName:   req.ProductName,
		Quantity:      req.Quantity,
		PurchasePrice: purchase,
		SellingPrice:  selling,
		Details:       req.Details,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	s.recordActor(r, fmt.Sprintf("added stock item %d (%s).", id, req.ProductName))
	writeJSON(w, http.StatusCreated, map[string]int64{"id": id})
}

func parsePrice(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, model.ValidationError{Reason: "invalid price"}
	}
	return d, nil
}

func (s *Server) handleListStock(w http.ResponseWriter, r *http.Request) {
	items, err := s.stock.List()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]stockItemJSON, 0, len(items))
	for _, item := range items {
		out = append(out, stockItemJSON{
			ID:            item.ID,
			ProductName:   item.ProductName,
			Quantity:      item.Quantity,
			PurchasePrice: item.PurchasePrice.StringFixed(2),
			SellingPrice:  item.SellingPrice.StringFixed(2),
			Details:       item.Details,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type auditRecordJSON struct {
	ID        int64  `json:"id"`
	Timestamp string `json:"timestamp"`
	Action    string `json:"action"`
	Details   string `json:"details"`
}

func (s *Server) handleAuditLog(w http.ResponseWriter, r *http.Request) {
	records, err := s.auditLog.List()
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]auditRecordJSON, 0, len(records))
	for _, rec := range records {
		out = append(out, auditRecordJSON{
			ID:        rec.ID,
			Timestamp: rec.Timestamp.Format(time.RFC3339),
			Action:    rec.Action,
			Details:   rec.Details,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type dashboardJSON struct {
	TotalAccounts   int64  `json:"total_accounts"`
	TotalVouchers   int64  `json:"total_vouchers"`
	TotalStockItems int64  `json:"total_stock_items"`
	LastVoucher     string `json:"last_voucher,omitempty"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.registry.Count()
	if err != nil {
		writeError(w, err)
		return
	}
	vouchers, err := s.engine.VoucherCount()
	if err != nil {
		writeError(w, err)
		return
	}
	items, err := s.stock.Count()
	if err != nil {
		writeError(w, err)
		return
	}

	resp := dashboardJSON{
		TotalAccounts:   accounts,
		TotalVouchers:   vouchers,
		TotalStockItems: items,
	}
	if last, ok, err := s.engine.LastVoucher(); err != nil {
		writeError(w, err)
		return
	} else if ok {
		resp.LastVoucher = last.Description + " (" + string(last.Kind) + ") on " +
			last.CreatedAt.Format("2006-01-02 15:04:05")
	}
	writeJSON(w, http.StatusOK, resp)
}

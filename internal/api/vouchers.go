package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/khata-dev/khata/internal/id"
	"github.com/khata-dev/khata/internal/ledger"
)

type voucherLineRequest struct {
	AccountID int64  `json:"account_id"`
	Amount    string `json:"amount"`
	Side      string `json:"side"`
}

type submitVoucherRequest struct {
	Description string               `json:"description"`
	Kind        string               `json:"kind"`
	Lines       []voucherLineRequest `json:"lines"`
}

type voucherResponse struct {
	ID          int64  `json:"id"`
	Ref         string `json:"ref"`
	CreatedAt   string `json:"created_at"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
}

func (s *Server) handleSubmitVoucher(w http.ResponseWriter, r *http.Request) {
	var req submitVoucherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	draft := ledger.Draft{Description: req.Description, Kind: req.Kind}
	for _, l := range req.Lines {
		draft.Lines = append(draft.Lines, ledger.DraftLine{
			AccountID: l.AccountID,
			Amount:    l.Amount,
			Side:      l.Side,
		})
	}

	voucher, err := s.engine.Submit(draft)
	if err != nil {
		vouchersRejected.Inc()
		writeError(w, err)
		return
	}

	vouchersPosted.Inc()
	s.recordActor(r, fmt.Sprintf("submitted voucher %s.", id.FormatVoucherRef(voucher.Kind, voucher.ID)))
	writeJSON(w, http.StatusCreated, voucherResponse{
		ID:          voucher.ID,
		Ref:         id.FormatVoucherRef(voucher.Kind, voucher.ID),
		CreatedAt:   voucher.CreatedAt.Format(time.RFC3339),
		Description: voucher.Description,
		Kind:        string(voucher.Kind),
	})
}

type ledgerLineJSON struct {
	LineID    int64  `json:"line_id"`
	VoucherID int64  `json:"voucher_id"`
	Amount    string `json:"amount"`
	Side      string `json:"side"`
}

type ledgerResponse struct {
	AccountID int64            `json:"account_id"`
	Lines     []ledgerLineJSON `json:"lines"`
}

func (s *Server) handleAccountLedger(w http.ResponseWriter, r *http.Request) {
	accountID, err := pathID(r, "accountID")
	if err != nil {
		writeError(w, err)
		return
	}

	lines, err := s.engine.AccountLedger(accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ledgerResponse{AccountID: accountID, Lines: make([]ledgerLineJSON, 0, len(lines))}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, ledgerLineJSON{
			LineID:    l.ID,
			VoucherID: l.VoucherID,
			Amount:    l.Amount.StringFixed(2),
			Side:      string(l.Side),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

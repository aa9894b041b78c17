package api

import (
	"net/http"

	"github.com/khata-dev/khata/internal/report"
)

// Report handlers re-read the registry on every call; nothing is
// cached.

type trialBalanceJSON struct {
	Rows []accountJSON `json:"rows"`
}

func (s *Server) handleTrialBalance(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.registry.All()
	if err != nil {
		writeError(w, err)
		return
	}
	tb := report.TrialBalance(accounts)
	writeJSON(w, http.StatusOK, trialBalanceJSON{Rows: toAccountsJSON(tb.Rows)})
}

type incomeStatementJSON struct {
	Revenues     []accountJSON `json:"revenues"`
	Expenses     []accountJSON `json:"expenses"`
	TotalRevenue string        `json:"total_revenue"`
	TotalExpense string        `json:"total_expense"`
	NetIncome    string        `json:"net_income"`
}

func (s *Server) handleIncomeStatement(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.registry.All()
	if err != nil {
		writeError(w, err)
		return
	}
	is := report.IncomeStatement(accounts)
	writeJSON(w, http.StatusOK, incomeStatementJSON{
		Revenues:     toAccountsJSON(is.Revenues),
		Expenses:     toAccountsJSON(is.Expenses),
		TotalRevenue: is.TotalRevenue.StringFixed(2),
		TotalExpense: is.TotalExpense.StringFixed(2),
		NetIncome:    is.NetIncome.StringFixed(2),
	})
}

type balanceSheetJSON struct {
	Assets           []accountJSON `json:"assets"`
	Liabilities      []accountJSON `json:"liabilities"`
	Equity           []accountJSON `json:"equity"`
	TotalAssets      string        `json:"total_assets"`
	TotalLiabilities string        `json:"total_liabilities"`
	TotalEquity      string        `json:"total_equity"`
	EquationHolds    bool          `json:"equation_holds"`
}

func (s *Server) handleBalanceSheet(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.registry.All()
	if err != nil {
		writeError(w, err)
		return
	}
	bs := report.BalanceSheet(accounts)
	writeJSON(w, http.StatusOK, balanceSheetJSON{
		Assets:           toAccountsJSON(bs.Assets),
		Liabilities:      toAccountsJSON(bs.Liabilities),
		Equity:           toAccountsJSON(bs.Equity),
		TotalAssets:      bs.TotalAssets.StringFixed(2),
		TotalLiabilities: bs.TotalLiabilities.StringFixed(2),
		TotalEquity:      bs.TotalEquity.StringFixed(2),
		EquationHolds:    bs.EquationHolds,
	})
}

// Package export serializes reports and ledgers to CSV for use outside
// khata (spreadsheets, archival).
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/report"
)

// WriteTrialBalance writes a trial balance as CSV.
func WriteTrialBalance(w io.Writer, r report.TrialBalanceReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"account_id", "account_name", "account_type", "balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, a := range r.Rows {
		row := []string{
			strconv.FormatInt(a.ID, 10),
			a.Name,
			string(a.Type),
			a.Balance.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteIncomeStatement writes an income statement as CSV. Group totals
// appear as summary rows after the account rows.
func WriteIncomeStatement(w io.Writer, r report.IncomeStatementReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"section", "account_id", "account_name", "balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := writeSection(cw, "revenue", r.Revenues); err != nil {
		return err
	}
	if err := writeSection(cw, "expense", r.Expenses); err != nil {
		return err
	}
	summaries := [][]string{
		{"total_revenue", "", "", r.TotalRevenue.StringFixed(2)},
		{"total_expense", "", "", r.TotalExpense.StringFixed(2)},
		{"net_income", "", "", r.NetIncome.StringFixed(2)},
	}
	for _, row := range summaries {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	return cw.Error()
}

// WriteBalanceSheet writes a balance sheet as CSV.
func WriteBalanceSheet(w io.Writer, r report.BalanceSheetReport) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"section", "account_id", "account_name", "balance"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := writeSection(cw, "asset", r.Assets); err != nil {
		return err
	}
	if err := writeSection(cw, "liability", r.Liabilities); err != nil {
		return err
	}
	if err := writeSection(cw, "equity", r.Equity); err != nil {
		return err
	}
	summaries := [][]string{
		{"total_assets", "", "", r.TotalAssets.StringFixed(2)},
		{"total_liabilities", "", "", r.TotalLiabilities.StringFixed(2)},
		{"total_equity", "", "", r.TotalEquity.StringFixed(2)},
		{"equation_holds", "", "", strconv.FormatBool(r.EquationHolds)},
	}
	for _, row := range summaries {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing summary row: %w", err)
		}
	}
	return cw.Error()
}

// WriteLedger writes an account ledger as CSV.
func WriteLedger(w io.Writer, lines []model.TransactionLine) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"line_id", "voucher_id", "account_id", "amount", "side"}); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, l := range lines {
		row := []string{
			strconv.FormatInt(l.ID, 10),
			strconv.FormatInt(l.VoucherID, 10),
			strconv.FormatInt(l.AccountID, 10),
			l.Amount.StringFixed(2),
			string(l.Side),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

func writeSection(cw *csv.Writer, section string, accounts []model.Account) error {
	for i, a := range accounts {
		row := []string{
			section,
			strconv.FormatInt(a.ID, 10),
			a.Name,
			a.Balance.StringFixed(2),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing %s row %d: %w", section, i+1, err)
		}
	}
	return nil
}

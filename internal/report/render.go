package report

import (
	"fmt"
	"strings"

	"github.com/khata-dev/khata/internal/model"
)

// Render* produce the flat tabular text form of each report, suitable
// for printing or export to a file.

// RenderTrialBalance renders a trial balance as fixed-width text.
func RenderTrialBalance(r TrialBalanceReport) string {
	var b strings.Builder
	b.WriteString("TRIAL BALANCE\n\n")
	fmt.Fprintf(&b, "%-5s %-20s %-15s %10s\n", "ID", "Name", "Type", "Balance")
	b.WriteString(strings.Repeat("-", 55) + "\n")
	for _, a := range r.Rows {
		writeAccountRow(&b, a, true)
	}
	return b.String()
}

// RenderIncomeStatement renders an income statement as fixed-width text.
func RenderIncomeStatement(r IncomeStatementReport) string {
	var b strings.Builder
	b.WriteString("INCOME STATEMENT\n\n")
	writeGroup(&b, "Revenues", r.Revenues)
	b.WriteString("\n")
	writeGroup(&b, "Expenses", r.Expenses)
	fmt.Fprintf(&b, "\nTotal Revenue: %10s\nTotal Expense: %10s\nNet Income: %10s\n",
		r.TotalRevenue.StringFixed(2), r.TotalExpense.StringFixed(2), r.NetIncome.StringFixed(2))
	return b.String()
}

// RenderBalanceSheet renders a balance sheet as fixed-width text.
func RenderBalanceSheet(r BalanceSheetReport) string {
	var b strings.Builder
	b.WriteString("BALANCE SHEET\n\n")
	writeGroup(&b, "Assets", r.Assets)
	b.WriteString("\n")
	writeGroup(&b, "Liabilities", r.Liabilities)
	b.WriteString("\n")
	writeGroup(&b, "Equity", r.Equity)
	fmt.Fprintf(&b, "\nTotal Assets: %10s\nTotal Liabilities: %10s\nTotal Equity: %10s\n",
		r.TotalAssets.StringFixed(2), r.TotalLiabilities.StringFixed(2), r.TotalEquity.StringFixed(2))
	fmt.Fprintf(&b, "\nAccounting Equation Valid: %t\n", r.EquationHolds)
	return b.String()
}

func writeGroup(b *strings.Builder, title string, accounts []model.Account) {
	fmt.Fprintf(b, "%s:\n", title)
	fmt.Fprintf(b, "%-5s %-20s %10s\n", "ID", "Name", "Balance")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, a := range accounts {
		writeAccountRow(b, a, false)
	}
}

func writeAccountRow(b *strings.Builder, a model.Account, withType bool) {
	if withType {
		fmt.Fprintf(b, "%-5d %-20s %-15s %10s\n", a.ID, a.Name, a.Type, a.Balance.StringFixed(2))
		return
	}
	fmt.Fprintf(b, "%-5d %-20s %10s\n", a.ID, a.Name, a.Balance.StringFixed(2))
}

// Package report derives summary reports from a chart-of-accounts
// snapshot. All functions are pure: nothing is cached or persisted, and
// balances are summed as stored (debit-positive, no sign flip per type).
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/model"
)

// equationTolerance bounds the informational accounting-equation check
// on the balance sheet.
var equationTolerance = decimal.RequireFromString("0.001")

// TrialBalanceReport lists every account and its current balance.
type TrialBalanceReport struct {
	Rows []model.Account
}

// IncomeStatementReport partitions accounts into revenue and expense.
type IncomeStatementReport struct {
	Revenues     []model.Account
	Expenses     []model.Account
	TotalRevenue decimal.Decimal
	TotalExpense decimal.Decimal
	NetIncome    decimal.Decimal
}

// BalanceSheetReport partitions accounts into assets, liabilities, and
// equity. EquationHolds is informational only; no operation is blocked
// on it.
type BalanceSheetReport struct {
	Assets           []model.Account
	Liabilities      []model.Account
	Equity           []model.Account
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
	EquationHolds    bool
}

// TrialBalance returns every account ordered by id.
func TrialBalance(accounts []model.Account) TrialBalanceReport {
	rows := make([]model.Account, len(accounts))
	copy(rows, accounts)
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return TrialBalanceReport{Rows: rows}
}

// IncomeStatement groups revenue and expense accounts and totals their
// stored balances.
func IncomeStatement(accounts []model.Account) IncomeStatementReport {
	r := IncomeStatementReport{
		Revenues: filterByType(accounts, model.AccountTypeRevenue),
		Expenses: filterByType(accounts, model.AccountTypeExpense),
	}
	r.TotalRevenue = sumBalances(r.Revenues)
	r.TotalExpense = sumBalances(r.Expenses)
	r.NetIncome = r.TotalRevenue.Sub(r.TotalExpense)
	return r
}

// BalanceSheet groups asset, liability, and equity accounts, totals
// their stored balances, and checks the accounting equation.
func BalanceSheet(accounts []model.Account) BalanceSheetReport {
	r := BalanceSheetReport{
		Assets:      filterByType(accounts, model.AccountTypeAsset),
		Liabilities: filterByType(accounts, model.AccountTypeLiability),
		Equity:      filterByType(accounts, model.AccountTypeEquity),
	}
	r.TotalAssets = sumBalances(r.Assets)
	r.TotalLiabilities = sumBalances(r.Liabilities)
	r.TotalEquity = sumBalances(r.Equity)
	diff := r.TotalAssets.Sub(r.TotalLiabilities.Add(r.TotalEquity))
	r.EquationHolds = diff.Abs().LessThan(equationTolerance)
	return r
}

func filterByType(accounts []model.Account, t model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range accounts {
		if a.Type == t {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func sumBalances(accounts []model.Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		total = total.Add(a.Balance)
	}
	return total
}

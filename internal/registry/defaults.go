package registry

import "github.com/khata-dev/khata/internal/model"

// DefaultChart returns the starter chart of accounts seeded by init.
// IDs are assigned by the registry on open.
func DefaultChart() []model.Account {
	return []model.Account{
		{Name: "Cash", Type: model.AccountTypeAsset},
		{Name: "Bank", Type: model.AccountTypeAsset},
		{Name: "Accounts Payable", Type: model.AccountTypeLiability},
		{Name: "Owner's Capital", Type: model.AccountTypeEquity},
		{Name: "Sales", Type: model.AccountTypeRevenue},
		{Name: "Purchases", Type: model.AccountTypeExpense},
		{Name: "Inventory", Type: model.AccountTypeStock},
	}
}

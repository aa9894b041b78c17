package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
	AccountTypeStock     AccountType = "stock"
)

// AccountTypes lists every valid account type in display order.
func AccountTypes() []AccountType {
	return []AccountType{
		AccountTypeAsset,
		AccountTypeLiability,
		AccountTypeEquity,
		AccountTypeRevenue,
		AccountTypeExpense,
		AccountTypeStock,
	}
}

// Valid reports whether t is one of the fixed account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity,
		AccountTypeRevenue, AccountTypeExpense, AccountTypeStock:
		return true
	}
	return false
}

// ParseAccountType parses a case-insensitive account type string.
func ParseAccountType(s string) (AccountType, error) {
	t := AccountType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", ValidationError{Reason: "unknown account type"}
	}
	return t, nil
}

// Account represents a row in the chart of accounts. Balance is derived
// state: it is written only inside a posting transaction and always equals
// the signed sum of the transaction lines referencing the account.
type Account struct {
	ID      int64
	Name    string
	Type    AccountType
	Balance decimal.Decimal
}

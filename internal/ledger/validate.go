package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/model"
)

// AccountChecker tests whether an account id exists in the chart of
// accounts.
type AccountChecker interface {
	Exists(id int64) bool
}

// Draft is a client-proposed voucher, not yet validated or committed.
// Amounts and sides arrive as raw strings.
type Draft struct {
	Description string
	Kind        string
	Lines       []DraftLine
}

// DraftLine is one candidate line of a draft. A zero AccountID means no
// account was selected; such lines are dropped before validation.
type DraftLine struct {
	AccountID int64
	Amount    string
	Side      string
}

// balanceTolerance is the maximum absolute debit/credit difference a
// voucher may carry and still be accepted.
var balanceTolerance = decimal.RequireFromString("0.001")

type candidateLine struct {
	accountID int64
	amount    decimal.Decimal
	side      model.Side
}

// validateDraft runs the full validation sequence before any mutation.
// It returns the parsed candidate lines, or the first violation found.
func validateDraft(d Draft, accounts AccountChecker) (model.VoucherKind, []candidateLine, error) {
	if d.Description == "" {
		return "", nil, model.ValidationError{Reason: "missing description"}
	}

	kind, err := model.ParseVoucherKind(d.Kind)
	if err != nil {
		return "", nil, err
	}

	// Lines with no account selected are dropped, not rejected.
	var proposed []DraftLine
	for _, l := range d.Lines {
		if l.AccountID == 0 {
			continue
		}
		proposed = append(proposed, l)
	}

	for _, l := range proposed {
		if !accounts.Exists(l.AccountID) {
			return "", nil, model.ValidationError{Reason: "unknown account"}
		}
	}

	lines := make([]candidateLine, 0, len(proposed))
	for _, l := range proposed {
		amount, err := decimal.NewFromString(l.Amount)
		if err != nil || amount.Sign() <= 0 {
			return "", nil, model.ValidationError{Reason: "invalid amount"}
		}
		lines = append(lines, candidateLine{accountID: l.AccountID, amount: amount})
	}

	for i, l := range proposed {
		side, err := model.ParseSide(l.Side)
		if err != nil {
			return "", nil, err
		}
		lines[i].side = side
	}

	if len(lines) < 2 {
		return "", nil, model.ValidationError{Reason: "too few lines"}
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, l := range lines {
		if l.side == model.SideDebit {
			totalDebit = totalDebit.Add(l.amount)
		} else {
			totalCredit = totalCredit.Add(l.amount)
		}
	}
	if totalDebit.Sub(totalCredit).Abs().GreaterThan(balanceTolerance) {
		return "", nil, model.ValidationError{Reason: "unbalanced voucher"}
	}

	return kind, lines, nil
}

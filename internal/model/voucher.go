package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// VoucherKind tags a voucher with its bookkeeping category. It is
// informational only and does not change validation rules.
type VoucherKind string

const (
	KindJournal    VoucherKind = "Journal"
	KindPayment    VoucherKind = "Payment"
	KindReceipt    VoucherKind = "Receipt"
	KindContra     VoucherKind = "Contra"
	KindDebitNote  VoucherKind = "Debit Note"
	KindCreditNote VoucherKind = "Credit Note"
)

// VoucherKinds lists every valid voucher kind in display order.
func VoucherKinds() []VoucherKind {
	return []VoucherKind{
		KindJournal,
		KindPayment,
		KindReceipt,
		KindContra,
		KindDebitNote,
		KindCreditNote,
	}
}

// Valid reports whether k is one of the fixed voucher kinds.
func (k VoucherKind) Valid() bool {
	switch k {
	case KindJournal, KindPayment, KindReceipt, KindContra, KindDebitNote, KindCreditNote:
		return true
	}
	return false
}

// ParseVoucherKind parses a case-insensitive voucher kind string.
// The empty string defaults to Journal.
func ParseVoucherKind(s string) (VoucherKind, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return KindJournal, nil
	}
	for _, k := range VoucherKinds() {
		if strings.EqualFold(s, string(k)) {
			return k, nil
		}
	}
	return "", ValidationError{Reason: "unknown voucher kind"}
}

// Side marks a transaction line as the debit or credit side.
type Side string

const (
	SideDebit  Side = "debit"
	SideCredit Side = "credit"
)

// ParseSide parses a case-insensitive side string.
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debit":
		return SideDebit, nil
	case "credit":
		return SideCredit, nil
	}
	return "", ValidationError{Reason: "invalid side"}
}

// Voucher is a single committed financial transaction. The id and
// timestamp are assigned at commit time; a voucher is immutable once
// committed and always owns at least two transaction lines.
type Voucher struct {
	ID          int64
	CreatedAt   time.Time
	Description string
	Kind        VoucherKind
}

// TransactionLine is one debit or credit entry within a voucher, tied to
// one account. Amount is always positive; the side carries the sign.
type TransactionLine struct {
	ID        int64
	VoucherID int64
	AccountID int64
	Amount    decimal.Decimal
	Side      Side
}

// Effect returns the line's signed effect on its account balance:
// +amount for a debit, -amount for a credit.
func (l TransactionLine) Effect() decimal.Decimal {
	if l.Side == SideDebit {
		return l.Amount
	}
	return l.Amount.Neg()
}

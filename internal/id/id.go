// Package id formats human-readable voucher references.
package id

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/khata-dev/khata/internal/model"
)

var kindPrefixes = map[model.VoucherKind]string{
	model.KindJournal:    "JV",
	model.KindPayment:    "PV",
	model.KindReceipt:    "RV",
	model.KindContra:     "CV",
	model.KindDebitNote:  "DN",
	model.KindCreditNote: "CN",
}

// FormatVoucherRef returns a reference like "JV-000042".
func FormatVoucherRef(kind model.VoucherKind, voucherID int64) string {
	prefix, ok := kindPrefixes[kind]
	if !ok {
		prefix = "JV"
	}
	return fmt.Sprintf("%s-%06d", prefix, voucherID)
}

// ParseVoucherRef parses a reference like "PV-000007" into its kind and
// numeric voucher id.
func ParseVoucherRef(ref string) (model.VoucherKind, int64, error) {
	prefix, num, ok := strings.Cut(ref, "-")
	if !ok {
		return "", 0, fmt.Errorf("invalid voucher reference %q", ref)
	}

	var kind model.VoucherKind
	for k, p := range kindPrefixes {
		if p == prefix {
			kind = k
			break
		}
	}
	if kind == "" {
		return "", 0, fmt.Errorf("unknown voucher reference prefix %q", prefix)
	}

	voucherID, err := strconv.ParseInt(num, 10, 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid voucher number in %q: %w", ref, err)
	}
	return kind, voucherID, nil
}

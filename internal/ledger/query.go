package ledger

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/model"
)

// AccountLedger returns every committed transaction line referencing
// the account, in voucher-id then line-id order. An account with no
// postings yields an empty ledger, not an error.
func (e *Engine) AccountLedger(accountID int64) ([]model.TransactionLine, error) {
	if !e.accounts.Exists(accountID) {
		return nil, fmt.Errorf("account %d: %w", accountID, model.ErrNotFound)
	}

	rows, err := e.db.SQL().Query(
		`SELECT id, voucher_id, account_id, amount, side
		 FROM transaction_lines WHERE account_id = ?
		 ORDER BY voucher_id, id`, accountID)
	if err != nil {
		return nil, fmt.Errorf("querying ledger: %w", err)
	}
	defer rows.Close()

	var lines []model.TransactionLine
	for rows.Next() {
		var l model.TransactionLine
		var amount, side string
		if err := rows.Scan(&l.ID, &l.VoucherID, &l.AccountID, &amount, &side); err != nil {
			return nil, fmt.Errorf("scanning line: %w", err)
		}
		l.Amount, err = decimal.NewFromString(amount)
		if err != nil {
			return nil, fmt.Errorf("parsing line amount %q: %w", amount, err)
		}
		l.Side = model.Side(side)
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// Voucher returns a committed voucher by id.
func (e *Engine) Voucher(voucherID int64) (model.Voucher, error) {
	row := e.db.SQL().QueryRow(
		`SELECT id, created_at, description, kind FROM vouchers WHERE id = ?`, voucherID)
	v, err := scanVoucher(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Voucher{}, fmt.Errorf("voucher %d: %w", voucherID, model.ErrNotFound)
	}
	return v, err
}

// VoucherCount returns the number of committed vouchers.
func (e *Engine) VoucherCount() (int64, error) {
	var n int64
	if err := e.db.SQL().QueryRow(`SELECT COUNT(*) FROM vouchers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting vouchers: %w", err)
	}
	return n, nil
}

// LastVoucher returns the most recently committed voucher, or false if
// none exist.
func (e *Engine) LastVoucher() (model.Voucher, bool, error) {
	row := e.db.SQL().QueryRow(
		`SELECT id, created_at, description, kind FROM vouchers ORDER BY id DESC LIMIT 1`)
	v, err := scanVoucher(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Voucher{}, false, nil
	}
	if err != nil {
		return model.Voucher{}, false, err
	}
	return v, true, nil
}

func scanVoucher(row *sql.Row) (model.Voucher, error) {
	var v model.Voucher
	var ts, kind string
	if err := row.Scan(&v.ID, &ts, &v.Description, &kind); err != nil {
		return model.Voucher{}, err
	}
	created, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return model.Voucher{}, fmt.Errorf("parsing voucher timestamp %q: %w", ts, err)
	}
	v.CreatedAt = created
	v.Kind = model.VoucherKind(kind)
	return v, nil
}

// Package ledger implements the posting engine: it converts a proposed
// voucher into a durable, balance-consistent commit, and reconstructs
// per-account ledgers from the committed lines.
package ledger

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/audit"
	"github.com/khata-dev/khata/internal/id"
	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/sqlite"
)

// Engine validates and atomically commits vouchers.
type Engine struct {
	db       *sqlite.DB
	accounts AccountChecker
	trail    audit.Trail
}

// NewEngine creates an Engine. All balance writes in the system happen
// inside Submit's commit transaction; nothing else mutates balances.
func NewEngine(db *sqlite.DB, accounts AccountChecker, trail audit.Trail) *Engine {
	return &Engine{db: db, accounts: accounts, trail: trail}
}

// Submit validates a draft voucher and, if every check passes, commits
// the voucher, its lines, and the affected account balances as one
// atomic unit. A rejected draft leaves no stored state mutated.
func (e *Engine) Submit(d Draft) (model.Voucher, error) {
	kind, lines, err := validateDraft(d, e.accounts)
	if err != nil {
		return model.Voucher{}, err
	}

	voucher := model.Voucher{
		CreatedAt:   time.Now().UTC(),
		Description: d.Description,
		Kind:        kind,
	}

	err = e.db.WriteTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO vouchers (created_at, description, kind) VALUES (?, ?, ?)`,
			voucher.CreatedAt.Format(time.RFC3339), voucher.Description, string(voucher.Kind),
		)
		if err != nil {
			return fmt.Errorf("%w: inserting voucher: %v", model.ErrStorage, err)
		}
		voucher.ID, err = res.LastInsertId()
		if err != nil {
			return fmt.Errorf("%w: voucher id: %v", model.ErrStorage, err)
		}

		for _, l := range lines {
			if _, err := tx.Exec(
				`INSERT INTO transaction_lines (voucher_id, account_id, amount, side)
				 VALUES (?, ?, ?, ?)`,
				voucher.ID, l.accountID, l.amount.String(), string(l.side),
			); err != nil {
				return fmt.Errorf("%w: inserting line: %v", model.ErrStorage, err)
			}
		}

		return applyDeltas(tx, lines)
	})
	if err != nil {
		return model.Voucher{}, err
	}

	e.trail.Record("Voucher Entry",
		fmt.Sprintf("Voucher %s (%s) created: %s",
			id.FormatVoucherRef(voucher.Kind, voucher.ID), voucher.Kind, voucher.Description))
	return voucher, nil
}

// applyDeltas updates each referenced account's running balance inside
// the commit transaction: +amount for a debit, -amount for a credit.
func applyDeltas(tx *sql.Tx, lines []candidateLine) error {
	deltas := make(map[int64]decimal.Decimal)
	var order []int64
	for _, l := range lines {
		if _, seen := deltas[l.accountID]; !seen {
			order = append(order, l.accountID)
		}
		effect := l.amount
		if l.side == model.SideCredit {
			effect = effect.Neg()
		}
		deltas[l.accountID] = deltas[l.accountID].Add(effect)
	}

	for _, accountID := range order {
		var raw string
		if err := tx.QueryRow(
			`SELECT balance FROM accounts WHERE id = ?`, accountID,
		).Scan(&raw); err != nil {
			return fmt.Errorf("%w: reading balance for account %d: %v", model.ErrStorage, accountID, err)
		}
		balance, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("%w: parsing balance for account %d: %v", model.ErrStorage, accountID, err)
		}
		if _, err := tx.Exec(
			`UPDATE accounts SET balance = ? WHERE id = ?`,
			balance.Add(deltas[accountID]).String(), accountID,
		); err != nil {
			return fmt.Errorf("%w: updating balance for account %d: %v", model.ErrStorage, accountID, err)
		}
	}
	return nil
}

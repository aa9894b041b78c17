// Package registry owns the chart of accounts.
//
// Balances are deliberately denormalized running totals: the registry
// reads them but never writes them. The only writer is the posting
// engine, inside its commit transaction.
package registry

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/khata-dev/khata/internal/audit"
	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/sqlite"
)

// Service provides lookup and lifecycle operations over the chart of
// accounts.
type Service struct {
	db    *sqlite.DB
	trail audit.Trail
}

// NewService creates a Service on top of db, emitting audit records to
// trail.
func NewService(db *sqlite.DB, trail audit.Trail) *Service {
	return &Service{db: db, trail: trail}
}

// OpenAccount creates an account with a zero balance and returns its id.
func (s *Service) OpenAccount(name string, accountType model.AccountType) (int64, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return 0, model.ValidationError{Reason: "missing account name"}
	}
	if !accountType.Valid() {
		return 0, model.ValidationError{Reason: "unknown account type"}
	}

	var id int64
	err := s.db.WriteTx(func(tx *sql.Tx) error {
		res, err := tx.Exec(
			`INSERT INTO accounts (name, type, balance) VALUES (?, ?, '0')`,
			name, string(accountType),
		)
		if err != nil {
			return fmt.Errorf("%w: inserting account: %v", model.ErrStorage, err)
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return 0, err
	}

	s.trail.Record("Account Created",
		fmt.Sprintf("Account '%s' of type '%s' created.", name, accountType))
	return id, nil
}

// CloseAccount deletes an account. An account still referenced by
// posted transaction lines cannot be closed; historical ledger entries
// are never orphaned.
func (s *Service) CloseAccount(id int64) error {
	acct, err := s.Get(id)
	if err != nil {
		return err
	}

	err = s.db.WriteTx(func(tx *sql.Tx) error {
		var refs int64
		if err := tx.QueryRow(
			`SELECT COUNT(*) FROM transaction_lines WHERE account_id = ?`, id,
		).Scan(&refs); err != nil {
			return fmt.Errorf("%w: counting account references: %v", model.ErrStorage, err)
		}
		if refs > 0 {
			return model.ValidationError{Reason: "account has postings"}
		}
		if _, err := tx.Exec(`DELETE FROM accounts WHERE id = ?`, id); err != nil {
			return fmt.Errorf("%w: deleting account: %v", model.ErrStorage, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.trail.Record("Account Deleted",
		fmt.Sprintf("Account '%s' (id %d) deleted.", acct.Name, id))
	return nil
}

// Get returns an account by id.
func (s *Service) Get(id int64) (model.Account, error) {
	row := s.db.SQL().QueryRow(
		`SELECT id, name, type, balance FROM accounts WHERE id = ?`, id)
	acct, err := scanAccount(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Account{}, fmt.Errorf("account %d: %w", id, model.ErrNotFound)
	}
	return acct, err
}

// Exists reports whether an account id exists.
func (s *Service) Exists(id int64) bool {
	_, err := s.Get(id)
	return err == nil
}

// All returns every account, ordered by id.
func (s *Service) All() ([]model.Account, error) {
	return s.query(`SELECT id, name, type, balance FROM accounts ORDER BY id`)
}

// ByType returns all accounts of the given type, ordered by id.
func (s *Service) ByType(accountType model.AccountType) ([]model.Account, error) {
	return s.query(
		`SELECT id, name, type, balance FROM accounts WHERE type = ? ORDER BY id`,
		string(accountType))
}

// Count returns the number of accounts.
func (s *Service) Count() (int64, error) {
	var n int64
	if err := s.db.SQL().QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting accounts: %w", err)
	}
	return n, nil
}

func (s *Service) query(q string, args ...any) ([]model.Account, error) {
	rows, err := s.db.SQL().Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		acct, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, acct)
	}
	return accounts, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (model.Account, error) {
	var acct model.Account
	var typ, balance string
	if err := s.Scan(&acct.ID, &acct.Name, &typ, &balance); err != nil {
		return model.Account{}, err
	}
	acct.Type = model.AccountType(typ)
	bal, err := decimal.NewFromString(balance)
	if err != nil {
		return model.Account{}, fmt.Errorf("parsing balance %q: %w", balance, err)
	}
	acct.Balance = bal
	return acct, nil
}

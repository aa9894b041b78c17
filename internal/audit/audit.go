// Package audit provides the append-only audit trail. Recording is
// best-effort: a failed audit write never blocks or rolls back the
// operation that triggered it.
package audit

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/khata-dev/khata/internal/model"
	"github.com/khata-dev/khata/internal/sqlite"
)

// Trail receives a notification of each committed action.
type Trail interface {
	Record(action, details string)
}

// Log is the SQLite-backed audit trail.
type Log struct {
	db *sqlite.DB
}

// NewLog creates a Log on top of db.
func NewLog(db *sqlite.DB) *Log {
	return &Log{db: db}
}

// Record appends one audit row. Errors are swallowed: audit is not part
// of any atomicity unit.
func (l *Log) Record(action, details string) {
	_ = l.db.WriteTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(
			`INSERT INTO audit_logs (timestamp, action, details) VALUES (?, ?, ?)`,
			time.Now().UTC().Format(time.RFC3339), action, details,
		)
		return err
	})
}

// List returns all audit records, newest first.
func (l *Log) List() ([]model.AuditRecord, error) {
	rows, err := l.db.SQL().Query(
		`SELECT id, timestamp, action, details FROM audit_logs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var records []model.AuditRecord
	for rows.Next() {
		var r model.AuditRecord
		var ts string
		if err := rows.Scan(&r.ID, &ts, &r.Action, &r.Details); err != nil {
			return nil, fmt.Errorf("scanning audit row: %w", err)
		}
		r.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing audit timestamp %q: %w", ts, err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Nop is a Trail that discards every record.
type Nop struct{}

// Record implements Trail.
func (Nop) Record(action, details string) {}

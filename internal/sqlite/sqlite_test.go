package sqlite

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "khata.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpen_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"accounts", "vouchers", "transaction_lines", "audit_logs", "stock_items", "users"} {
		var name string
		err := db.SQL().QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "khata.db")

	db, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	// Migrations are idempotent.
	db, err = Open(path)
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestWriteTx_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)

	boom := errors.New("boom")
	err := db.WriteTx(func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO accounts (name, type) VALUES ('Cash', 'asset')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int
	require.NoError(t, db.SQL().QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&n))
	assert.Zero(t, n, "rolled-back insert must not be observable")
}

func TestWriteTx_Commits(t *testing.T) {
	db := openTestDB(t)

	err := db.WriteTx(func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO accounts (name, type) VALUES ('Cash', 'asset')`)
		return err
	})
	require.NoError(t, err)

	var n int
	require.NoError(t, db.SQL().QueryRow(`SELECT COUNT(*) FROM accounts`).Scan(&n))
	assert.Equal(t, 1, n)
}

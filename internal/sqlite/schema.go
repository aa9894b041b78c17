package sqlite

// Migrations returns the schema migration statements. Each string is a
// single SQL statement (SQLite executes one at a time). Monetary values
// are stored as decimal strings, never floats.
func Migrations() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			id      INTEGER PRIMARY KEY AUTOINCREMENT,
			name    TEXT NOT NULL,
			type    TEXT NOT NULL,
			balance TEXT NOT NULL DEFAULT '0'
		)`,

		`CREATE TABLE IF NOT EXISTS vouchers (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at  TEXT NOT NULL,
			description TEXT NOT NULL,
			kind        TEXT NOT NULL DEFAULT 'Journal'
		)`,

		`CREATE TABLE IF NOT EXISTS transaction_lines (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			voucher_id INTEGER NOT NULL REFERENCES vouchers(id),
			account_id INTEGER NOT NULL REFERENCES accounts(id),
			amount     TEXT NOT NULL,
			side       TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_lines_account ON transaction_lines(account_id)`,
		`CREATE INDEX IF NOT EXISTS idx_lines_voucher ON transaction_lines(voucher_id)`,

		`CREATE TABLE IF NOT EXISTS audit_logs (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp TEXT NOT NULL,
			action    TEXT NOT NULL,
			details   TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS stock_items (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			product_name   TEXT NOT NULL,
			quantity       INTEGER NOT NULL DEFAULT 0,
			purchase_price TEXT NOT NULL DEFAULT '0',
			selling_price  TEXT NOT NULL DEFAULT '0',
			details        TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS users (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`,
	}
}

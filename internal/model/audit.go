package model

import "time"

// AuditRecord is one append-only row in the audit log. Records are
// written as a side effect of mutations and never updated or deleted.
type AuditRecord struct {
	ID        int64
	Timestamp time.Time
	Action    string
	Details   string
}

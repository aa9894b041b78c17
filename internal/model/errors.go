package model

import "errors"

// Sentinel errors shared across the core. Callers match them with
// errors.Is after any amount of %w wrapping.
var (
	// ErrNotFound marks a reference to a nonexistent account or voucher.
	ErrNotFound = errors.New("not found")

	// ErrStorage marks a commit that could not be durably completed.
	// Already-committed data is never affected.
	ErrStorage = errors.New("storage failure")
)

// ValidationError describes malformed or rule-violating input. It is
// always recoverable: the operation left no stored state mutated.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return e.Reason
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

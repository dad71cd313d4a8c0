package store

import "errors"

// Sentinel errors for store operations.
var (
	ErrNotFound       = errors.New("chain not found")
	ErrLoadFailed     = errors.New("load failed")
	ErrSaveFailed     = errors.New("save failed")
	ErrInvalidKey     = errors.New("invalid key")
	ErrInvalidJournal = errors.New("invalid journal")
	ErrUnknownBackend = errors.New("unknown store backend")
)

// RecordedError stands in for the error of a decoded Failure.
type RecordedError struct {
	Message string
}

func (e *RecordedError) Error() string {
	return e.Message
}

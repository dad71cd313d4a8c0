package state

import (
	"errors"
	"fmt"
)

// Sentinel errors for field access and transitions.
var (
	ErrFieldMissing    = errors.New("field missing")
	ErrNoSuchOperation = errors.New("no such operation")
	ErrNilFailure      = errors.New("failure requires a non-nil error")
)

// FieldMissingError is returned by strict field access when the key is absent.
type FieldMissingError struct {
	Field string
}

func (e *FieldMissingError) Error() string {
	return fmt.Sprintf("%v: %s", ErrFieldMissing, e.Field)
}

// Is matches ErrFieldMissing.
func (e *FieldMissingError) Is(target error) bool {
	return target == ErrFieldMissing
}

// OperationError reports an accessor or transition the receiver does not
// support: an unknown accessor name, or Succeed/Fail/Finish on a variant
// other than Success.
type OperationError struct {
	Operation string
	Variant   Variant
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%v: %q on %s", ErrNoSuchOperation, e.Operation, e.Variant)
}

// Is matches ErrNoSuchOperation.
func (e *OperationError) Is(target error) bool {
	return target == ErrNoSuchOperation
}

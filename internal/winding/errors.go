package winding

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConverged is returned when a solver loop exceeds its iteration guard
	ErrNotConverged = errors.New("did not converge")

	// ErrNonFinite is returned when an intermediate or final value is NaN or infinite
	ErrNonFinite = errors.New("non-finite value")
)

// ValidationError reports the first violated input constraint.
// The caller may correct the named field and retry.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ComputationError reports a fault inside a solver. It is never caused by a
// correctable input and wraps ErrNotConverged or ErrNonFinite.
type ComputationError struct {
	Op  string
	Err error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ComputationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is (or wraps) a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsComputation reports whether err is (or wraps) a ComputationError
func IsComputation(err error) bool {
	var ce *ComputationError
	return errors.As(err, &ce)
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

func fault(op string, err error, format string, args ...any) error {
	return &ComputationError{Op: op, Err: fmt.Errorf("%w: "+format, append([]any{err}, args...)...)}
}

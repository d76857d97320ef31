package cove

import "errors"

///////////////////////////////////////////////////////////////////////////////
// Errors
///////////////////////////////////////////////////////////////////////////////

// Sentinel reasons for coercion failures. Each CoerceError wraps one of
// these, so callers can branch with errors.Is while the rendered message
// still names the offending key.
var (
	ErrNotDefined  = errors.New("is not defined")
	ErrNotNumber   = errors.New("is not a number")
	ErrNotBool     = errors.New("is not a valid boolean value.")
	ErrNotDuration = errors.New("is not a valid duration")
	ErrNotDate     = errors.New("is not a valid date")
	ErrNotUUID     = errors.New("is not a valid UUID")

	// ErrDurationUnit marks a defect in the duration parser rather than bad
	// input: the token pattern admitted a unit the evaluator cannot handle.
	ErrDurationUnit = errors.New("unhandled duration unit")
)

// CoerceError is the error raised by the built-in coercions. Its message
// always leads with the key the value was read under.
type CoerceError struct {
	Name string // The envelope's Name at the failing stage
	Err  error  // One of the sentinel reasons above
}

// Error implements the error interface.
func (ce *CoerceError) Error() string {
	return ce.Name + " " + ce.Err.Error()
}

// Unwrap exposes the sentinel reason for errors.Is.
func (ce *CoerceError) Unwrap() error {
	return ce.Err
}

// coerceErr builds the CoerceError for the envelope at the failing stage.
func coerceErr[T any](in Value[T], reason error) error {
	return &CoerceError{Name: in.Name, Err: reason}
}

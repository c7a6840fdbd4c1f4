package countdown

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNotFound matches any *NotFoundError via errors.Is.
	ErrNotFound = errors.New("timer not found")

	// ErrInvalidName is returned for names that cannot be used as a key.
	ErrInvalidName = errors.New("invalid timer name")

	// ErrMissingName is returned when a command has no timer name.
	ErrMissingName = errors.New("timer name required")

	// ErrMissingDuration is returned when add has no duration token.
	ErrMissingDuration = errors.New("duration required")
)

// NotFoundError reports that no record exists for a timer name.
type NotFoundError struct {
	Name string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s was not found", e.Name)
}

// Unwrap returns the underlying cause, if any.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// SaveError reports that a countdown could not be saved for a reason other
// than an I/O failure.
type SaveError struct {
	Name string
	Err  error
}

func (e *SaveError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to save %s", e.Name)
	}
	return fmt.Sprintf("failed to save %s: %v", e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *SaveError) Unwrap() error {
	return e.Err
}

// IOError wraps a storage failure.
type IOError struct {
	// Op is the store operation: save, load, delete or list.
	Op   string
	Name string
	Err  error
}

func (e *IOError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("io error: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("io error: %s %s: %v", e.Op, e.Name, e.Err)
}

// Unwrap returns the underlying cause.
func (e *IOError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies err for the journal: not_found, save, io or other.
func ErrorKind(err error) string {
	var (
		nf *NotFoundError
		se *SaveError
		ie *IOError
	)
	switch {
	case errors.As(err, &nf):
		return "not_found"
	case errors.As(err, &se):
		return "save"
	case errors.As(err, &ie):
		return "io"
	default:
		return "other"
	}
}

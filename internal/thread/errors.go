package thread

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrUnsupportedClass = errors.New("unsupported class")
	ErrInvalidThread    = errors.New("invalid thread")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindInvalidInput     ErrorKind = "invalid_input"
	KindNotFound         ErrorKind = "not_found"
	KindUnsupportedClass ErrorKind = "unsupported_class"
	KindInvalidThread    ErrorKind = "invalid_thread"
)

// Error wraps a sentinel with the operation and the offending field.
type Error struct {
	Op    string
	Kind  ErrorKind
	Field string // Optional: input field or class name
	Err   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Field != "" {
		base += fmt.Sprintf(" (%s)", e.Field)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func InvalidInput(op, field string, value float64) error {
	return &Error{
		Op:    op,
		Kind:  KindInvalidInput,
		Field: field,
		Err:   fmt.Errorf("%w: %s must be a positive number, got %v", ErrInvalidInput, field, value),
	}
}

func NotFound(op, field string) error {
	return &Error{Op: op, Kind: KindNotFound, Field: field, Err: ErrNotFound}
}

func UnsupportedClass(op, class string) error {
	return &Error{Op: op, Kind: KindUnsupportedClass, Field: class, Err: ErrUnsupportedClass}
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind ErrorKind) bool {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind == kind
	}
	return false
}

// Positive fails when any value is zero, negative, NaN or infinite.
func Positive(op string, fields map[string]float64) error {
	for _, name := range sortedKeys(fields) {
		v := fields[name]
		if !(v > 0) || isInf(v) {
			return InvalidInput(op, name, v)
		}
	}
	return nil
}

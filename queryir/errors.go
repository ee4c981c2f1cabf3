package queryir

import (
	"errors"
	"fmt"
)

// Error represents a construction failure.
//
// Construction errors include:
//   - Type mismatch: a constructor received a value outside its accepted set
//   - Invalid value: the type is right but the value cannot be rendered
//     (non-positive fuzzy boost, fuzzy term without words)
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Op names the constructor that failed (e.g. "fuzzy", "range").
	Op string

	// Message is a human-readable description.
	Message string
}

// ErrorCode categorizes construction errors.
type ErrorCode string

const (
	// ErrCodeTypeMismatch indicates a value of an unsupported Go type.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"

	// ErrCodeInvalidValue indicates a value of the right type that cannot be used.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"
)

// Sentinel errors for errors.Is matching against any *Error with that code.
var (
	ErrTypeMismatch = errors.New("type mismatch")
	ErrInvalidValue = errors.New("invalid value")
)

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Op, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Is reports whether target is the sentinel for this error's code.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrTypeMismatch:
		return e.Code == ErrCodeTypeMismatch
	case ErrInvalidValue:
		return e.Code == ErrCodeInvalidValue
	}
	return false
}

func typeMismatch(op string, format string, args ...any) *Error {
	return &Error{Code: ErrCodeTypeMismatch, Op: op, Message: fmt.Sprintf(format, args...)}
}

func invalidValue(op string, format string, args ...any) *Error {
	return &Error{Code: ErrCodeInvalidValue, Op: op, Message: fmt.Sprintf(format, args...)}
}

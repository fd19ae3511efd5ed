package typeutil

import (
	"errors"
	"fmt"
)

// ErrInvalidType indicates that a value could not be converted to the
// requested type.
//
// Every [*InvalidTypeError] matches it through [errors.Is].
var ErrInvalidType = errors.New("invalid type")

// InvalidTypeError reports a failed strict conversion.
type InvalidTypeError struct {
	// Type is the runtime type of the rejected value ("null" for nil).
	Type string
	// Target is the name of the type the value could not become.
	Target string
}

// NewInvalidTypeError builds an [*InvalidTypeError] for value v and the
// target type name.
func NewInvalidTypeError(v any, target string) *InvalidTypeError {
	return &InvalidTypeError{Type: typeName(v), Target: target}
}

// Error implements the error interface.
func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("given value of type %s cannot be cast to %s", e.Type, e.Target)
}

// Is reports whether target is [ErrInvalidType].
func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType
}

// Must returns v and panics if err is non-nil.
//
//	n := typeutil.Must(typeutil.ToInt("42"))
func Must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}

func typeName(v any) string {
	if v == nil {
		return "null"
	}

	return fmt.Sprintf("%T", v)
}

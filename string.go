package typeutil

import (
	"fmt"

	"go.dw1.io/typeutil/internal/cast"
)

// CanBeString reports whether v is a bool, a number, a string or a non-nil
// [fmt.Stringer]. A nil value is not string-like.
func CanBeString(v any) bool {
	if cast.IsNil(v) {
		return false
	}

	if _, ok := v.(fmt.Stringer); ok {
		return true
	}

	return cast.IsScalar(v)
}

// ToStringOrNil converts v to a string, or returns nil when v is not
// string-like. Booleans become "1" and "0".
func ToStringOrNil(v any) *string {
	if !CanBeString(v) {
		return nil
	}

	s, err := cast.String(v)
	if err != nil {
		return nil
	}

	return &s
}

// ToString converts v to a string. A nil value yields "".
func ToString(v any) (string, error) {
	if v == nil {
		return "", nil
	}

	s := ToStringOrNil(v)
	if s == nil {
		return "", NewInvalidTypeError(v, "string")
	}

	return *s, nil
}

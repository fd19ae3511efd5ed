package typeutil

import (
	"go.dw1.io/typeutil/internal/cast"
	"go.dw1.io/typeutil/internal/regexp"
)

var (
	// numericLiteral accepts an optionally signed decimal with at most one
	// point, at least one digit and an optional exponent. Anchored with \z:
	// on the regexp2 engine $ also matches before a trailing newline.
	numericLiteral = regexp.MustCompile(`^[+-]?(?=\.?[0-9])[0-9]*(?:\.[0-9]*)?(?:[eE][+-]?[0-9]+)?\z`)
	integerLiteral = regexp.MustCompile(`^[+-]?[0-9]+$`)
)

// CanBeNumber reports whether v is nil, a bool, an integer, a float, or a
// string-like value whose text is a numeric literal such as "-12" or "1.5".
func CanBeNumber(v any) bool {
	if v == nil || cast.IsBool(v) || cast.IsInt(v) || cast.IsFloat(v) {
		return true
	}

	_, ok := numericText(v)
	return ok
}

// ToIntOrNil converts v to an int, or returns nil when v is not number-like.
//
// Floats and fractional strings are truncated toward zero, so "123.99"
// becomes 123. Values that do not fit into an int are not number-like.
func ToIntOrNil(v any) *int {
	if v == nil {
		return nil
	}

	if cast.IsInt(v) || cast.IsFloat(v) || cast.IsBool(v) {
		n, err := cast.Int(v)
		if err != nil {
			return nil
		}
		return &n
	}

	s, ok := numericText(v)
	if !ok {
		return nil
	}

	if integerLiteral.MatchString(s) {
		if n, err := cast.ParseInt(s); err == nil {
			return &n
		}
	}

	f, err := cast.ParseFloat(s)
	if err != nil {
		return nil
	}

	n, err := cast.Truncate(f)
	if err != nil {
		return nil
	}

	return &n
}

// ToInt converts v to an int. A nil value yields 0.
func ToInt(v any) (int, error) {
	if v == nil {
		return 0, nil
	}

	n := ToIntOrNil(v)
	if n == nil {
		return 0, NewInvalidTypeError(v, "int")
	}

	return *n, nil
}

// ToFloatOrNil converts v to a float64, or returns nil when v is not
// number-like.
func ToFloatOrNil(v any) *float64 {
	if v == nil {
		return nil
	}

	if cast.IsInt(v) || cast.IsFloat(v) || cast.IsBool(v) {
		f, err := cast.Float(v)
		if err != nil {
			return nil
		}
		return &f
	}

	s, ok := numericText(v)
	if !ok {
		return nil
	}

	f, err := cast.ParseFloat(s)
	if err != nil {
		return nil
	}

	return &f
}

// ToFloat converts v to a float64. A nil value yields 0.
func ToFloat(v any) (float64, error) {
	if v == nil {
		return 0, nil
	}

	f := ToFloatOrNil(v)
	if f == nil {
		return 0, NewInvalidTypeError(v, "float")
	}

	return *f, nil
}

// numericText returns the text of a string-like v when it is a numeric
// literal.
func numericText(v any) (string, bool) {
	s := ToStringOrNil(v)
	if s == nil || !numericLiteral.MatchString(*s) {
		return "", false
	}

	return *s, true
}

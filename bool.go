package typeutil

import (
	"reflect"

	"go.dw1.io/typeutil/internal/cast"
)

// CanBeBool reports whether v is nil or one of the boolean-like values: true,
// false, the integers 1 and 0, and the strings "1" and "0".
//
// Matching is exact on kind and value. Floats never match and neither do
// words such as "true" or "yes".
func CanBeBool(v any) bool {
	if v == nil {
		return true
	}

	_, ok := boolOf(v)
	return ok
}

// ToBoolOrNil converts a boolean-like v to a bool, or returns nil.
func ToBoolOrNil(v any) *bool {
	b, ok := boolOf(v)
	if !ok {
		return nil
	}

	return &b
}

// ToBool converts v to a bool. A nil value yields false.
func ToBool(v any) (bool, error) {
	if v == nil {
		return false, nil
	}

	b := ToBoolOrNil(v)
	if b == nil {
		return false, NewInvalidTypeError(v, "bool")
	}

	return *b, nil
}

// boolOf looks v up in the truth-like and fallacy-like sets.
func boolOf(v any) (value, ok bool) {
	switch {
	case cast.IsBool(v):
		return reflect.ValueOf(v).Bool(), true
	case cast.IsInt(v):
		n, err := cast.Int64(v)
		if err != nil {
			return false, false
		}
		return n == 1, n == 1 || n == 0
	case cast.IsString(v):
		s := reflect.ValueOf(v).String()
		return s == "1", s == "1" || s == "0"
	default:
		return false, false
	}
}

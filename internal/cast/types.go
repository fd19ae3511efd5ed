package cast

import (
	"reflect"

	"go.dw1.io/safemath"
)

// Integer is an alias for [safemath.Integer].
type Integer = safemath.Integer

// IsInt reports whether v's kind is one of the integer kinds eligible for
// safemath conversions. Named integer types count.
func IsInt(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	default:
		return false
	}
}

// IsFloat reports whether v's kind is float32 or float64.
func IsFloat(v any) bool {
	switch kindOf(v) {
	case reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// IsBool reports whether v's kind is bool.
func IsBool(v any) bool {
	return kindOf(v) == reflect.Bool
}

// IsString reports whether v's kind is string.
func IsString(v any) bool {
	return kindOf(v) == reflect.String
}

// IsScalar reports whether v is a bool, an integer, a float or a string.
func IsScalar(v any) bool {
	return IsBool(v) || IsInt(v) || IsFloat(v) || IsString(v)
}

// IsNil reports whether v is nil or a nil pointer, map, slice, func, chan or
// interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}

	return reflect.TypeOf(v).Kind()
}

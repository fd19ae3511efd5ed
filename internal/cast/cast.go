package cast

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/spf13/cast"
	"go.dw1.io/safemath"
)

// ErrUnsupported is returned when a value's kind cannot take part in the
// requested conversion.
var ErrUnsupported = errors.New("unsupported conversion")

// ErrOutOfRange is returned when a float does not fit into an int.
var ErrOutOfRange = errors.New("value out of range")

// Int converts an integer, float or bool value to int.
//
// Integer kinds go through safemath, so unsigned values above [math.MaxInt]
// fail with [safemath.ErrTruncation] rather than wrapping. Floats are
// truncated toward zero; NaN, infinities and values outside the int range
// fail with [ErrOutOfRange].
func Int(v any) (int, error) {
	switch {
	case IsInt(v):
		return toInt[int](v)
	case IsFloat(v):
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return 0, err
		}

		return Truncate(f)
	case IsBool(v):
		if reflect.ValueOf(v).Bool() {
			return 1, nil
		}

		return 0, nil
	default:
		return 0, fmt.Errorf("%w to int from %T", ErrUnsupported, v)
	}
}

// Int64 converts an integer kind to int64 through safemath.
func Int64(v any) (int64, error) {
	if !IsInt(v) {
		return 0, fmt.Errorf("%w to int64 from %T", ErrUnsupported, v)
	}

	return toInt[int64](v)
}

// Float converts an integer, float or bool value to float64.
func Float(v any) (float64, error) {
	if !IsInt(v) && !IsFloat(v) && !IsBool(v) {
		return 0, fmt.Errorf("%w to float64 from %T", ErrUnsupported, v)
	}

	return cast.ToFloat64E(v)
}

// Truncate drops the fractional part of f and returns it as an int.
func Truncate(f float64) (int, error) {
	t := math.Trunc(f)
	if math.IsNaN(t) || t < math.MinInt || t >= math.MaxInt {
		return 0, fmt.Errorf("%w: %v", ErrOutOfRange, f)
	}

	return int(t), nil
}

// String formats a scalar or a [fmt.Stringer] as text. Booleans become "1"
// and "0"; numbers use the shortest decimal representation.
func String(v any) (string, error) {
	if IsBool(v) {
		if reflect.ValueOf(v).Bool() {
			return "1", nil
		}

		return "0", nil
	}

	if _, ok := v.(fmt.Stringer); !ok && !IsScalar(v) {
		return "", fmt.Errorf("%w to string from %T", ErrUnsupported, v)
	}

	return cast.ToStringE(v)
}

// ParseInt parses a base 10 integer literal, with an optional sign, to int.
func ParseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 0)
	if err != nil {
		return 0, err
	}

	return int(n), nil
}

// ParseFloat parses a decimal literal to float64.
func ParseFloat(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty string", ErrUnsupported)
	}

	return cast.ToFloat64E(s)
}

// toInt converts an integer kind to I using safemath to avoid
// overflow/underflow. Named integer types are widened to their 64-bit base
// first.
func toInt[I Integer](v any) (I, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return safemath.ConvertAny[I](rv.Int())
	default:
		return safemath.ConvertAny[I](rv.Uint())
	}
}

// Package typeutil coerces loosely typed values into strict Go types.
//
// Every conversion family comes in three shapes:
//
//   - CanBeX reports whether a value is X-like.
//   - ToXOrNil converts a value, returning nil when it is not X-like.
//   - ToX converts a value, returning an [*InvalidTypeError] when it is not
//     X-like.
//
// The strict bool, number, string and array conversions map a nil value to the
// zero value of their target type. Date conversions do not: nil is not a date.
//
// All functions are plain top-level functions, so they can be handed to
// higher-order helpers directly:
//
//	flags := slices.DeleteFunc(values, func(v any) bool {
//		return !typeutil.CanBeBool(v)
//	})
//
// Integer narrowing goes through [safemath] and scalar formatting through
// [cast]. JSON is handled by the [go.dw1.io/typeutil/json] package.
//
// [safemath]: https://pkg.go.dev/go.dw1.io/safemath
// [cast]: https://pkg.go.dev/github.com/spf13/cast
package typeutil

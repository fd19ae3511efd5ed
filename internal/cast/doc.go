// Package cast converts scalar values between Go's basic types.
//
// It uses [safemath] for integer conversions to guard against overflow and
// silent truncation, and [cast] for float widening, float parsing and
// locale-independent formatting.
package cast

package typeutil

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	ftime "github.com/viant/structology/format/time"

	"go.dw1.io/typeutil/internal/cast"
	"go.dw1.io/typeutil/internal/regexp"
	"go.dw1.io/typeutil/internal/relative"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

type dateOptions struct {
	location *time.Location
	now      func() time.Time
	dayFirst bool
}

// DateOption configures how text is turned into a [time.Time].
type DateOption func(*dateOptions)

// WithLocation sets the location used for text without an explicit zone.
// Defaults to [time.Local].
func WithLocation(loc *time.Location) DateOption {
	return func(o *dateOptions) {
		if loc != nil {
			o.location = loc
		}
	}
}

// WithClock sets the source of the current time for relative expressions
// such as "tomorrow" or "+3 hours". Defaults to [time.Now].
func WithClock(now func() time.Time) DateOption {
	return func(o *dateOptions) {
		if now != nil {
			o.now = now
		}
	}
}

// WithDayFirst reads ambiguous numeric dates such as "04/02/2014" as
// day/month instead of month/day.
func WithDayFirst() DateOption {
	return func(o *dateOptions) {
		o.dayFirst = true
	}
}

func newDateOptions(opts []DateOption) *dateOptions {
	o := &dateOptions{location: time.Local, now: time.Now}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// CanBeDate reports whether v is a [time.Time], a non-nil *time.Time, or a
// string or [fmt.Stringer] whose text is a date. Numbers, numeric strings and
// bools are never dates.
func CanBeDate(v any) bool {
	return ToDatetimeOrNil(v) != nil
}

// ToDatetimeOrNil converts v to a time, or returns nil when v is not
// date-like. A *time.Time is copied so the result never aliases the input.
//
// Text is read first as a relative expression ("today", "next monday",
// "2 days ago 16:00") and then as an absolute date in any common layout.
func ToDatetimeOrNil(v any, opts ...DateOption) *time.Time {
	switch t := v.(type) {
	case time.Time:
		return &t
	case *time.Time:
		if t == nil {
			return nil
		}
		c := *t
		return &c
	}

	s, ok := dateText(v)
	if !ok {
		return nil
	}

	t, err := parseDate(s, newDateOptions(opts))
	if err != nil {
		return nil
	}

	return &t
}

// ToDatetime converts v to a time. Unlike the other strict conversions, a nil
// value is an error.
func ToDatetime(v any, opts ...DateOption) (time.Time, error) {
	t := ToDatetimeOrNil(v, opts...)
	if t == nil {
		return time.Time{}, NewInvalidTypeError(v, "time.Time")
	}

	return *t, nil
}

// ToDateFormatOrNil converts v to a time and formats it with an ISO style
// pattern such as "YYYY-MM-DD hh:mm:ss", or returns nil when v is not
// date-like.
func ToDateFormatOrNil(v any, format string, opts ...DateOption) *string {
	t := ToDatetimeOrNil(v, opts...)
	if t == nil {
		return nil
	}

	s := t.Format(ftime.DateFormatToTimeLayout(format))
	return &s
}

// ToDateFormat is the strict form of [ToDateFormatOrNil].
func ToDateFormat(v any, format string, opts ...DateOption) (string, error) {
	t, err := ToDatetime(v, opts...)
	if err != nil {
		return "", err
	}

	return t.Format(ftime.DateFormatToTimeLayout(format)), nil
}

// ToTimestampOrNil returns v as Unix seconds. Integers and digit-only
// strings are taken as timestamps already; date-like values are converted.
func ToTimestampOrNil(v any, opts ...DateOption) *int64 {
	if cast.IsInt(v) {
		n, err := cast.Int64(v)
		if err != nil {
			return nil
		}
		return &n
	}

	if s, ok := v.(string); ok && digitsOnly.MatchString(s) {
		n, err := cast.ParseInt(s)
		if err != nil {
			return nil
		}
		ts := int64(n)
		return &ts
	}

	t := ToDatetimeOrNil(v, opts...)
	if t == nil {
		return nil
	}

	ts := t.Unix()
	return &ts
}

// DateModifyOrNil converts v to a time and applies a relative modifier such
// as "+3 hours", "next friday" or "tomorrow noon" to it. It returns nil when
// v is not date-like or the modifier cannot be applied.
func DateModifyOrNil(v any, modifier string, opts ...DateOption) *time.Time {
	t := ToDatetimeOrNil(v, opts...)
	if t == nil {
		return nil
	}

	m, err := relative.Apply(*t, modifier)
	if err != nil {
		return nil
	}

	return &m
}

// dateText returns the text of a string or Stringer value that may hold a
// date. Numeric literals and blank text are rejected.
func dateText(v any) (string, bool) {
	if cast.IsNil(v) {
		return "", false
	}

	if _, ok := v.(fmt.Stringer); !ok && !cast.IsString(v) {
		return "", false
	}

	s, err := cast.String(v)
	if err != nil || s == "" || numericLiteral.MatchString(strings.TrimSpace(s)) {
		return "", false
	}

	return s, true
}

func parseDate(s string, o *dateOptions) (time.Time, error) {
	if t, err := relative.Parse(s, o.now().In(o.location)); err == nil {
		return t, nil
	}

	return dateparse.ParseIn(s, o.location,
		dateparse.PreferMonthFirst(!o.dayFirst),
		dateparse.RetryAmbiguousDateWithSwap(true),
	)
}

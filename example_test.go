package typeutil_test

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"go.dw1.io/typeutil"
)

func ExampleToInt() {
	n, err := typeutil.ToInt("123.99")
	fmt.Println(n, err)

	_, err = typeutil.ToInt("ten")
	fmt.Println(err)
	fmt.Println(errors.Is(err, typeutil.ErrInvalidType))
	// Output:
	// 123 <nil>
	// given value of type string cannot be cast to int
	// true
}

func ExampleCanBeBool() {
	values := []any{true, 1, "0", "yes", 2.0, nil}
	fmt.Println(slices.DeleteFunc(values, func(v any) bool { return !typeutil.CanBeBool(v) }))
	// Output: [true 1 0 <nil>]
}

func ExampleToArrayOrNil() {
	a := typeutil.ToArrayOrNil(map[string]int{"b": 2, "a": 1})
	for k, v := range a.All() {
		fmt.Println(k, v)
	}
	// Output:
	// a 1
	// b 2
}

func ExampleToJSONOrNil() {
	a := typeutil.JSONToArrayOrNil(`{"name":"zażółć","tags":["x","y"]}`)
	fmt.Println(*typeutil.ToJSONOrNil(a))
	// Output: {"name":"zażółć","tags":["x","y"]}
}

func ExampleDateModifyOrNil() {
	t := typeutil.DateModifyOrNil("2020-11-18 16:00:00", "+3 hours", typeutil.WithLocation(time.UTC))
	fmt.Println(t.Format(time.DateTime))
	// Output: 2020-11-18 19:00:00
}

func ExampleToDateFormat() {
	now := func() time.Time { return time.Date(2020, time.November, 18, 10, 0, 0, 0, time.UTC) }

	s, _ := typeutil.ToDateFormat("tomorrow noon", "YYYY-MM-DD hh:mm", typeutil.WithClock(now), typeutil.WithLocation(time.UTC))
	fmt.Println(s)
	// Output: 2020-11-19 12:00
}

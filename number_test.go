package typeutil

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanBeNumber(t *testing.T) {
	valid := []any{
		123, int8(-1), uint64(42), 123.45, float32(1.5),
		"123", "123.45", "-12", "+3", ".5", "5.", "1e3", "-2.5E-3",
		stringObject{"123.45"}, label("7"),
		true, false, nil,
	}
	for _, v := range valid {
		assert.True(t, CanBeNumber(v), "%#v", v)
	}

	invalid := []any{
		[]any{}, "10 123.45", stringObject{"nine"}, struct{}{},
		"", " 1", "1 ", "1,000", "0x1A", "1.2.3", ".", "+", "e3", "abc",
		"123\n", "1.5\n", "\n", "1e3\n", stringObject{"12\n"},
	}
	for _, v := range invalid {
		assert.False(t, CanBeNumber(v), "%#v", v)
		assert.Nil(t, ToIntOrNil(v), "%#v", v)
		assert.Nil(t, ToFloatOrNil(v), "%#v", v)

		_, err := ToInt(v)
		assert.ErrorIs(t, err, ErrInvalidType)
		_, err = ToFloat(v)
		assert.ErrorIs(t, err, ErrInvalidType)
	}
}

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 123, 123},
		{"float", 123.99, 123},
		{"negative float", -123.99, -123},
		{"int string", "123", 123},
		{"float string", "123.99", 123},
		{"leading zeros", "0012", 12},
		{"exponent", "1e3", 1000},
		{"stringer", stringObject{"123.45"}, 123},
		{"true", true, 1},
		{"false", false, 0},
		{"int16", int16(-7), -7},
		{"uint32", uint32(7), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ptr(tt.want), ToIntOrNil(tt.in))

			got, err := ToInt(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestToIntOutOfRange(t *testing.T) {
	for _, v := range []any{uint64(math.MaxUint64), math.NaN(), math.Inf(1), 1e300, "1e300"} {
		assert.Nil(t, ToIntOrNil(v), "%#v", v)
	}
}

func TestToFloat(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"int", 123, 123},
		{"float", 123.99, 123.99},
		{"int string", "123", 123},
		{"float string", "123.99", 123.99},
		{"stringer", stringObject{"123.45"}, 123.45},
		{"true", true, 1},
		{"false", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, ptr(tt.want), ToFloatOrNil(tt.in))

			got, err := ToFloat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberNil(t *testing.T) {
	assert.Nil(t, ToIntOrNil(nil))
	assert.Nil(t, ToFloatOrNil(nil))

	n, err := ToInt(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	f, err := ToFloat(nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, f)
}

func TestNumberFilterAndMap(t *testing.T) {
	number := stringObject{"123.45"}

	values := []any{1, 12, "123.99", number, nil, "string", []any{}, struct{}{}}
	filtered := slices.DeleteFunc(slices.Clone(values), func(v any) bool { return !CanBeNumber(v) })
	assert.Equal(t, []any{1, 12, "123.99", number, nil}, filtered)

	var ints []*int
	var floats []*float64
	for _, v := range []any{1, 12, "123.99", number, "string", []any{}} {
		ints = append(ints, ToIntOrNil(v))
		floats = append(floats, ToFloatOrNil(v))
	}
	assert.Equal(t, []*int{ptr(1), ptr(12), ptr(123), ptr(123), nil, nil}, ints)
	assert.Equal(t, []*float64{ptr(1.0), ptr(12.0), ptr(123.99), ptr(123.45), nil, nil}, floats)
}

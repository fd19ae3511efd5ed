package cast

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.dw1.io/safemath"
)

type level int

type label string

func (l label) String() string { return "label:" + string(l) }

func TestKinds(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		for _, v := range []any{int(1), int8(1), int16(1), int32(1), int64(1),
			uint(1), uint8(1), uint16(1), uint32(1), uint64(1), uintptr(1), level(1), time.Duration(1)} {
			assert.True(t, IsInt(v), "%T", v)
		}
	})

	t.Run("nonIntegers", func(t *testing.T) {
		for _, v := range []any{nil, 1.5, float32(1), "1", true, []int{1}} {
			assert.False(t, IsInt(v), "%T", v)
		}
	})

	t.Run("scalars", func(t *testing.T) {
		assert.True(t, IsScalar(label("x")))
		assert.True(t, IsScalar(false))
		assert.False(t, IsScalar(struct{}{}))
		assert.False(t, IsScalar(nil))
	})

	t.Run("nil", func(t *testing.T) {
		var p *int
		var m map[string]int
		assert.True(t, IsNil(nil))
		assert.True(t, IsNil(p))
		assert.True(t, IsNil(m))
		assert.False(t, IsNil(0))
		assert.False(t, IsNil(""))
	})
}

func TestInt(t *testing.T) {
	t.Run("integers", func(t *testing.T) {
		got, err := Int(int8(math.MaxInt8))
		require.NoError(t, err)
		assert.Equal(t, math.MaxInt8, got)

		got, err = Int(level(7))
		require.NoError(t, err)
		assert.Equal(t, 7, got)
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Int(uint64(math.MaxUint64))
		require.Error(t, err)
		assert.True(t, errors.Is(err, safemath.ErrTruncation), "got %v", err)
	})

	t.Run("floatsTruncate", func(t *testing.T) {
		got, err := Int(123.99)
		require.NoError(t, err)
		assert.Equal(t, 123, got)

		got, err = Int(float32(-2.5))
		require.NoError(t, err)
		assert.Equal(t, -2, got)
	})

	t.Run("floatOutOfRange", func(t *testing.T) {
		for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), 1e20} {
			_, err := Int(f)
			assert.ErrorIs(t, err, ErrOutOfRange, "%v", f)
		}
	})

	t.Run("bools", func(t *testing.T) {
		got, err := Int(true)
		require.NoError(t, err)
		assert.Equal(t, 1, got)

		got, err = Int(false)
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := Int("1")
		assert.ErrorIs(t, err, ErrUnsupported)
	})
}

func TestInt64(t *testing.T) {
	got, err := Int64(uint32(math.MaxUint32))
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxUint32), got)

	_, err = Int64(1.0)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestFloat(t *testing.T) {
	got, err := Float(123)
	require.NoError(t, err)
	assert.Equal(t, 123.0, got)

	got, err = Float(true)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got)

	got, err = Float(float32(0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)

	_, err = Float("1.5")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "string", in: "hello", want: "hello"},
		{name: "true", in: true, want: "1"},
		{name: "false", in: false, want: "0"},
		{name: "int", in: 123, want: "123"},
		{name: "float", in: 123.45, want: "123.45"},
		{name: "wholeFloat", in: 1.0, want: "1"},
		{name: "float32", in: float32(0.1), want: "0.1"},
		{name: "stringer", in: label("x"), want: "label:x"},
		{name: "namedInt", in: level(3), want: "3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := String(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := String([]string{"a"})
	assert.ErrorIs(t, err, ErrUnsupported)
}

func TestParse(t *testing.T) {
	n, err := ParseInt("-0042")
	require.NoError(t, err)
	assert.Equal(t, -42, n)

	_, err = ParseInt("99999999999999999999")
	assert.Error(t, err)

	f, err := ParseFloat("123.99")
	require.NoError(t, err)
	assert.Equal(t, 123.99, f)

	_, err = ParseFloat("")
	assert.Error(t, err)
}

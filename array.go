package typeutil

import (
	"cmp"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Entry is one key/value pair of an [Array].
type Entry struct {
	Key   any
	Value any
}

// Array is an ordered keyed collection. List-shaped sources are keyed 0..n-1;
// maps and key/value iterators keep their own keys.
type Array []Entry

// Iterable is implemented by values that can be walked as a finite sequence
// of key/value pairs.
type Iterable interface {
	All() iter.Seq2[any, any]
}

// Countable is implemented by values that know their element count.
type Countable interface {
	Len() int
}

// All iterates the entries in order.
func (a Array) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for _, e := range a {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Len returns the number of entries.
func (a Array) Len() int {
	return len(a)
}

// Get returns the value stored under key.
func (a Array) Get(key any) (any, bool) {
	for _, e := range a {
		if keysEqual(e.Key, key) {
			return e.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys in order.
func (a Array) Keys() []any {
	keys := make([]any, len(a))
	for i, e := range a {
		keys[i] = e.Key
	}
	return keys
}

// Values returns the values in order.
func (a Array) Values() []any {
	values := make([]any, len(a))
	for i, e := range a {
		values[i] = e.Value
	}
	return values
}

// IsList reports whether the keys are exactly 0..n-1 in order.
func (a Array) IsList() bool {
	for i, e := range a {
		if k, ok := e.Key.(int); !ok || k != i {
			return false
		}
	}
	return true
}

// CanBeArray reports whether v is nil or iterable: an [Array], an
// [Iterable], a slice, an array, a pointer to an array, a map, or an
// iter.Seq / iter.Seq2 function.
func CanBeArray(v any) bool {
	return v == nil || isIterable(v)
}

// ToArrayOrNil materializes v into an [Array], or returns nil when v is not
// iterable. An Array is returned unchanged; a nil Array becomes an empty one.
//
// Map entries are ordered by key since Go map iteration order is unspecified.
// Keys that cannot be compared, such as a struct holding a slice in an
// interface field, are never treated as repeats.
func ToArrayOrNil(v any) Array {
	if !isIterable(v) {
		return nil
	}

	if a, ok := v.(Array); ok {
		if a == nil {
			return Array{}
		}
		return a
	}

	out := make(Array, 0, lenHint(v))
	index := make(map[any]int)
	for k, val := range entries(v) {
		if isComparable(k) {
			if i, ok := index[k]; ok {
				out[i].Value = val
				continue
			}
			index[k] = len(out)
		}
		out = append(out, Entry{Key: k, Value: val})
	}

	return out
}

// ToArray converts v to an [Array]. A nil value yields an empty Array.
func ToArray(v any) (Array, error) {
	if v == nil {
		return Array{}, nil
	}

	a := ToArrayOrNil(v)
	if a == nil {
		return nil, NewInvalidTypeError(v, "array")
	}

	return a, nil
}

// ToArrayListOrNil collects the values of an iterable v in iteration order,
// dropping keys, or returns nil when v is not iterable.
func ToArrayListOrNil(v any) []any {
	if !isIterable(v) {
		return nil
	}

	if a, ok := v.(Array); ok {
		return a.Values()
	}

	out := make([]any, 0, lenHint(v))
	for _, val := range entries(v) {
		out = append(out, val)
	}

	return out
}

// ToArrayList converts v to a zero-indexed list. A nil value yields an empty
// list.
func ToArrayList(v any) ([]any, error) {
	if v == nil {
		return []any{}, nil
	}

	l := ToArrayListOrNil(v)
	if l == nil {
		return nil, NewInvalidTypeError(v, "array list")
	}

	return l, nil
}

// IsCountable reports whether v is a slice, an array, a pointer to an array,
// a map, or a [Countable].
func IsCountable(v any) bool {
	if _, ok := v.(Countable); ok {
		return true
	}

	switch kindOf(v) {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	case reflect.Pointer:
		return isArrayPointer(v)
	default:
		return false
	}
}

// CountOrNil returns the element count of a countable v, or nil.
func CountOrNil(v any) *int {
	if !IsCountable(v) {
		return nil
	}

	var n int
	if c, ok := v.(Countable); ok {
		n = c.Len()
	} else {
		n = reflect.Indirect(reflect.ValueOf(v)).Len()
	}

	return &n
}

func isIterable(v any) bool {
	switch v.(type) {
	case nil:
		return false
	case Array, Iterable:
		return true
	}

	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	case reflect.Pointer:
		return isArrayPointer(v)
	case reflect.Func:
		return !reflect.ValueOf(v).IsNil() && (t.CanSeq2() || t.CanSeq())
	default:
		return false
	}
}

// entries walks an iterable value as key/value pairs.
func entries(v any) iter.Seq2[any, any] {
	if it, ok := v.(Iterable); ok {
		return it.All()
	}

	rv := reflect.ValueOf(v)
	return func(yield func(any, any) bool) {
		switch rv.Kind() {
		case reflect.Map:
			keys := rv.MapKeys()
			slices.SortFunc(keys, compareKeys)
			for _, k := range keys {
				if !yield(k.Interface(), rv.MapIndex(k).Interface()) {
					return
				}
			}
		case reflect.Func:
			if rv.Type().CanSeq2() {
				for k, val := range rv.Seq2() {
					if !yield(k.Interface(), val.Interface()) {
						return
					}
				}
				return
			}
			i := 0
			for val := range rv.Seq() {
				if !yield(i, val.Interface()) {
					return
				}
				i++
			}
		default:
			rv = reflect.Indirect(rv)
			for i := range rv.Len() {
				if !yield(i, rv.Index(i).Interface()) {
					return
				}
			}
		}
	}
}

func lenHint(v any) int {
	if n := CountOrNil(v); n != nil {
		return *n
	}
	return 0
}

func isArrayPointer(v any) bool {
	t := reflect.TypeOf(v)
	return t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Array && !reflect.ValueOf(v).IsNil()
}

// isComparable reports whether v can be compared with == and used as a map
// key without panicking. Interface values are checked by their dynamic
// contents.
func isComparable(v any) bool {
	return v == nil || hashable(reflect.ValueOf(v))
}

func hashable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Invalid:
		return true
	case reflect.Interface:
		return v.IsNil() || hashable(v.Elem())
	case reflect.Array:
		if !v.Type().Comparable() {
			return false
		}
		for i := range v.Len() {
			if !hashable(v.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Struct:
		if !v.Type().Comparable() {
			return false
		}
		for i := range v.NumField() {
			if !hashable(v.Field(i)) {
				return false
			}
		}
		return true
	default:
		return v.Type().Comparable()
	}
}

func keysEqual(a, b any) bool {
	if !isComparable(a) || !isComparable(b) {
		return false
	}
	return a == b
}

// compareKeys orders integers numerically, then strings lexically, then
// everything else by formatted value.
func compareKeys(a, b reflect.Value) int {
	a, b = concrete(a), concrete(b)
	ra, rb := keyRank(a), keyRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case 0:
		return cmp.Compare(a.Int(), b.Int())
	case 1:
		return cmp.Compare(a.Uint(), b.Uint())
	case 2:
		return cmp.Compare(a.Float(), b.Float())
	case 3:
		return cmp.Compare(a.String(), b.String())
	default:
		return cmp.Compare(keyText(a), keyText(b))
	}
}

func concrete(k reflect.Value) reflect.Value {
	for k.Kind() == reflect.Interface && !k.IsNil() {
		k = k.Elem()
	}
	return k
}

func keyText(k reflect.Value) string {
	if !k.IsValid() || (k.Kind() == reflect.Interface && k.IsNil()) {
		return ""
	}
	return fmt.Sprint(k.Interface())
}

func keyRank(k reflect.Value) int {
	switch k.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return 1
	case reflect.Float32, reflect.Float64:
		return 2
	case reflect.String:
		return 3
	default:
		return 4
	}
}

func kindOf(v any) reflect.Kind {
	if v == nil {
		return reflect.Invalid
	}
	return reflect.TypeOf(v).Kind()
}

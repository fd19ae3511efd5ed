package typeutil

import (
	"bytes"
	"fmt"

	"go.dw1.io/typeutil/internal/cast"
	"go.dw1.io/typeutil/json"
)

// ToJSONOrNil encodes v as JSON text, or returns nil when v cannot be
// represented (channels, funcs, NaN and the like). Non-ASCII characters are
// left unescaped.
func ToJSONOrNil(v any) *string {
	s, err := json.MarshalString(v)
	if err != nil {
		return nil
	}

	return &s
}

// JSONToArrayOrNil decodes a JSON object or array held in the string v into
// an [Array], or returns nil when v is not a string, is not valid JSON, or
// does not hold an object or array.
//
// Objects and arrays decode into Arrays at every depth, in document order. A
// repeated key keeps the last value. Integer literals decode as int, other
// numbers as float64.
func JSONToArrayOrNil(v any) Array {
	s, ok := v.(string)
	if !ok {
		return nil
	}

	members, err := json.DecodeContainer(s)
	if err != nil {
		return nil
	}

	return fromMembers(members)
}

// MarshalJSON encodes a list-shaped Array (keys 0..n-1 in order) as a JSON
// array and anything else as a JSON object keyed by the text of each key.
func (a Array) MarshalJSON() ([]byte, error) {
	if a.IsList() {
		return json.Marshal(a.Values())
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range a {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(keyString(e.Key))
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

func fromMembers(members []json.Member) Array {
	out := make(Array, len(members))
	for i, m := range members {
		value := m.Value
		if nested, ok := value.([]json.Member); ok {
			value = fromMembers(nested)
		}
		out[i] = Entry{Key: m.Key, Value: value}
	}

	return out
}

func keyString(k any) string {
	if k == nil {
		return ""
	}
	if s, err := cast.String(k); err == nil {
		return s
	}

	return fmt.Sprint(k)
}

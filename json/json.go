package json

import (
	"errors"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/bytedance/sonic/ast"
	"github.com/spf13/cast"
)

// DefaultConfig is the configuration the package starts with.
var DefaultConfig = sonic.Config{
	EscapeHTML:       false,
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
}

var api = DefaultConfig.Froze()

var (
	// ErrInvalid indicates a payload that is not valid JSON.
	ErrInvalid = errors.New("invalid JSON")

	// ErrNotContainer indicates a valid payload whose top-level value is
	// neither an array nor an object.
	ErrNotContainer = errors.New("JSON value is not an array or object")
)

// Member is one element of a decoded array or property of a decoded object.
// Key is the int index for arrays and the string name for objects.
type Member struct {
	Key   any
	Value any
}

// Marshal encodes a Go value as JSON using the current config.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// MarshalString encodes a Go value as a JSON string using the current config.
func MarshalString(v any) (string, error) {
	return api.MarshalToString(v)
}

// Valid reports whether data is a complete, valid JSON document.
func Valid(data []byte) bool {
	return api.Valid(data)
}

// DecodeContainer decodes a JSON array or object into its members in
// document order. Nested arrays and objects become []Member as well. A
// repeated object key keeps its first position and its last value. Integer
// literals that fit decode as int, other numbers as float64, and remaining
// scalars as they would into an any.
func DecodeContainer(data string) ([]Member, error) {
	if !Valid([]byte(data)) {
		return nil, ErrInvalid
	}

	root := ast.NewRaw(data)
	switch root.TypeSafe() {
	case ast.V_ARRAY, ast.V_OBJECT:
		return members(&root)
	default:
		return nil, ErrNotContainer
	}
}

// SetConfig replaces the configuration used by every function of the
// package.
func SetConfig(config *sonic.Config) {
	api = config.Froze()
}

func members(node *ast.Node) ([]Member, error) {
	out := []Member{}
	index := map[string]int{}

	var err error
	walkErr := node.ForEach(func(seq ast.Sequence, child *ast.Node) bool {
		var value any
		if value, err = decode(child); err != nil {
			return false
		}

		if seq.Key == nil {
			out = append(out, Member{Key: seq.Index, Value: value})
			return true
		}

		if i, ok := index[*seq.Key]; ok {
			out[i].Value = value
			return true
		}
		index[*seq.Key] = len(out)
		out = append(out, Member{Key: *seq.Key, Value: value})
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	if err != nil {
		return nil, err
	}

	return out, nil
}

func decode(node *ast.Node) (any, error) {
	switch node.TypeSafe() {
	case ast.V_ARRAY, ast.V_OBJECT:
		return members(node)
	case ast.V_NUMBER:
		return number(node)
	default:
		return node.Interface()
	}
}

// number decodes integer literals that fit into an int as int and every
// other number as float64.
func number(node *ast.Node) (any, error) {
	raw, err := node.Raw()
	if err != nil {
		return nil, err
	}

	if !strings.ContainsAny(raw, ".eE") {
		if i, err := cast.ToIntE(raw); err == nil {
			return i, nil
		}
	}

	return node.Float64()
}

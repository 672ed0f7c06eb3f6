package document

import (
	"maps"
	"math"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Parse parses data as JSON or YAML depending on the extension of name.
func Parse(name string, data []byte) (Value, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return ParseJSON(name, data)
	case ".yaml", ".yml":
		return ParseYAML(name, data)
	default:
		return Value{}, &UnsupportedFormatError{Name: name}
	}
}

// FromAny converts a tree of plain Go values into a Value. Supported leaves are nil,
// bool, the signed and unsigned integer types, float32, float64, string and
// json.Number (kinded by its lexeme). Containers are []any, []Value, map[string]any
// and map[string]Value; map keys are sorted because Go maps have no order.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return NullValue(), nil
	case Value:
		return t, nil
	case bool:
		return BooleanValue(t), nil
	case int:
		return IntegerValue(int64(t)), nil
	case int8:
		return IntegerValue(int64(t)), nil
	case int16:
		return IntegerValue(int64(t)), nil
	case int32:
		return IntegerValue(int64(t)), nil
	case int64:
		return IntegerValue(t), nil
	case uint8:
		return IntegerValue(int64(t)), nil
	case uint16:
		return IntegerValue(int64(t)), nil
	case uint32:
		return IntegerValue(int64(t)), nil
	case uint:
		return fromUint(uint64(t), x)
	case uint64:
		return fromUint(t, x)
	case float32:
		return RealValue(float64(t)), nil
	case float64:
		return RealValue(t), nil
	case string:
		return TextValue(t), nil
	case json.Number:
		return numberFromLexeme("value", t.String())
	case []Value:
		return SequenceValue(t...), nil
	case []any:
		items := make([]Value, 0, len(t))
		for _, item := range t {
			v, err := FromAny(item)
			if err != nil {
				return Value{}, err
			}
			items = append(items, v)
		}
		return Value{kind: Sequence, seq: items}, nil
	case map[string]Value:
		keys := sortedKeys(t)
		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			entries = append(entries, Entry{Key: k, Value: t[k]})
		}
		return MappingValue(entries...), nil
	case map[string]any:
		keys := sortedKeys(t)
		entries := make([]Entry, 0, len(keys))
		for _, k := range keys {
			v, err := FromAny(t[k])
			if err != nil {
				return Value{}, err
			}
			entries = append(entries, Entry{Key: k, Value: v})
		}
		return MappingValue(entries...), nil
	}
	return Value{}, &UnsupportedTypeError{Value: x}
}

// MustFromAny is like FromAny but panics on error. It is intended for fixtures.
func MustFromAny(x any) Value {
	v, err := FromAny(x)
	if err != nil {
		panic(err)
	}
	return v
}

func fromUint(u uint64, original any) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, &UnsupportedTypeError{Value: original}
	}
	return IntegerValue(int64(u)), nil
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

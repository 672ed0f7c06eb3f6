package document

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// ParseJSON parses a JSON document. Numbers keep the kind of their lexeme: a number
// written with a fraction or exponent is a Real, any other number is an Integer.
// Objects keep their key order, and a key repeated within one object is an error.
// The name is only used in error messages.
func ParseJSON(name string, data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, &EmptyDocumentError{Name: name}
	}
	if !gjson.ValidBytes(data) {
		return Value{}, &InvalidJSONError{Name: name}
	}
	return fromResult(name, gjson.ParseBytes(data))
}

func fromResult(name string, r gjson.Result) (Value, error) {
	switch r.Type {
	case gjson.Null:
		return NullValue(), nil
	case gjson.False:
		return BooleanValue(false), nil
	case gjson.True:
		return BooleanValue(true), nil
	case gjson.String:
		return TextValue(r.Str), nil
	case gjson.Number:
		return numberFromLexeme(name, strings.TrimSpace(r.Raw))
	case gjson.JSON:
		if r.IsArray() {
			return sequenceFromResult(name, r)
		}
		return mappingFromResult(name, r)
	}
	return Value{}, &InvalidJSONError{Name: name}
}

func sequenceFromResult(name string, r gjson.Result) (Value, error) {
	var items []Value
	var err error
	r.ForEach(func(_, item gjson.Result) bool {
		var v Value
		if v, err = fromResult(name, item); err != nil {
			return false
		}
		items = append(items, v)
		return true
	})
	if err != nil {
		return Value{}, err
	}
	return Value{kind: Sequence, seq: items}, nil
}

func mappingFromResult(name string, r gjson.Result) (Value, error) {
	var entries []Entry
	seen := make(map[string]struct{})
	var err error
	r.ForEach(func(key, item gjson.Result) bool {
		if _, dup := seen[key.Str]; dup {
			err = &DuplicateKeyError{Name: name, Key: key.Str}
			return false
		}
		seen[key.Str] = struct{}{}

		var v Value
		if v, err = fromResult(name, item); err != nil {
			return false
		}
		entries = append(entries, Entry{Key: key.Str, Value: v})
		return true
	})
	if err != nil {
		return Value{}, err
	}
	return MappingValue(entries...), nil
}

// numberFromLexeme decides the kind of a JSON number from how it was written.
func numberFromLexeme(name, lexeme string) (Value, error) {
	if strings.ContainsAny(lexeme, ".eE") {
		f, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			return Value{}, &InvalidNumberError{Name: name, Lexeme: lexeme, Wrapped: err}
		}
		return RealValue(f), nil
	}
	i, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return Value{}, &InvalidNumberError{Name: name, Lexeme: lexeme, Wrapped: err}
	}
	return IntegerValue(i), nil
}

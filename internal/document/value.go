// Package document provides the immutable, kind-tagged tree that every configuration
// document is parsed into before validation.
package document

import (
	"strconv"
	"strings"
)

// Kind is the primitive kind of a Value. It is decided when the value is created
// (normally by a parser) and never inferred later by coercion: a boolean is never
// an integer, and an integer lexeme is never a real.
type Kind int

const (
	Null Kind = iota
	Integer
	Real
	Boolean
	Text
	Sequence
	Mapping
)

var kindNames = [...]string{
	Null:     "Null",
	Integer:  "Integer",
	Real:     "Real",
	Boolean:  "Boolean",
	Text:     "Text",
	Sequence: "Sequence",
	Mapping:  "Mapping",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is a node in a configuration document. The zero Value is Null.
// A Value has no mutating methods, so it may be shared freely between goroutines.
type Value struct {
	kind Kind
	i    int64
	r    float64
	b    bool
	s    string
	seq  []Value
	m    *mapping
}

// mapping keeps keys in document order alongside an index for lookups.
type mapping struct {
	keys   []string
	values map[string]Value
}

// Entry is a key/value pair used to build a Mapping value.
type Entry struct {
	Key   string
	Value Value
}

// NullValue returns the null value.
func NullValue() Value { return Value{} }

// IntegerValue returns an Integer value.
func IntegerValue(i int64) Value { return Value{kind: Integer, i: i} }

// RealValue returns a Real value.
func RealValue(r float64) Value { return Value{kind: Real, r: r} }

// BooleanValue returns a Boolean value.
func BooleanValue(b bool) Value { return Value{kind: Boolean, b: b} }

// TextValue returns a Text value.
func TextValue(s string) Value { return Value{kind: Text, s: s} }

// SequenceValue returns a Sequence holding a copy of items.
func SequenceValue(items ...Value) Value {
	seq := make([]Value, len(items))
	copy(seq, items)
	return Value{kind: Sequence, seq: seq}
}

// MappingValue returns a Mapping built from entries in the order given.
// A repeated key keeps its first position and its last value.
func MappingValue(entries ...Entry) Value {
	m := &mapping{
		keys:   make([]string, 0, len(entries)),
		values: make(map[string]Value, len(entries)),
	}
	for _, e := range entries {
		if _, ok := m.values[e.Key]; !ok {
			m.keys = append(m.keys, e.Key)
		}
		m.values[e.Key] = e.Value
	}
	return Value{kind: Mapping, m: m}
}

// Kind returns the kind tag of v.
func (v Value) Kind() Kind { return v.kind }

// Is reports whether v has kind k.
func (v Value) Is(k Kind) bool { return v.kind == k }

// Int returns the integer held by v, and false if v is not an Integer.
func (v Value) Int() (int64, bool) { return v.i, v.kind == Integer }

// Float returns the real number held by v, and false if v is not a Real.
func (v Value) Float() (float64, bool) { return v.r, v.kind == Real }

// Bool returns the boolean held by v, and false if v is not a Boolean.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == Boolean }

// Str returns the text held by v, and false if v is not Text.
func (v Value) Str() (string, bool) { return v.s, v.kind == Text }

// Len returns the number of items in a Sequence or keys in a Mapping, and 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case Sequence:
		return len(v.seq)
	case Mapping:
		return len(v.m.keys)
	default:
		return 0
	}
}

// Index returns the i'th item of a Sequence. It returns Null when v is not a
// Sequence or i is out of range.
func (v Value) Index(i int) Value {
	if v.kind != Sequence || i < 0 || i >= len(v.seq) {
		return Value{}
	}
	return v.seq[i]
}

// Items returns a copy of the items of a Sequence.
func (v Value) Items() []Value {
	if v.kind != Sequence {
		return nil
	}
	out := make([]Value, len(v.seq))
	copy(out, v.seq)
	return out
}

// Keys returns a copy of the keys of a Mapping in document order.
func (v Value) Keys() []string {
	if v.kind != Mapping {
		return nil
	}
	out := make([]string, len(v.m.keys))
	copy(out, v.m.keys)
	return out
}

// Get returns the value stored under key in a Mapping.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Mapping {
		return Value{}, false
	}
	val, ok := v.m.values[key]
	return val, ok
}

// Has reports whether a Mapping contains key.
func (v Value) Has(key string) bool {
	_, ok := v.Get(key)
	return ok
}

// With returns a copy of the Mapping v with key set to val. The receiver is left
// untouched. It returns v unchanged when v is not a Mapping.
func (v Value) With(key string, val Value) Value {
	if v.kind != Mapping {
		return v
	}
	entries := make([]Entry, 0, len(v.m.keys)+1)
	for _, k := range v.m.keys {
		entries = append(entries, Entry{Key: k, Value: v.m.values[k]})
	}
	entries = append(entries, Entry{Key: key, Value: val})
	return MappingValue(entries...)
}

// Without returns a copy of the Mapping v with key removed.
func (v Value) Without(key string) Value {
	if v.kind != Mapping {
		return v
	}
	entries := make([]Entry, 0, len(v.m.keys))
	for _, k := range v.m.keys {
		if k != key {
			entries = append(entries, Entry{Key: k, Value: v.m.values[k]})
		}
	}
	return MappingValue(entries...)
}

// String renders v compactly in a JSON-like notation for use in messages.
func (v Value) String() string {
	var b strings.Builder
	v.write(&b)
	return b.String()
}

func (v Value) write(b *strings.Builder) {
	switch v.kind {
	case Null:
		b.WriteString("null")
	case Integer:
		b.WriteString(strconv.FormatInt(v.i, 10))
	case Real:
		s := strconv.FormatFloat(v.r, 'g', -1, 64)
		b.WriteString(s)
		if !strings.ContainsAny(s, ".eEnN") {
			b.WriteString(".0")
		}
	case Boolean:
		b.WriteString(strconv.FormatBool(v.b))
	case Text:
		b.WriteString(strconv.Quote(v.s))
	case Sequence:
		b.WriteByte('[')
		for i, item := range v.seq {
			if i > 0 {
				b.WriteString(", ")
			}
			item.write(b)
		}
		b.WriteByte(']')
	case Mapping:
		b.WriteByte('{')
		for i, k := range v.m.keys {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Quote(k))
			b.WriteString(": ")
			v.m.values[k].write(b)
		}
		b.WriteByte('}')
	}
}

package document

import (
	"bytes"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes v as JSON, keeping mapping key order. Reals always carry a
// fraction or exponent so that the encoded form parses back to the same kind.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Integer:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case Real:
		if math.IsNaN(v.r) || math.IsInf(v.r, 0) {
			return &NonFiniteNumberError{Value: v.r}
		}
		s := strconv.FormatFloat(v.r, 'g', -1, 64)
		buf.WriteString(s)
		if !bytes.ContainsAny([]byte(s), ".eE") {
			buf.WriteString(".0")
		}
	case Boolean:
		buf.WriteString(strconv.FormatBool(v.b))
	case Text:
		return encodeString(buf, v.s)
	case Sequence:
		buf.WriteByte('[')
		for i, item := range v.seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Mapping:
		buf.WriteByte('{')
		for i, k := range v.m.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := v.m.values[k].encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

func encodeString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

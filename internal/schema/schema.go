package schema

import (
	"github.com/andyballingall/curvecheck/internal/document"
)

// Field declares one key of a mapping and the validator for its value.
type Field struct {
	Name      string
	Validator Validator
	Optional  bool
}

// Required declares a field that must be present.
func Required(name string, v Validator) Field {
	return Field{Name: name, Validator: v}
}

// Optional declares a field that is validated only when present.
func Optional(name string, v Validator) Field {
	return Field{Name: name, Validator: v, Optional: true}
}

// Group is a set of fields that are required together.
type Group []Field

// OneOf is a conditional group. The first alternative with at least one of its
// keys present in the document is active; when none is, the Fallback alternative
// is active. Exactly one alternative is active for any document.
type OneOf struct {
	Alternatives []Group
	Fallback     int
}

// Either returns a OneOf that activates group when any of its keys is present and
// otherwise otherwise.
func Either(group, otherwise Group) OneOf {
	return OneOf{Alternatives: []Group{group, otherwise}, Fallback: 1}
}

// Active returns the alternative that applies to doc.
func (o OneOf) Active(doc document.Value) Group {
	for _, g := range o.Alternatives {
		for _, f := range g {
			if doc.Has(f.Name) {
				return g
			}
		}
	}
	if o.Fallback >= 0 && o.Fallback < len(o.Alternatives) {
		return o.Alternatives[o.Fallback]
	}
	return nil
}

// Schema describes a mapping: its unconditional fields in declaration order, its
// conditional groups, and whether keys outside the schema are rejected.
type Schema struct {
	Name        string
	Fields      []Field
	Conditional []OneOf
	Strict      bool
}

// Extend returns a copy of s with fields appended. s is left untouched.
func (s Schema) Extend(name string, fields ...Field) Schema {
	out := s
	out.Name = name
	out.Fields = append(append(make([]Field, 0, len(s.Fields)+len(fields)), s.Fields...), fields...)
	return out
}

// Resolve returns the fields that apply to doc: the unconditional fields followed
// by the active alternative of every conditional group.
func (s Schema) Resolve(doc document.Value) []Field {
	fields := make([]Field, 0, len(s.Fields))
	fields = append(fields, s.Fields...)
	for _, c := range s.Conditional {
		fields = append(fields, c.Active(doc)...)
	}
	return fields
}

// Validate makes a Schema usable as the validator of a nested mapping.
func (s Schema) Validate(v document.Value) error {
	return Check(v, s)
}

// Check validates doc against s. Presence of every required field is checked
// first, then each present field is validated, both in schema order. The first
// failure is returned as is.
func Check(doc document.Value, s Schema) error {
	if err := CheckInstance(doc, document.Mapping); err != nil {
		return err
	}

	fields := s.Resolve(doc)
	for _, f := range fields {
		if !f.Optional && !doc.Has(f.Name) {
			return &MissingFieldError{Field: f.Name}
		}
	}

	for _, f := range fields {
		v, ok := doc.Get(f.Name)
		if !ok || f.Validator == nil {
			continue
		}
		if err := f.Validator.Validate(v); err != nil {
			return err
		}
	}

	if s.Strict {
		known := make(map[string]struct{}, len(fields))
		for _, f := range fields {
			known[f.Name] = struct{}{}
		}
		for _, k := range doc.Keys() {
			if _, ok := known[k]; !ok {
				return &UnknownFieldError{Field: k}
			}
		}
	}
	return nil
}

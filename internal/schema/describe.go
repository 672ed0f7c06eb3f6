package schema

import (
	"github.com/andyballingall/curvecheck/internal/document"
)

// Describer is implemented by validators that can render themselves as a
// JSON Schema (draft 2020-12) fragment.
type Describer interface {
	JSONSchema() map[string]any
}

// Describe returns the JSON Schema fragment for v. Validators that cannot
// describe themselves accept anything.
func Describe(v Validator) map[string]any {
	if d, ok := v.(Describer); ok {
		return d.JSONSchema()
	}
	return map[string]any{}
}

var jsonTypes = map[document.Kind]string{
	document.Null:     "null",
	document.Integer:  "integer",
	document.Real:     "number",
	document.Boolean:  "boolean",
	document.Text:     "string",
	document.Sequence: "array",
	document.Mapping:  "object",
}

func (Date) JSONSchema() map[string]any {
	return map[string]any{"type": "string", "pattern": dateRegex.String()}
}

func (Tenor) JSONSchema() map[string]any {
	return map[string]any{"type": "string", "pattern": tenorRegex.String()}
}

func (e Enum) JSONSchema() map[string]any {
	values := make([]any, len(e.Values))
	for i, v := range e.Values {
		values[i] = v
	}
	return map[string]any{"type": "string", "enum": values}
}

// JSONSchema renders i as a JSON type. A Real excludes integers, but JSON Schema
// counts any number with a zero fraction as an integer, so the schema rejects a
// Real written as 1.0 and accepts an Integer written as 2.0, both of which the
// engine decides the other way.
func (i Instance) JSONSchema() map[string]any {
	if i.Kind == document.Real {
		return map[string]any{"type": "number", "not": map[string]any{"type": "integer"}}
	}
	return map[string]any{"type": jsonTypes[i.Kind]}
}

// JSONSchema renders s as an object schema. Conditional groups become if/then/else
// chains under allOf, and strict schemas forbid unevaluated properties so that
// keys declared inside a conditional branch are still allowed.
func (s Schema) JSONSchema() map[string]any {
	out := groupSchema(s.Fields)
	out["type"] = "object"
	if s.Name != "" {
		out["title"] = s.Name
	}
	if len(s.Conditional) > 0 {
		all := make([]any, 0, len(s.Conditional))
		for _, c := range s.Conditional {
			all = append(all, c.JSONSchema())
		}
		out["allOf"] = all
	}
	if s.Strict {
		out["unevaluatedProperties"] = false
	}
	return out
}

// JSONSchema renders o as nested if/then/else in alternative order, ending with
// the fallback alternative.
func (o OneOf) JSONSchema() map[string]any {
	var build func(i int) map[string]any
	build = func(i int) map[string]any {
		if i >= len(o.Alternatives) {
			if o.Fallback >= 0 && o.Fallback < len(o.Alternatives) {
				return groupSchema(o.Alternatives[o.Fallback])
			}
			return map[string]any{}
		}
		g := o.Alternatives[i]
		present := make([]any, 0, len(g))
		for _, f := range g {
			present = append(present, map[string]any{"required": []any{f.Name}})
		}
		return map[string]any{
			"if":   map[string]any{"anyOf": present},
			"then": groupSchema(g),
			"else": build(i + 1),
		}
	}
	return build(0)
}

func groupSchema(fields []Field) map[string]any {
	props := make(map[string]any, len(fields))
	var required []any
	for _, f := range fields {
		props[f.Name] = Describe(f.Validator)
		if !f.Optional {
			required = append(required, f.Name)
		}
	}
	out := map[string]any{"properties": props}
	if len(required) > 0 {
		out["required"] = required
	}
	return out
}

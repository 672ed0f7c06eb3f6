package curve

import (
	"github.com/andyballingall/curvecheck/internal/schema"
)

// Draft is the JSON Schema dialect of exported schemas.
const Draft = "https://json-schema.org/draft/2020-12/schema"

const (
	defRateHelper = "rateHelper"
	defCurve      = "curve"
	defIndex      = "index"
	defRequest    = "request"
)

// JSONSchema renders the schema of a document class as a self-contained JSON
// Schema. Every class's definition is included under $defs so that a request can
// refer to curves and indexes, and curves to rate helpers.
func (c *Catalog) JSONSchema(class Class) (map[string]any, error) {
	def, err := definitionOf(class)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"$schema": Draft,
		"title":   string(class),
		"$ref":    "#/$defs/" + def,
		"$defs": map[string]any{
			defRateHelper: c.rateHelperJSONSchema(),
			defCurve:      c.curveJSONSchema(),
			defIndex:      c.index.JSONSchema(),
			defRequest:    c.request.JSONSchema(),
		},
	}, nil
}

func definitionOf(class Class) (string, error) {
	switch class {
	case ClassRateHelper:
		return defRateHelper, nil
	case ClassCurve:
		return defCurve, nil
	case ClassIndex:
		return defIndex, nil
	case ClassRequest:
		return defRequest, nil
	}
	return "", &UnknownClassNameError{Name: string(class)}
}

func (c *Catalog) rateHelperJSONSchema() map[string]any {
	variants := make([]any, 0, len(HelperTypes))
	for _, h := range HelperTypes {
		v := c.helpers[h]
		variants = append(variants, whenDiscriminator("helperType", string(h), map[string]any{
			"properties": map[string]any{
				"helperConfig": v.config.JSONSchema(),
				"marketConfig": v.market.JSONSchema(),
			},
		}))
	}
	out := map[string]any{
		"type":     "object",
		"title":    "rate helper",
		"required": []any{"helperType", "helperConfig", "marketConfig"},
		"properties": map[string]any{
			"helperType":   schema.Describe(helperTypeEnum),
			"helperConfig": map[string]any{"type": "object"},
			"marketConfig": map[string]any{"type": "object"},
		},
		"allOf": variants,
	}
	if c.strict {
		out["unevaluatedProperties"] = false
	}
	return out
}

func (c *Catalog) curveJSONSchema() map[string]any {
	variants := make([]any, 0, len(CurveTypes))
	for _, ct := range CurveTypes {
		variants = append(variants, whenDiscriminator("curveType", string(ct), c.curves[ct].JSONSchema()))
	}
	return map[string]any{
		"type":       "object",
		"title":      "curve",
		"required":   []any{"curveType"},
		"properties": map[string]any{"curveType": schema.Describe(curveTypeEnum)},
		"allOf":      variants,
	}
}

func whenDiscriminator(key, value string, then map[string]any) map[string]any {
	return map[string]any{
		"if": map[string]any{
			"required":   []any{key},
			"properties": map[string]any{key: map[string]any{"const": value}},
		},
		"then": then,
	}
}

package curve

import (
	"github.com/andyballingall/curvecheck/internal/document"
	"github.com/andyballingall/curvecheck/internal/schema"
)

// wrapped runs inner and passes any failure through wrap, so that each nesting
// boundary adds its own context to the cause chain.
type wrapped struct {
	inner schema.Validator
	wrap  func(error) error
	ref   string
}

func (w wrapped) Validate(v document.Value) error {
	err := w.inner.Validate(v)
	if err == nil || w.wrap == nil {
		return err
	}
	return w.wrap(err)
}

func (w wrapped) JSONSchema() map[string]any {
	if w.ref != "" {
		return map[string]any{"$ref": "#/$defs/" + w.ref}
	}
	return schema.Describe(w.inner)
}

func wrapWith(ctor func(string, error) error, msg string) func(error) error {
	return func(err error) error { return ctor(msg, err) }
}

// list validates a non-empty sequence whose items all satisfy item.
type list struct {
	item    schema.Validator
	empty   string
	element func(i int, item document.Value, err error) error
}

func (l list) Validate(v document.Value) error {
	if err := schema.CheckInstance(v, document.Sequence); err != nil {
		return err
	}
	if v.Len() == 0 {
		return configurationError(l.empty, nil)
	}
	for i, item := range v.Items() {
		if err := l.item.Validate(item); err != nil {
			return l.element(i, item, err)
		}
	}
	return nil
}

func (l list) JSONSchema() map[string]any {
	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    schema.Describe(l.item),
	}
}

func atIndex(what string) func(int, document.Value, error) error {
	return func(i int, _ document.Value, err error) error {
		return configurationError(indexedMessage(what, i), err)
	}
}

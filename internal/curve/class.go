package curve

import (
	"github.com/andyballingall/curvecheck/internal/document"
)

// Class is a kind of configuration document the Catalog can validate.
type Class string

const (
	ClassRateHelper Class = "rate-helper"
	ClassCurve      Class = "curve"
	ClassIndex      Class = "index"
	ClassRequest    Class = "request"
)

// Classes lists every document class in the order Classify tries them.
var Classes = []Class{ClassRateHelper, ClassCurve, ClassIndex, ClassRequest}

// Discriminator returns the key whose presence identifies documents of class c.
func (c Class) Discriminator() string {
	switch c {
	case ClassRateHelper:
		return "helperType"
	case ClassCurve:
		return "curveType"
	case ClassIndex:
		return "indexType"
	case ClassRequest:
		return "curves"
	}
	return ""
}

// Variants returns the discriminator values accepted for class c.
func (c Class) Variants() []string {
	switch c {
	case ClassRateHelper:
		return helperTypeEnum.Values
	case ClassCurve:
		return curveTypeEnum.Values
	case ClassIndex:
		return indexTypeEnum.Values
	}
	return nil
}

// ParseClass resolves a class name such as "rate-helper".
func ParseClass(s string) (Class, error) {
	for _, c := range Classes {
		if string(c) == s {
			return c, nil
		}
	}
	return "", &UnknownClassNameError{Name: s}
}

// Classify picks the class of doc from the first discriminator key it contains.
func Classify(doc document.Value) (Class, error) {
	for _, c := range Classes {
		if doc.Has(c.Discriminator()) {
			return c, nil
		}
	}
	return "", &UnknownDocumentClassError{Keys: doc.Keys()}
}

func classKeys() []string {
	keys := make([]string, len(Classes))
	for i, c := range Classes {
		keys[i] = c.Discriminator()
	}
	return keys
}

func classNames() []string {
	names := make([]string, len(Classes))
	for i, c := range Classes {
		names[i] = string(c)
	}
	return names
}

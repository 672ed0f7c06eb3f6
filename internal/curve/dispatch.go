package curve

import (
	"github.com/andyballingall/curvecheck/internal/document"
	"github.com/andyballingall/curvecheck/internal/schema"
)

// Validate classifies doc and validates it as a document of that class.
func (c *Catalog) Validate(doc document.Value) error {
	class, err := Classify(doc)
	if err != nil {
		return err
	}
	return c.ValidateAs(class, doc)
}

// ValidateAs validates doc as a document of the given class.
func (c *Catalog) ValidateAs(class Class, doc document.Value) error {
	switch class {
	case ClassRateHelper:
		return c.ValidateRateHelper(doc)
	case ClassCurve:
		return c.ValidateCurve(doc)
	case ClassIndex:
		return c.ValidateIndex(doc)
	case ClassRequest:
		return c.ValidateRequest(doc)
	}
	return &UnknownClassNameError{Name: string(class)}
}

// ValidateRateHelper validates a {helperType, helperConfig, marketConfig} document.
// The helper type is checked on its own first, and nothing else is inspected
// unless it names a known variant.
func (c *Catalog) ValidateRateHelper(doc document.Value) error {
	if err := schema.Check(doc, c.helperHead); err != nil {
		return rateHelperError(msgHelperHead, err)
	}
	h, _ := ParseHelperType(discriminator(doc, "helperType"))
	if err := schema.Check(doc, c.helpers[h].envelope); err != nil {
		return rateHelperError(msgHelperBody, err)
	}
	return nil
}

// ValidateHelperConfig validates the helperConfig of a rate helper of type h.
func (c *Catalog) ValidateHelperConfig(h HelperType, doc document.Value) error {
	v, ok := c.helpers[h]
	if !ok {
		return rateHelperError(msgHelperHead, unknownVariant(helperTypeEnum, string(h)))
	}
	return v.config.Validate(doc)
}

// ValidateMarketConfig validates the marketConfig of a rate helper of type h.
func (c *Catalog) ValidateMarketConfig(h HelperType, doc document.Value) error {
	v, ok := c.helpers[h]
	if !ok {
		return marketError(msgMarketConfig, unknownVariant(helperTypeEnum, string(h)))
	}
	return v.market.Validate(doc)
}

// ValidateCurve validates a curve document, dispatching on its curveType.
func (c *Catalog) ValidateCurve(doc document.Value) error {
	if err := schema.Check(doc, c.curveHead); err != nil {
		return configurationError(msgCurveHead, err)
	}
	ct, _ := ParseCurveType(discriminator(doc, "curveType"))
	if err := schema.Check(doc, c.curves[ct]); err != nil {
		return configurationError(curveMessage(ct), err)
	}
	return nil
}

// ValidateIndex validates an index document.
func (c *Catalog) ValidateIndex(doc document.Value) error {
	if err := schema.Check(doc, c.indexHead); err != nil {
		return rateIndexError(msgIndex, err)
	}
	if err := schema.Check(doc, c.index); err != nil {
		return rateIndexError(msgIndex, err)
	}
	return nil
}

// ValidateRequest validates a {refDate, curves} request.
func (c *Catalog) ValidateRequest(doc document.Value) error {
	if err := schema.Check(doc, c.request); err != nil {
		return configurationError(msgRequest, err)
	}
	return nil
}

// discriminator returns the text under key. Callers have already checked it.
func discriminator(doc document.Value, key string) string {
	v, _ := doc.Get(key)
	s, _ := v.Str()
	return s
}

// ValidateRateHelper validates doc with the Default catalog.
func ValidateRateHelper(doc document.Value) error { return Default().ValidateRateHelper(doc) }

// ValidateCurve validates doc with the Default catalog.
func ValidateCurve(doc document.Value) error { return Default().ValidateCurve(doc) }

// ValidateIndex validates doc with the Default catalog.
func ValidateIndex(doc document.Value) error { return Default().ValidateIndex(doc) }

// ValidateRequest validates doc with the Default catalog.
func ValidateRequest(doc document.Value) error { return Default().ValidateRequest(doc) }

// Validate classifies and validates doc with the Default catalog.
func Validate(doc document.Value) error { return Default().Validate(doc) }

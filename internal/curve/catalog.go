package curve

import (
	"fmt"
	"strings"
	"sync"

	"github.com/andyballingall/curvecheck/internal/document"
	"github.com/andyballingall/curvecheck/internal/schema"
)

const (
	msgHelperHead    = "Invalid rate helper configuration or helper type"
	msgHelperBody    = "Invalid rate helper configuration"
	msgMarketConfig  = "Invalid market config"
	msgPrice         = "Invalid price"
	msgIndex         = "Invalid index configuration"
	msgCurveHead     = "Invalid curve configuration or curve type"
	msgRequest       = "Invalid curve request"
	msgRequestCurves = "Invalid curve request, curves should not be empty"
)

// Default returns the process-wide permissive Catalog.
var Default = sync.OnceValue(func() *Catalog { return NewCatalog() })

// Catalog holds the schema of every document class and variant. It is built once
// and never modified, so it may be shared between goroutines.
type Catalog struct {
	strict bool

	helperHead schema.Schema
	helpers    map[HelperType]helperVariant
	price      schema.Schema

	curveHead schema.Schema
	curves    map[CurveType]schema.Schema

	indexHead schema.Schema
	index     schema.Schema

	request schema.Schema
}

type helperVariant struct {
	config   wrapped
	market   wrapped
	envelope schema.Schema
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithStrict makes every schema reject keys it does not declare.
func WithStrict() Option {
	return func(c *Catalog) { c.strict = true }
}

// NewCatalog builds the schemas of every document class.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}

	// Discriminator passes never reject extra keys: the rest of the document is
	// checked by the variant schema.
	c.helperHead = schema.Schema{Name: "rate helper", Fields: []schema.Field{
		schema.Required("helperType", helperTypeEnum),
	}}
	c.curveHead = schema.Schema{Name: "curve", Fields: []schema.Field{
		schema.Required("curveType", curveTypeEnum),
	}}
	c.indexHead = schema.Schema{Name: "index", Fields: []schema.Field{
		schema.Required("indexType", indexTypeEnum),
	}}

	c.price = c.object("price", []schema.Field{
		schema.Required("value", schema.IsReal),
		schema.Optional("ticker", schema.IsText),
	})

	c.helpers = make(map[HelperType]helperVariant, len(HelperTypes))
	for _, h := range HelperTypes {
		v, err := c.helperVariant(h)
		if err != nil {
			panic(err)
		}
		c.helpers[h] = v
	}

	c.curves = make(map[CurveType]schema.Schema, len(CurveTypes))
	for _, ct := range CurveTypes {
		s, err := c.curveSchema(ct)
		if err != nil {
			panic(err)
		}
		c.curves[ct] = s
	}

	c.index = c.object("index", []schema.Field{
		schema.Required("indexType", indexTypeEnum),
		schema.Required("tenor", schema.Tenor{}),
		schema.Required("dayCounter", DayCounter),
		schema.Required("currency", Currency),
		schema.Required("fixingDays", schema.IsInteger),
		schema.Required("calendar", Calendar),
		schema.Required("endOfMonth", schema.IsBoolean),
		schema.Required("convention", Convention),
	})

	requestCurve := c.object("request curve", []schema.Field{
		schema.Required("curveName", schema.IsText),
		schema.Required("curveConfig", wrapped{inner: schema.ValidatorFunc(c.ValidateCurve), ref: defCurve}),
		schema.Required("curveIndex", wrapped{inner: schema.ValidatorFunc(c.ValidateIndex), ref: defIndex}),
	})
	c.request = c.object("request", []schema.Field{
		schema.Required("refDate", schema.Date{}),
		schema.Required("curves", list{item: requestCurve, empty: msgRequestCurves, element: curveAt}),
	})
	return c
}

// Strict reports whether the catalog rejects undeclared keys.
func (c *Catalog) Strict() bool {
	return c.strict
}

func (c *Catalog) object(name string, fields []schema.Field, cond ...schema.OneOf) schema.Schema {
	return schema.Schema{Name: name, Fields: fields, Conditional: cond, Strict: c.strict}
}

func (c *Catalog) helperVariant(h HelperType) (helperVariant, error) {
	fields, cond, label, err := helperConfigFields(h)
	if err != nil {
		return helperVariant{}, err
	}
	prices, err := marketFields(h)
	if err != nil {
		return helperVariant{}, err
	}

	priceField := wrapped{inner: c.price, wrap: wrapWith(marketError, msgPrice)}
	market := make([]schema.Field, len(prices))
	for i, p := range prices {
		market[i] = schema.Required(p, priceField)
	}

	v := helperVariant{
		config: wrapped{
			inner: c.object(string(h)+" helperConfig", fields, cond...),
			wrap:  wrapWith(rateHelperError, "Invalid "+label+" rate helper"),
		},
		market: wrapped{
			inner: c.object(string(h)+" marketConfig", market),
			wrap:  wrapWith(marketError, msgMarketConfig),
		},
	}
	v.envelope = c.object(string(h)+" rate helper", []schema.Field{
		schema.Required("helperType", helperTypeEnum),
		schema.Required("helperConfig", v.config),
		schema.Required("marketConfig", v.market),
	})
	return v, nil
}

// helperConfigFields returns the helperConfig schema of h and the label used in
// its error messages.
func helperConfigFields(h HelperType) ([]schema.Field, []schema.OneOf, string, error) {
	req := schema.Required
	switch h {
	case Deposit:
		return []schema.Field{
			req("dayCounter", DayCounter),
			req("tenor", schema.Tenor{}),
			req("calendar", Calendar),
			req("settlementDays", schema.IsInteger),
			req("endOfMonth", schema.IsBoolean),
			req("convention", Convention),
		}, nil, "deposit", nil
	case Swap:
		return []schema.Field{
			req("tenor", schema.Tenor{}),
			req("dayCounter", DayCounter),
			req("calendar", Calendar),
			req("frequency", Frequency),
			req("settlementDays", schema.IsInteger),
			req("discountCurve", schema.IsText),
			req("index", schema.IsText),
			req("endOfMonth", schema.IsBoolean),
			req("convention", Convention),
			req("fixedLegFrequency", Frequency),
			req("fwdStart", schema.Tenor{}),
		}, nil, "swap", nil
	case FxSwap:
		fields := []schema.Field{
			req("calendar", Calendar),
			req("fixingDays", schema.IsInteger),
			req("endOfMonth", schema.IsBoolean),
			req("baseCurrencyAsCollateral", schema.IsBoolean),
			req("convention", Convention),
			req("discountCurve", schema.IsText),
			req("settlementDays", schema.IsInteger),
		}
		maturity := schema.Either(
			schema.Group{req("endDate", schema.Date{})},
			schema.Group{req("tenor", schema.Tenor{})},
		)
		return fields, []schema.OneOf{maturity}, "FX swap", nil
	case Xccy:
		return []schema.Field{
			req("tenor", schema.Tenor{}),
			req("dayCounter", DayCounter),
			req("calendar", Calendar),
			req("convention", Convention),
			req("endOfMonth", schema.IsBoolean),
			req("settlementDays", schema.IsInteger),
			req("discountCurve", schema.IsText),
			req("index", schema.IsText),
			req("fixedLegCurrency", schema.IsText),
			req("fwdStart", schema.Tenor{}),
			req("fixedLegFrequency", Frequency),
		}, nil, "cross currency", nil
	case TenorBasis:
		return []schema.Field{
			req("tenor", schema.Tenor{}),
			req("longIndex", schema.IsText),
			req("shortIndex", schema.IsText),
			req("discountCurve", schema.IsText),
			req("spreadOnShort", schema.IsBoolean),
		}, nil, "tenor basis", nil
	case XccyBasis:
		return []schema.Field{
			req("tenor", schema.Tenor{}),
			req("calendar", Calendar),
			req("settlementDays", schema.IsInteger),
			req("endOfMonth", schema.IsBoolean),
			req("convention", Convention),
			req("flatIndex", schema.IsText),
			req("spreadIndex", schema.IsText),
			req("discountCurve", schema.IsText),
		}, nil, "cross currency basis", nil
	case OIS:
		return []schema.Field{
			req("tenor", schema.Tenor{}),
			req("dayCounter", DayCounter),
			req("calendar", Calendar),
			req("convention", Convention),
			req("endOfMonth", schema.IsBoolean),
			req("frequency", Frequency),
			req("settlementDays", schema.IsInteger),
			req("paymentLag", schema.IsInteger),
			req("telescopicValueDates", schema.IsBoolean),
			req("index", schema.IsText),
			req("fixedLegFrequency", Frequency),
			req("fwdStart", schema.Tenor{}),
		}, nil, "OIS", nil
	case Bond:
		fields := []schema.Field{
			req("calendar", Calendar),
			req("convention", Convention),
			req("settlementDays", schema.IsInteger),
			req("couponDayCounter", DayCounter),
			req("couponRate", schema.IsReal),
			req("frequency", Frequency),
		}
		maturity := schema.Either(
			schema.Group{req("startDate", schema.Date{}), req("endDate", schema.Date{})},
			schema.Group{req("tenor", schema.Tenor{})},
		)
		return fields, []schema.OneOf{maturity}, "bond", nil
	}
	return nil, nil, "", unknownVariant(helperTypeEnum, string(h))
}

// marketFields returns the prices a rate helper of type h must quote.
func marketFields(h HelperType) ([]string, error) {
	switch h {
	case Deposit, Bond:
		return []string{"rate"}, nil
	case Swap:
		return []string{"rate", "spread"}, nil
	case FxSwap:
		return []string{"fxSpot", "fxPoints"}, nil
	case Xccy:
		return []string{"rate", "spread", "fxSpot", "fxPoints"}, nil
	case TenorBasis, OIS:
		return []string{"spread"}, nil
	case XccyBasis:
		return []string{"spread", "fxSpot", "fxPoints"}, nil
	}
	return nil, unknownVariant(helperTypeEnum, string(h))
}

func (c *Catalog) curveSchema(ct CurveType) (schema.Schema, error) {
	common := c.object("curve", []schema.Field{
		schema.Required("curveType", curveTypeEnum),
		schema.Required("dayCounter", DayCounter),
		schema.Required("enableExtrapolation", schema.IsBoolean),
	})
	name := strings.ToLower(string(ct)) + " curve"
	switch ct {
	case Piecewise:
		helpers := list{
			item:    wrapped{inner: schema.ValidatorFunc(c.ValidateRateHelper), ref: defRateHelper},
			empty:   curveMessage(ct) + ", rateHelpers should not be empty",
			element: atIndex("rate helper"),
		}
		return common.Extend(name, schema.Required("rateHelpers", helpers)), nil
	case Discount:
		factor := c.object("discount factor", []schema.Field{
			schema.Required("date", schema.Date{}),
			schema.Required("value", schema.IsReal),
		})
		factors := list{
			item:    factor,
			empty:   curveMessage(ct) + ", discountFactors should not be empty",
			element: atIndex("discount factor"),
		}
		return common.Extend(name, schema.Required("discountFactors", factors)), nil
	}
	return schema.Schema{}, unknownVariant(curveTypeEnum, string(ct))
}

func curveMessage(ct CurveType) string {
	return "Invalid " + strings.ToLower(string(ct)) + " curve configuration"
}

func indexedMessage(what string, i int) string {
	return fmt.Sprintf("Invalid %s at index %d", what, i)
}

func curveAt(i int, item document.Value, err error) error {
	if name, ok := item.Get("curveName"); ok {
		if s, ok := name.Str(); ok {
			return configurationError(fmt.Sprintf("Invalid curve %q", s), err)
		}
	}
	return configurationError(indexedMessage("curve", i), err)
}

func unknownVariant(e schema.Enum, value string) error {
	return schema.CheckIsInEnum(document.TextValue(value), e)
}

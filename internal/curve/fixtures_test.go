package curve

import (
	"github.com/andyballingall/curvecheck/internal/document"
	"github.com/andyballingall/curvecheck/internal/schema"
)

// helperConfigs holds a minimal valid helperConfig for every helper type.
var helperConfigs = map[HelperType]map[string]any{
	Deposit: {
		"dayCounter":     "Actual360",
		"tenor":          "1D",
		"calendar":       "NullCalendar",
		"settlementDays": 0,
		"endOfMonth":     false,
		"convention":     "Unadjusted",
	},
	Swap: {
		"tenor":             "2Y",
		"dayCounter":        "Thirty360",
		"calendar":          "NullCalendar",
		"frequency":         "Semiannual",
		"settlementDays":    2,
		"discountCurve":     "SOFR",
		"index":             "LIBOR3M",
		"endOfMonth":        false,
		"convention":        "Unadjusted",
		"fixedLegFrequency": "Semiannual",
		"fwdStart":          "0D",
	},
	FxSwap: {
		"calendar":                 "NullCalendar",
		"fixingDays":               0,
		"endOfMonth":               false,
		"baseCurrencyAsCollateral": false,
		"convention":               "Following",
		"discountCurve":            "CLP_COLLUSD",
		"tenor":                    "1Y",
		"settlementDays":           0,
	},
	Xccy: {
		"tenor":             "2Y",
		"dayCounter":        "Actual360",
		"calendar":          "NullCalendar",
		"convention":        "ModifiedFollowing",
		"endOfMonth":        false,
		"settlementDays":    2,
		"discountCurve":     "CLP_COLLUSD",
		"index":             "ICP",
		"fixedLegCurrency":  "CLF",
		"fwdStart":          "0D",
		"fixedLegFrequency": "Semiannual",
	},
	TenorBasis: {
		"tenor":         "3M",
		"longIndex":     "LIBOR3M",
		"shortIndex":    "LIBOR1M",
		"discountCurve": "SOFR",
		"spreadOnShort": true,
	},
	XccyBasis: {
		"tenor":          "3M",
		"calendar":       "NullCalendar",
		"settlementDays": 2,
		"endOfMonth":     false,
		"convention":     "ModifiedFollowing",
		"flatIndex":      "LIBOR3M",
		"spreadIndex":    "LIBOR1M",
		"discountCurve":  "SOFR",
	},
	OIS: {
		"tenor":                "1W",
		"dayCounter":           "Actual360",
		"calendar":             "NullCalendar",
		"convention":           "Following",
		"endOfMonth":           true,
		"frequency":            "Annual",
		"settlementDays":       2,
		"paymentLag":           2,
		"telescopicValueDates": true,
		"index":                "SOFR",
		"fixedLegFrequency":    "Semiannual",
		"fwdStart":             "0D",
	},
	Bond: {
		"calendar":         "NullCalendar",
		"convention":       "Following",
		"settlementDays":   2,
		"couponDayCounter": "Actual360",
		"couponRate":       0.05,
		"frequency":        "Annual",
		"tenor":            "2Y",
	},
}

// marketPrices lists the prices each helper type quotes.
var marketPrices = map[HelperType][]string{
	Deposit:    {"rate"},
	Swap:       {"rate", "spread"},
	FxSwap:     {"fxSpot", "fxPoints"},
	Xccy:       {"rate", "spread", "fxSpot", "fxPoints"},
	TenorBasis: {"spread"},
	XccyBasis:  {"spread", "fxSpot", "fxPoints"},
	OIS:        {"spread"},
	Bond:       {"rate"},
}

func price() map[string]any {
	return map[string]any{"ticker": "CLP_CU", "value": 0.01}
}

func helperConfigDoc(h HelperType) document.Value {
	return document.MustFromAny(helperConfigs[h])
}

func marketConfigDoc(h HelperType) document.Value {
	m := make(map[string]any, len(marketPrices[h]))
	for _, p := range marketPrices[h] {
		m[p] = price()
	}
	return document.MustFromAny(m)
}

func rateHelperDoc(h HelperType) document.Value {
	return document.MappingValue(
		document.Entry{Key: "helperType", Value: document.TextValue(string(h))},
		document.Entry{Key: "helperConfig", Value: helperConfigDoc(h)},
		document.Entry{Key: "marketConfig", Value: marketConfigDoc(h)},
	)
}

func indexDoc() document.Value {
	return document.MustFromAny(map[string]any{
		"indexType":  "IborIndex",
		"tenor":      "6M",
		"dayCounter": "Actual360",
		"currency":   "CLP",
		"fixingDays": 0,
		"calendar":   "NullCalendar",
		"endOfMonth": false,
		"convention": "Unadjusted",
	})
}

func piecewiseDoc(helpers ...document.Value) document.Value {
	return document.MappingValue(
		document.Entry{Key: "curveType", Value: document.TextValue("Piecewise")},
		document.Entry{Key: "dayCounter", Value: document.TextValue("Actual360")},
		document.Entry{Key: "enableExtrapolation", Value: document.BooleanValue(true)},
		document.Entry{Key: "rateHelpers", Value: document.SequenceValue(helpers...)},
	)
}

func discountDoc(factors ...map[string]any) document.Value {
	items := make([]document.Value, len(factors))
	for i, f := range factors {
		items[i] = document.MustFromAny(f)
	}
	return document.MappingValue(
		document.Entry{Key: "curveType", Value: document.TextValue("Discount")},
		document.Entry{Key: "dayCounter", Value: document.TextValue("Actual360")},
		document.Entry{Key: "enableExtrapolation", Value: document.BooleanValue(true)},
		document.Entry{Key: "discountFactors", Value: document.SequenceValue(items...)},
	)
}

func requestDoc(curves ...document.Value) document.Value {
	return document.MappingValue(
		document.Entry{Key: "refDate", Value: document.TextValue("2020-01-01")},
		document.Entry{Key: "curves", Value: document.SequenceValue(curves...)},
	)
}

func requestCurveDoc(name string, curve document.Value) document.Value {
	return document.MappingValue(
		document.Entry{Key: "curveName", Value: document.TextValue(name)},
		document.Entry{Key: "curveConfig", Value: curve},
		document.Entry{Key: "curveIndex", Value: indexDoc()},
	)
}

// kinds returns the kind of every link in err's cause chain.
func kinds(err error) []string {
	var out []string
	for _, l := range schema.Chain(err) {
		out = append(out, l.Kind)
	}
	return out
}

func messages(err error) []string {
	var out []string
	for _, l := range schema.Chain(err) {
		out = append(out, l.Message)
	}
	return out
}

func documentOf(m map[string]any) document.Value {
	return document.MustFromAny(m)
}
